package notification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var now = time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

type mockUsers struct{ mock.Mock }

func (m *mockUsers) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockItems struct{ mock.Mock }

func (m *mockItems) GetItemsByOwner(ctx context.Context, ownerID string) ([]*entities.Item, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]*entities.Item), args.Error(1)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendMail(to, subject, body string) error {
	return m.Called(to, subject, body).Error(0)
}

func expiringIn(name string, d time.Duration) *entities.Item {
	exp := now.Add(d)
	return &entities.Item{ID: uuid.New(), Name: name, ExpirationDate: &exp}
}

func TestSendExpiringDigest(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &entities.User{Email: "sam@example.com", Name: "Sam", Notifications: entities.NotificationPrefs{Email: true}}

	users := new(mockUsers)
	users.On("GetUserByID", ctx, userID).Return(user, nil)
	items := new(mockItems)
	items.On("GetItemsByOwner", ctx, userID).Return([]*entities.Item{
		expiringIn("Milk", 2*24*time.Hour),
		expiringIn("Eggs", 10*24*time.Hour),
		{ID: uuid.New(), Name: "Salt", NonExpiring: true},
	}, nil)
	mailer := new(mockMailer)
	mailer.On("SendMail", "sam@example.com", digestSubject, mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "Milk") && !strings.Contains(body, "Eggs")
	})).Return(nil)

	svc := NewNotificationServiceWithClock(users, items, mailer, func() time.Time { return now })
	res, err := svc.SendExpiringDigest(ctx, domain.DigestRequest{Window: 3}, userID)

	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", res.Recipient)
	assert.Equal(t, []domain.ShoppingEntry{{Name: "Milk", DaysUntilExpiration: 2}}, res.Items)
	mailer.AssertExpectations(t)
}

func TestSendExpiringDigest_EmailOff(t *testing.T) {
	ctx := context.Background()
	users := new(mockUsers)
	users.On("GetUserByID", ctx, "u").Return(&entities.User{Email: "a@b.c"}, nil)
	mailer := new(mockMailer)

	svc := NewNotificationServiceWithClock(users, new(mockItems), mailer, func() time.Time { return now })
	_, err := svc.SendExpiringDigest(ctx, domain.DigestRequest{Window: 3}, "u")

	assert.ErrorIs(t, err, domain.ErrEmailNotificationsOff)
	mailer.AssertNotCalled(t, "SendMail", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendExpiringDigest_NothingExpiring(t *testing.T) {
	ctx := context.Background()
	users := new(mockUsers)
	users.On("GetUserByID", ctx, "u").Return(&entities.User{Email: "a@b.c", Notifications: entities.NotificationPrefs{Email: true}}, nil)
	items := new(mockItems)
	items.On("GetItemsByOwner", ctx, "u").Return([]*entities.Item{expiringIn("Eggs", 10*24*time.Hour)}, nil)

	svc := NewNotificationServiceWithClock(users, items, new(mockMailer), func() time.Time { return now })
	_, err := svc.SendExpiringDigest(ctx, domain.DigestRequest{Window: 3}, "u")

	assert.ErrorIs(t, err, domain.ErrNothingToNotify)
}

func TestSendExpiringDigest_UnknownUser(t *testing.T) {
	ctx := context.Background()
	users := new(mockUsers)
	users.On("GetUserByID", ctx, "u").Return(nil, gorm.ErrRecordNotFound)

	svc := NewNotificationServiceWithClock(users, new(mockItems), new(mockMailer), func() time.Time { return now })
	_, err := svc.SendExpiringDigest(ctx, domain.DigestRequest{Window: 3}, "u")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSendExpiringDigest_MailFailure(t *testing.T) {
	ctx := context.Background()
	users := new(mockUsers)
	users.On("GetUserByID", ctx, "u").Return(&entities.User{Email: "a@b.c", Notifications: entities.NotificationPrefs{Email: true}}, nil)
	items := new(mockItems)
	items.On("GetItemsByOwner", ctx, "u").Return([]*entities.Item{expiringIn("Milk", 24*time.Hour)}, nil)
	mailer := new(mockMailer)
	mailer.On("SendMail", "a@b.c", digestSubject, mock.Anything).Return(errors.New("smtp down"))

	svc := NewNotificationServiceWithClock(users, items, mailer, func() time.Time { return now })
	_, err := svc.SendExpiringDigest(ctx, domain.DigestRequest{Window: 3}, "u")

	assert.EqualError(t, err, "smtp down")
}
