package notification

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/internal/utils/mailing"
	"Smart-Fridge-Backend/pkg/report"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

const digestSubject = "Items in your fridge are expiring soon"

var digestTemplate = template.Must(template.New("digest").Parse(`<p>Hi {{.Name}},</p>
<p>These items expire within {{.Window}} day(s):</p>
<ul>{{range .Items}}
<li>{{.Name}}: {{if eq .DaysUntilExpiration 0}}today{{else}}{{.DaysUntilExpiration}} day(s) left{{end}}</li>{{end}}
</ul>`))

type (
	UserFinder interface {
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
	}

	ItemLister interface {
		GetItemsByOwner(ctx context.Context, ownerID string) ([]*entities.Item, error)
	}

	NotificationService interface {
		SendExpiringDigest(ctx context.Context, req domain.DigestRequest, userID string) (domain.DigestResponse, error)
	}

	notificationService struct {
		users  UserFinder
		items  ItemLister
		mailer mailing.Mailer
		now    func() time.Time
	}
)

func NewNotificationService(users UserFinder, items ItemLister, mailer mailing.Mailer) NotificationService {
	return NewNotificationServiceWithClock(users, items, mailer, time.Now)
}

func NewNotificationServiceWithClock(users UserFinder, items ItemLister, mailer mailing.Mailer, now func() time.Time) NotificationService {
	return &notificationService{
		users:  users,
		items:  items,
		mailer: mailer,
		now:    now,
	}
}

// SendExpiringDigest mails the caller the items whose expiration falls
// within the next req.Window days.
func (s *notificationService) SendExpiringDigest(ctx context.Context, req domain.DigestRequest, userID string) (domain.DigestResponse, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DigestResponse{}, domain.ErrUserNotFound
		}
		return domain.DigestResponse{}, err
	}
	if !user.Notifications.Email {
		return domain.DigestResponse{}, domain.ErrEmailNotificationsOff
	}

	items, err := s.items.GetItemsByOwner(ctx, userID)
	if err != nil {
		return domain.DigestResponse{}, err
	}

	upcoming, err := report.Recommendations(items, s.now(), req.Window)
	if err != nil {
		return domain.DigestResponse{}, err
	}
	if len(upcoming.MustBuy) == 0 {
		return domain.DigestResponse{}, domain.ErrNothingToNotify
	}

	body, err := renderDigest(user.Name, req.Window, upcoming.MustBuy)
	if err != nil {
		return domain.DigestResponse{}, err
	}
	if err := s.mailer.SendMail(user.Email, digestSubject, body); err != nil {
		log.Errorf("failed to send digest to %s: %v", user.Email, err)
		return domain.DigestResponse{}, err
	}

	return domain.DigestResponse{
		Recipient: user.Email,
		Items:     upcoming.MustBuy,
	}, nil
}

func renderDigest(name string, window int, entries []domain.ShoppingEntry) (string, error) {
	var buf bytes.Buffer
	err := digestTemplate.Execute(&buf, struct {
		Name   string
		Window int
		Items  []domain.ShoppingEntry
	}{name, window, entries})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
