package expiry

import (
	"testing"
	"time"

	"Smart-Fridge-Backend/entities"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		item *entities.Item
		want Status
	}{
		{"non-expiring without date", &entities.Item{NonExpiring: true}, Status{Kind: NonExpiring}},
		{"non-expiring ignores past date", &entities.Item{NonExpiring: true, ExpirationDate: at(-48 * time.Hour)}, Status{Kind: NonExpiring}},
		{"non-expiring ignores future date", &entities.Item{NonExpiring: true, ExpirationDate: at(48 * time.Hour)}, Status{Kind: NonExpiring}},
		{"past date is expired", &entities.Item{ExpirationDate: at(-time.Second)}, Status{Kind: Expired}},
		{"exactly now is today", &entities.Item{ExpirationDate: at(0)}, Status{Kind: DaysRemaining, Days: 0}},
		{"one hour left rounds up", &entities.Item{ExpirationDate: at(time.Hour)}, Status{Kind: DaysRemaining, Days: 1}},
		{"two days", &entities.Item{ExpirationDate: at(2 * Day)}, Status{Kind: DaysRemaining, Days: 2}},
		{"seven days and a minute", &entities.Item{ExpirationDate: at(7*Day + time.Minute)}, Status{Kind: DaysRemaining, Days: 8}},
		{"missing date is unknown", &entities.Item{}, Status{Kind: Unknown}},
		{"zero date is unknown", &entities.Item{ExpirationDate: &time.Time{}}, Status{Kind: Unknown}},
		{"nil item is unknown", nil, Status{Kind: Unknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.item, now))
		})
	}
}

func TestClassify_NonExpiringNeverExpiredOrBucketed(t *testing.T) {
	for offset := -30; offset <= 30; offset++ {
		item := &entities.Item{NonExpiring: true, ExpirationDate: at(time.Duration(offset) * Day)}
		got := Classify(item, now)
		assert.Equal(t, NonExpiring, got.Kind, "offset %d", offset)
		assert.False(t, got.Within(60))
	}
}

func TestClassify_PastAlwaysExpired(t *testing.T) {
	for _, d := range []time.Duration{time.Nanosecond, time.Minute, Day, 400 * Day} {
		got := Classify(&entities.Item{ExpirationDate: at(-d)}, now)
		assert.True(t, got.IsExpired(), "expired %s ago", d)
	}
}

func TestStatusWithin(t *testing.T) {
	assert.True(t, Status{Kind: DaysRemaining, Days: 0}.Within(7))
	assert.True(t, Status{Kind: DaysRemaining, Days: 7}.Within(7))
	assert.False(t, Status{Kind: DaysRemaining, Days: 8}.Within(7))
	assert.False(t, Status{Kind: Expired}.Within(7))
	assert.False(t, Status{Kind: Unknown}.Within(7))
}

func TestEffective(t *testing.T) {
	date := at(Day)
	assert.Nil(t, Effective(&entities.Item{NonExpiring: true, ExpirationDate: date}))
	assert.Nil(t, Effective(&entities.Item{}))
	assert.Equal(t, date, Effective(&entities.Item{ExpirationDate: date}))
}

func TestDaysPtr(t *testing.T) {
	assert.Nil(t, DaysPtr(&entities.Item{NonExpiring: true}, now))
	days := DaysPtr(&entities.Item{ExpirationDate: at(-36 * time.Hour)}, now)
	if assert.NotNil(t, days) {
		assert.Equal(t, -1, *days)
	}
}
