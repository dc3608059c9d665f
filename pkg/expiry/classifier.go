// Package expiry classifies inventory items relative to a reference instant.
package expiry

import (
	"math"
	"time"

	"Smart-Fridge-Backend/entities"
)

const Day = 24 * time.Hour

type Kind int

const (
	// Unknown marks an expiring item stored without an expiration date.
	Unknown Kind = iota
	NonExpiring
	Expired
	DaysRemaining
)

func (k Kind) String() string {
	switch k {
	case NonExpiring:
		return "non-expiring"
	case Expired:
		return "expired"
	case DaysRemaining:
		return "days-remaining"
	default:
		return "unknown"
	}
}

// Status is the outcome of classifying one item. Days is only meaningful
// when Kind is DaysRemaining.
type Status struct {
	Kind Kind
	Days int
}

func (s Status) IsExpired() bool { return s.Kind == Expired }

// Within reports whether the item expires today or within window days.
func (s Status) Within(window int) bool {
	return s.Kind == DaysRemaining && s.Days >= 0 && s.Days <= window
}

// Classify never fails; missing data yields Unknown.
func Classify(item *entities.Item, now time.Time) Status {
	if item == nil {
		return Status{Kind: Unknown}
	}
	if item.NonExpiring {
		return Status{Kind: NonExpiring}
	}
	if item.ExpirationDate == nil || item.ExpirationDate.IsZero() {
		return Status{Kind: Unknown}
	}
	if item.ExpirationDate.Before(now) {
		return Status{Kind: Expired}
	}
	return Status{Kind: DaysRemaining, Days: DaysUntil(*item.ExpirationDate, now)}
}

// DaysUntil is ceil((t - now) / 24h).
func DaysUntil(t, now time.Time) int {
	return int(math.Ceil(float64(t.Sub(now)) / float64(Day)))
}

// Effective returns the expiration instant that counts for reporting, nil
// for non-expiring items regardless of any stored date.
func Effective(item *entities.Item) *time.Time {
	if item == nil || item.NonExpiring || item.ExpirationDate == nil || item.ExpirationDate.IsZero() {
		return nil
	}
	return item.ExpirationDate
}

// DaysPtr is the display form used in item payloads.
func DaysPtr(item *entities.Item, now time.Time) *int {
	exp := Effective(item)
	if exp == nil {
		return nil
	}
	d := DaysUntil(*exp, now)
	return &d
}
