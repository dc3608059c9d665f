package report

import (
	"sort"
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/pkg/expiry"
)

// Recommendations splits upcoming expirations into items to buy within
// daysAhead and items to replenish in the following week. Both lists are
// ordered by days left; ties keep inventory order.
func Recommendations(items []*entities.Item, now time.Time, daysAhead int) (domain.RecommendationResponse, error) {
	if daysAhead < 0 {
		return domain.RecommendationResponse{}, domain.ErrNegativeWindow
	}

	res := domain.RecommendationResponse{
		MustBuy:   []domain.ShoppingEntry{},
		Replenish: []domain.ShoppingEntry{},
	}

	for _, it := range items {
		exp := expiry.Effective(it)
		if exp == nil || exp.Before(now) {
			continue
		}

		daysLeft := expiry.DaysUntil(*exp, now)
		entry := domain.ShoppingEntry{Name: it.Name, DaysUntilExpiration: daysLeft}
		switch {
		case daysLeft >= 0 && daysLeft <= daysAhead:
			res.MustBuy = append(res.MustBuy, entry)
		case daysLeft > daysAhead && daysLeft <= daysAhead+domain.ReplenishWindowDays:
			res.Replenish = append(res.Replenish, entry)
		}
	}

	byDays := func(list []domain.ShoppingEntry) func(i, j int) bool {
		return func(i, j int) bool { return list[i].DaysUntilExpiration < list[j].DaysUntilExpiration }
	}
	sort.SliceStable(res.MustBuy, byDays(res.MustBuy))
	sort.SliceStable(res.Replenish, byDays(res.Replenish))

	return res, nil
}
