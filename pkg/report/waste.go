package report

import (
	"math"
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/pkg/expiry"
)

// Waste counts the items whose expiration falls inside [start, end].
// totalTracked mirrors totalExpired; totalInventory is the owner's item
// count.
func Waste(items []*entities.Item, start, end time.Time) (domain.WasteResponse, []Anomaly, error) {
	if end.Before(start) {
		return domain.WasteResponse{}, nil, domain.ErrInvalidDateRange
	}

	res := domain.WasteResponse{Breakdown: map[string][]string{}}
	var anomalies []Anomaly

	for _, it := range items {
		if it == nil {
			continue
		}
		res.TotalInventory++

		exp := expiry.Effective(it)
		if exp == nil {
			if !it.NonExpiring {
				anomalies = append(anomalies, anomalyFor(it, reasonMissingExpiration))
			}
			continue
		}
		if exp.Before(start) || exp.After(end) {
			continue
		}

		res.TotalExpired++
		category := categoryOf(it)
		res.Breakdown[category] = append(res.Breakdown[category], it.Name)
	}

	res.TotalTracked = res.TotalExpired
	res.WasteRatio = wasteRatio(res.TotalExpired, res.TotalTracked)
	return res, anomalies, nil
}

// wasteRatio is a percentage with one decimal, 0 when nothing is tracked.
func wasteRatio(expired, tracked int) float64 {
	if tracked <= 0 {
		return 0
	}
	return math.Round(float64(expired)/float64(tracked)*1000) / 10
}
