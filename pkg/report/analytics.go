package report

import (
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/pkg/expiry"
	"Smart-Fridge-Backend/pkg/item"
)

// Analytics summarizes an owner's inventory in one pass plus one sort.
// nonExpiringCount counts items flagged non-expiring; items missing a date
// without the flag are reported as anomalies and counted only in the total.
func Analytics(items []*entities.Item, now time.Time, window int) (domain.AnalyticsResponse, []Anomaly) {
	res := domain.AnalyticsResponse{
		TotalItems: len(items),
		ByCategory: map[string][]string{},
		MostUsed:   []domain.ItemResponse{},
		LeastUsed:  []domain.ItemResponse{},
	}
	var anomalies []Anomaly
	var expirable []*entities.Item

	for _, it := range items {
		if it == nil {
			continue
		}
		category := categoryOf(it)
		res.ByCategory[category] = append(res.ByCategory[category], it.Name)

		status := expiry.Classify(it, now)
		switch status.Kind {
		case expiry.NonExpiring:
			res.NonExpiringCount++
		case expiry.Expired:
			res.Expired++
		case expiry.DaysRemaining:
			if status.Within(window) {
				res.ExpiringSoon++
			}
		default:
			anomalies = append(anomalies, anomalyFor(it, reasonMissingExpiration))
		}

		if expiry.Effective(it) != nil {
			expirable = append(expirable, it)
		}
	}

	sortByExpiration(expirable)

	n := len(expirable)
	most := expirable[:min(domain.RankingSize, n)]
	least := expirable[max(0, n-domain.RankingSize):]
	for _, it := range most {
		res.MostUsed = append(res.MostUsed, item.ToItemResponse(it, now))
	}
	for _, it := range least {
		res.LeastUsed = append(res.LeastUsed, item.ToItemResponse(it, now))
	}

	return res, anomalies
}

// sortByExpiration orders by expiration ascending, then by the leading
// integer of the quantity. Quantities without one sort after those with.
func sortByExpiration(items []*entities.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := expiry.Effective(items[i]), expiry.Effective(items[j])
		if !a.Equal(*b) {
			return a.Before(*b)
		}
		qa, okA := leadingInt(items[i].Quantity)
		qb, okB := leadingInt(items[j].Quantity)
		switch {
		case okA && okB:
			return qa < qb
		case okA != okB:
			return okA
		default:
			return false
		}
	})
}

// leadingInt parses "12 eggs" as 12 and rejects "a dozen".
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
