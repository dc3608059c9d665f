package report

import (
	"Smart-Fridge-Backend/entities"
)

// Anomaly records an item left out of a bucket because its data is
// inconsistent. Reports are still produced from the remaining items.
type Anomaly struct {
	ItemID string
	Name   string
	Reason string
}

const reasonMissingExpiration = "expiring item has no expiration date"

func anomalyFor(item *entities.Item, reason string) Anomaly {
	return Anomaly{ItemID: item.ID.String(), Name: item.Name, Reason: reason}
}

func categoryOf(item *entities.Item) string {
	if item.Category == "" {
		return "other"
	}
	return item.Category
}
