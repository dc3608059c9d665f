package report

import (
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"

	"github.com/google/uuid"
)

var now = time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

const day = 24 * time.Hour

func expiring(name, category string, in time.Duration) *entities.Item {
	exp := now.Add(in)
	return &entities.Item{ID: uuid.New(), Name: name, Category: category, Quantity: "1 item", ExpirationDate: &exp}
}

func nonExpiring(name, category string) *entities.Item {
	return &entities.Item{ID: uuid.New(), Name: name, Category: category, Quantity: "1 item", NonExpiring: true}
}

func undated(name string) *entities.Item {
	return &entities.Item{ID: uuid.New(), Name: name, Category: "dairy"}
}

func ptrTime(t time.Time) *time.Time { return &t }

func itemNames(items []domain.ItemResponse) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}
