package item

import (
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/pkg/expiry"
)

func ToItemResponse(item *entities.Item, now time.Time) domain.ItemResponse {
	return domain.ItemResponse{
		ID:                  item.ID.String(),
		Name:                item.Name,
		Category:            item.Category,
		Quantity:            item.Quantity,
		ExpirationDate:      item.ExpirationDate,
		PurchaseDate:        item.PurchaseDate,
		StorageLocation:     item.StorageLocation,
		Frequency:           item.Frequency,
		NonExpiring:         item.NonExpiring,
		PurchaseCount:       item.PurchaseCount,
		Notes:               item.Notes,
		ImageURL:            item.ImageURL,
		IsStarterItem:       item.IsStarterItem,
		IsExpired:           expiry.Classify(item, now).IsExpired(),
		DaysUntilExpiration: expiry.DaysPtr(item, now),
		CreatedAt:           item.CreatedAt,
	}
}

func ToItemResponses(items []*entities.Item, now time.Time) []domain.ItemResponse {
	response := make([]domain.ItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, ToItemResponse(item, now))
	}
	return response
}
