package item

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/internal/utils"
	"Smart-Fridge-Backend/internal/utils/storage"
	"Smart-Fridge-Backend/pkg/expiry"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const frequentItemsLimit = 10

type (
	ItemService interface {
		AddItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.ItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, userID string) (domain.ItemResponse, error)
		DeleteItem(ctx context.Context, id string, userID string) error
		GetItems(ctx context.Context, userID string) ([]domain.ItemResponse, error)
		GetItemByID(ctx context.Context, id string, userID string) (domain.ItemResponse, error)
		GetExpiringSoon(ctx context.Context, userID string) ([]domain.ItemResponse, error)
		GetItemsByCategory(ctx context.Context, category string, userID string) ([]domain.ItemResponse, error)
		GetItemsByLocation(ctx context.Context, location string, userID string) ([]domain.ItemResponse, error)
		ScanItem(ctx context.Context, req domain.ScanItemRequest, userID string) (domain.ItemResponse, error)
		GetFrequentItems(ctx context.Context, userID string) ([]domain.ItemResponse, error)
		GetStarterItems(ctx context.Context, userID string) ([]domain.ItemResponse, error)
		SeedGuestStarterItems(ctx context.Context, userID string) error
		QuickAdd(ctx context.Context, req domain.QuickAddRequest, userID string) (domain.ItemResponse, error)
		UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, userID string) (domain.ItemResponse, error)
	}

	itemService struct {
		itemRepository ItemRepository
		s3             storage.AwsS3
		now            func() time.Time
	}
)

func NewItemService(itemRepository ItemRepository, s3 storage.AwsS3) ItemService {
	return NewItemServiceWithClock(itemRepository, s3, time.Now)
}

func NewItemServiceWithClock(itemRepository ItemRepository, s3 storage.AwsS3, now func() time.Time) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		s3:             s3,
		now:            now,
	}
}

func (s *itemService) AddItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.ItemResponse, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrParseUUID
	}

	var expiration *time.Time
	switch {
	case req.NonExpiring && req.ExpirationDate != "":
		return domain.ItemResponse{}, domain.ErrNonExpiringWithDate
	case !req.NonExpiring && req.ExpirationDate == "":
		return domain.ItemResponse{}, domain.ErrExpirationRequired
	case req.ExpirationDate != "":
		t, _, err := utils.ParseDate(req.ExpirationDate)
		if err != nil {
			return domain.ItemResponse{}, domain.ErrInvalidExpirationDate
		}
		expiration = &t
	}

	now := s.now()
	purchaseDate := now
	if req.PurchaseDate != "" {
		t, _, err := utils.ParseDate(req.PurchaseDate)
		if err != nil {
			return domain.ItemResponse{}, domain.ErrInvalidPurchaseDate
		}
		purchaseDate = t
	}

	item := &entities.Item{
		ID:              uuid.New(),
		Owner:           &owner,
		Name:            strings.TrimSpace(req.Name),
		Category:        normalizeOr(req.Category, domain.CategoryOther),
		Quantity:        orDefault(req.Quantity, domain.DefaultQuantity),
		ExpirationDate:  expiration,
		PurchaseDate:    purchaseDate,
		StorageLocation: normalizeOr(req.StorageLocation, domain.LocationMain),
		Frequency:       optional(req.Frequency),
		NonExpiring:     req.NonExpiring,
		Notes:           strings.TrimSpace(req.Notes),
		ImageURL:        req.ImageURL,
	}
	if item.Name == "" {
		return domain.ItemResponse{}, fmt.Errorf("%w: name is required", domain.ErrInvalidFieldValue)
	}

	if err := s.itemRepository.AddItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}
	return ToItemResponse(item, now), nil
}

func (s *itemService) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, userID string) (domain.ItemResponse, error) {
	item, err := s.ownedItem(ctx, id, userID)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		item.Name = name
	}
	if req.Category != "" {
		item.Category = strings.ToLower(req.Category)
	}
	if req.Quantity != "" {
		item.Quantity = req.Quantity
	}
	if req.ExpirationDate != "" {
		if item.NonExpiring {
			return domain.ItemResponse{}, domain.ErrNonExpiringWithDate
		}
		t, _, err := utils.ParseDate(req.ExpirationDate)
		if err != nil {
			return domain.ItemResponse{}, domain.ErrInvalidExpirationDate
		}
		item.ExpirationDate = &t
	}
	if req.PurchaseDate != "" {
		t, _, err := utils.ParseDate(req.PurchaseDate)
		if err != nil {
			return domain.ItemResponse{}, domain.ErrInvalidPurchaseDate
		}
		item.PurchaseDate = t
	}
	if req.StorageLocation != "" {
		item.StorageLocation = strings.ToLower(req.StorageLocation)
	}
	if req.Frequency != "" {
		item.Frequency = optional(req.Frequency)
	}
	if req.Notes != "" {
		item.Notes = req.Notes
	}
	if req.ImageURL != "" {
		item.ImageURL = req.ImageURL
	}

	if err := s.itemRepository.UpdateItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}
	return ToItemResponse(item, s.now()), nil
}

func (s *itemService) DeleteItem(ctx context.Context, id string, userID string) error {
	item, err := s.ownedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if item.ImageURL != "" && s.s3 != nil {
		if objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL); objectKey != "" {
			if err := s.s3.DeleteFile(objectKey); err != nil {
				log.Warnf("failed to delete image %s of item %s: %v", objectKey, id, err)
			}
		}
	}

	return s.itemRepository.DeleteItem(ctx, id)
}

func (s *itemService) GetItems(ctx context.Context, userID string) ([]domain.ItemResponse, error) {
	items, err := s.itemRepository.GetItemsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToItemResponses(items, s.now()), nil
}

func (s *itemService) GetItemByID(ctx context.Context, id string, userID string) (domain.ItemResponse, error) {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return domain.ItemResponse{}, err
	}
	if !item.VisibleTo(userID) {
		return domain.ItemResponse{}, domain.ErrUnauthorizedAccess
	}
	return ToItemResponse(item, s.now()), nil
}

func (s *itemService) GetExpiringSoon(ctx context.Context, userID string) ([]domain.ItemResponse, error) {
	now := s.now()
	items, err := s.itemRepository.GetItemsByExpiryRange(ctx, userID, now, now.Add(domain.DefaultSoonWindowDays*expiry.Day))
	if err != nil {
		return nil, err
	}
	return ToItemResponses(items, now), nil
}

func (s *itemService) GetItemsByCategory(ctx context.Context, category string, userID string) ([]domain.ItemResponse, error) {
	items, err := s.itemRepository.GetItemsByCategory(ctx, userID, category)
	if err != nil {
		return nil, err
	}
	return ToItemResponses(items, s.now()), nil
}

func (s *itemService) GetItemsByLocation(ctx context.Context, location string, userID string) ([]domain.ItemResponse, error) {
	items, err := s.itemRepository.GetItemsByLocation(ctx, userID, location)
	if err != nil {
		return nil, err
	}
	return ToItemResponses(items, s.now()), nil
}

func (s *itemService) ScanItem(ctx context.Context, req domain.ScanItemRequest, userID string) (domain.ItemResponse, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrParseUUID
	}

	now := s.now()
	expiration := now.Add(domain.ScannedItemLifetime)
	if req.ExpirationDate != "" {
		t, _, err := utils.ParseDate(req.ExpirationDate)
		if err != nil {
			return domain.ItemResponse{}, domain.ErrInvalidExpirationDate
		}
		expiration = t
	}

	item := &entities.Item{
		ID:              uuid.New(),
		Owner:           &owner,
		Name:            orDefault(strings.TrimSpace(req.Name), "Scanned Item"),
		Category:        normalizeOr(req.Category, domain.CategoryOther),
		Quantity:        orDefault(req.Quantity, domain.DefaultQuantity),
		ExpirationDate:  &expiration,
		PurchaseDate:    now,
		StorageLocation: normalizeOr(req.StorageLocation, domain.LocationMain),
	}

	if err := s.itemRepository.AddItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}
	return ToItemResponse(item, now), nil
}

func (s *itemService) GetFrequentItems(ctx context.Context, userID string) ([]domain.ItemResponse, error) {
	items, err := s.itemRepository.GetFrequentItems(ctx, userID, frequentItemsLimit)
	if err != nil {
		return nil, err
	}
	return ToItemResponses(items, s.now()), nil
}

func (s *itemService) GetStarterItems(ctx context.Context, userID string) ([]domain.ItemResponse, error) {
	items, err := s.itemRepository.GetStarterItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if len(items) > 0 {
		return ToItemResponses(items, now), nil
	}

	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	created := buildStarterItems(defaultStarterItems, owner, now)
	if err := s.itemRepository.AddItems(ctx, created); err != nil {
		return nil, err
	}
	return ToItemResponses(created, now), nil
}

// SeedGuestStarterItems replaces the user's starter templates with a full
// guest fridge.
func (s *itemService) SeedGuestStarterItems(ctx context.Context, userID string) error {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	if err := s.itemRepository.DeleteStarterItems(ctx, userID); err != nil {
		return err
	}
	return s.itemRepository.AddItems(ctx, buildStarterItems(guestStarterItems, owner, s.now()))
}

func (s *itemService) QuickAdd(ctx context.Context, req domain.QuickAddRequest, userID string) (domain.ItemResponse, error) {
	if _, err := s.ownedItem(ctx, req.ItemID, userID); err != nil {
		return domain.ItemResponse{}, err
	}
	item, err := s.itemRepository.QuickAdd(ctx, req.ItemID, req.Quantity)
	if err != nil {
		return domain.ItemResponse{}, err
	}
	return ToItemResponse(item, s.now()), nil
}

func (s *itemService) UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, userID string) (domain.ItemResponse, error) {
	if s.s3 == nil {
		return domain.ItemResponse{}, domain.ErrStorageNotConfigured
	}
	item, err := s.ownedItem(ctx, req.ItemID, userID)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	fileName := fmt.Sprintf("item-%s", item.ID.String())
	var objectKey string
	var uploadErr error

	if existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL); existingKey != "" {
		objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "items", storage.AllowImage...)
	}
	if uploadErr != nil {
		return domain.ItemResponse{}, uploadErr
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.itemRepository.UpdateItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}
	return ToItemResponse(item, s.now()), nil
}

func (s *itemService) findItem(ctx context.Context, id string) (*entities.Item, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrItemNotFound
	}
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// ownedItem loads an item the caller may mutate.
func (s *itemService) ownedItem(ctx context.Context, id string, userID string) (*entities.Item, error) {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Owner == nil {
		return nil, domain.ErrStarterTemplateImmutable
	}
	if !item.OwnedBy(userID) {
		return nil, domain.ErrUnauthorizedAccess
	}
	return item, nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func normalizeOr(value, fallback string) string {
	return strings.ToLower(orDefault(value, fallback))
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	v := strings.ToLower(value)
	return &v
}
