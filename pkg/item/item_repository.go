package item

import (
	"context"
	"strings"
	"time"

	"Smart-Fridge-Backend/entities"

	"gorm.io/gorm"
)

type (
	ItemRepository interface {
		AddItem(ctx context.Context, item *entities.Item) error
		AddItems(ctx context.Context, items []*entities.Item) error
		GetItemByID(ctx context.Context, id string) (*entities.Item, error)
		UpdateItem(ctx context.Context, item *entities.Item) error
		DeleteItem(ctx context.Context, id string) error
		GetItemsByOwner(ctx context.Context, ownerID string) ([]*entities.Item, error)
		GetItemsByExpiryRange(ctx context.Context, ownerID string, start, end time.Time) ([]*entities.Item, error)
		GetItemsByCategory(ctx context.Context, ownerID string, category string) ([]*entities.Item, error)
		GetItemsByLocation(ctx context.Context, ownerID string, location string) ([]*entities.Item, error)
		GetFrequentItems(ctx context.Context, ownerID string, limit int) ([]*entities.Item, error)

		// Starter templates
		GetStarterItems(ctx context.Context, ownerID string) ([]*entities.Item, error)
		DeleteStarterItems(ctx context.Context, ownerID string) error

		QuickAdd(ctx context.Context, id string, quantity string) (*entities.Item, error)
	}

	itemRepository struct {
		db *gorm.DB
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) AddItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) AddItems(ctx context.Context, items []*entities.Item) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *itemRepository) GetItemByID(ctx context.Context, id string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Item{}).Error
}

func (r *itemRepository) GetItemsByOwner(ctx context.Context, ownerID string) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).
		Where("owner = ?", ownerID).
		Order("expiration_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) GetItemsByExpiryRange(ctx context.Context, ownerID string, start, end time.Time) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).
		Where("owner = ? AND non_expiring = ? AND expiration_date BETWEEN ? AND ?", ownerID, false, start, end).
		Order("expiration_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) GetItemsByCategory(ctx context.Context, ownerID string, category string) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).
		Where("owner = ? AND LOWER(category) LIKE ?", ownerID, containsPattern(category)).
		Order("expiration_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) GetItemsByLocation(ctx context.Context, ownerID string, location string) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).
		Where("owner = ? AND LOWER(storage_location) LIKE ?", ownerID, containsPattern(location)).
		Order("expiration_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) GetFrequentItems(ctx context.Context, ownerID string, limit int) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).
		Where("owner = ?", ownerID).
		Where(r.db.Where("frequency IN ?", []string{"daily", "weekly"}).Or("purchase_count > ?", 3)).
		Order("purchase_count desc").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) GetStarterItems(ctx context.Context, ownerID string) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).
		Where("is_starter_item = ?", true).
		Where(r.db.Where("owner = ?", ownerID).Or("owner IS NULL")).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) DeleteStarterItems(ctx context.Context, ownerID string) error {
	return r.db.WithContext(ctx).
		Where("is_starter_item = ? AND owner = ?", true, ownerID).
		Delete(&entities.Item{}).Error
}

func (r *itemRepository) QuickAdd(ctx context.Context, id string, quantity string) (*entities.Item, error) {
	if err := r.db.WithContext(ctx).Model(&entities.Item{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":       quantity,
			"purchase_count": gorm.Expr("purchase_count + ?", 1),
		}).Error; err != nil {
		return nil, err
	}
	return r.GetItemByID(ctx, id)
}

// containsPattern builds a case-insensitive LIKE pattern with the user's
// wildcards escaped.
func containsPattern(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + s + "%"
}
