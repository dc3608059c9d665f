package entities

import (
	"time"

	"github.com/google/uuid"
)

type Item struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Owner           *uuid.UUID `gorm:"type:uuid;index" json:"owner,omitempty"`
	Name            string     `gorm:"not null" json:"name"`
	Category        string     `gorm:"not null;default:other" json:"category"`
	Quantity        string     `gorm:"not null" json:"quantity"`
	ExpirationDate  *time.Time `gorm:"type:timestamp;index" json:"expiration_date,omitempty"`
	PurchaseDate    time.Time  `gorm:"type:timestamp" json:"purchase_date"`
	StorageLocation string     `gorm:"default:main" json:"storage_location"`
	Frequency       *string    `json:"frequency,omitempty"` // daily, weekly, monthly, rarely
	NonExpiring     bool       `gorm:"default:false" json:"non_expiring"`
	PurchaseCount   int        `gorm:"default:0" json:"purchase_count"`
	Notes           string     `json:"notes,omitempty"`
	ImageURL        string     `json:"image_url,omitempty"`
	IsStarterItem   bool       `gorm:"default:false;index" json:"is_starter_item"`

	User *User `gorm:"foreignKey:Owner"`
	Timestamp
}

// OwnedBy reports whether userID may mutate the item. Ownerless starter
// templates belong to nobody.
func (i *Item) OwnedBy(userID string) bool {
	return i.Owner != nil && i.Owner.String() == userID
}

// VisibleTo reports whether userID may read the item.
func (i *Item) VisibleTo(userID string) bool {
	return i.Owner == nil || i.Owner.String() == userID
}
