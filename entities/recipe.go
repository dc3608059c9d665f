package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID           uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string             `gorm:"not null" json:"name"`
	Ingredients  []RecipeIngredient `gorm:"type:text;serializer:json" json:"ingredients"`
	Time         string             `json:"time"`
	Instructions []string           `gorm:"type:text;serializer:json" json:"instructions"`
	ImageURL     string             `json:"image_url,omitempty"`
	Filter       string             `gorm:"index" json:"filter,omitempty"`
	Favorites    []string           `gorm:"type:text;serializer:json" json:"favorite"`

	Timestamp
}

type RecipeIngredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}
