package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email         string            `gorm:"uniqueIndex;not null" json:"email"`
	Password      string            `gorm:"not null" json:"-"`
	Name          string            `gorm:"not null" json:"name"`
	Phone         string            `gorm:"default:000-000-0000" json:"phone"`
	IsGuest       bool              `gorm:"default:false" json:"is_guest"`
	FridgeModel   FridgeModel       `gorm:"type:text;serializer:json" json:"fridge_model"`
	Dietary       DietaryPreference `gorm:"type:text;serializer:json" json:"dietary"`
	Notifications NotificationPrefs `gorm:"type:text;serializer:json" json:"notifications"`

	Timestamp
}

type FridgeModel struct {
	FridgeBrand string         `json:"fridgeBrand"`
	ModelName   string         `json:"modelName"`
	Features    FridgeFeatures `json:"Features"`
}

type FridgeFeatures struct {
	Humidity           bool `json:"humidity"`
	FreezerCompartment bool `json:"freezerCompartment"`
	VegetableDrawer    bool `json:"vegetableDrawer"`
	IceMaker           bool `json:"iceMaker"`
	TouchscreenPanel   bool `json:"touchscreenPanel"`
}

type DietaryPreference struct {
	DietType       string   `json:"dietType"`
	NutritionGoals string   `json:"nutritionGoals"`
	Allergies      []string `json:"allergies"`
}

type NotificationPrefs struct {
	Email bool `json:"email"`
	App   bool `json:"app"`
	SMS   bool `json:"sms"`
}

// DefaultFridgeModel mirrors the profile a new account starts with.
func DefaultFridgeModel() FridgeModel {
	return FridgeModel{
		FridgeBrand: "Samsung",
		ModelName:   "S29",
		Features:    FridgeFeatures{FreezerCompartment: true},
	}
}
