package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	CategoryDairy      = "dairy"
	CategoryMeat       = "meat"
	CategoryVegetables = "vegetables"
	CategoryFruits     = "fruits"
	CategoryBeverages  = "beverages"
	CategoryLeftovers  = "leftovers"
	CategoryCondiments = "condiments"
	CategoryOther      = "other"

	LocationMain        = "main"
	LocationDoor        = "door"
	LocationFreezer     = "freezer"
	LocationCrisper     = "crisper"
	LocationDeliDrawer  = "deli drawer"
	LocationOther       = "other"
	DefaultQuantity     = "1 item"
	ScannedItemLifetime = 14 * 24 * time.Hour
)

var (
	Categories = []string{
		CategoryDairy, CategoryMeat, CategoryVegetables, CategoryFruits,
		CategoryBeverages, CategoryLeftovers, CategoryCondiments, CategoryOther,
	}
	StorageLocations = []string{
		LocationMain, LocationDoor, LocationFreezer, LocationCrisper, LocationDeliDrawer, LocationOther,
	}
	Frequencies = []string{"daily", "weekly", "monthly", "rarely"}
)

var (
	MessageSuccessAddItem        = "item added successfully"
	MessageSuccessUpdateItem     = "item updated successfully"
	MessageSuccessDeleteItem     = "item deleted successfully"
	MessageSuccessGetItems       = "items retrieved successfully"
	MessageSuccessScanItem       = "item scanned and added successfully"
	MessageSuccessQuickAdd       = "item quickly added to inventory"
	MessageSuccessUploadImage    = "item image uploaded successfully"
	MessageSuccessGetStarterItem = "starter items retrieved successfully"

	MessageFailedAddItem        = "failed to add item"
	MessageFailedUpdateItem     = "failed to update item"
	MessageFailedDeleteItem     = "failed to delete item"
	MessageFailedGetItems       = "failed to retrieve items"
	MessageFailedScanItem       = "failed to scan item"
	MessageFailedQuickAdd       = "failed to quick add item"
	MessageFailedUploadImage    = "failed to upload item image"
	MessageFailedGetStarterItem = "failed to retrieve starter items"

	ErrItemNotFound             = errors.New("item not found")
	ErrUnauthorizedAccess       = errors.New("user not authorized")
	ErrExpirationRequired       = errors.New("expiration date is required for expiring items")
	ErrNonExpiringWithDate      = errors.New("non-expiring items must not carry an expiration date")
	ErrInvalidExpirationDate    = errors.New("invalid expiration date format")
	ErrInvalidPurchaseDate      = errors.New("invalid purchase date format")
	ErrInvalidImageFormat       = errors.New("invalid image format")
	ErrInvalidCategory          = errors.New("invalid category")
	ErrInvalidStorageLocation   = errors.New("invalid storage location")
	ErrStorageNotConfigured     = errors.New("image storage is not configured")
	ErrStarterTemplateImmutable = errors.New("starter templates cannot be modified")
)

type (
	AddItemRequest struct {
		Name            string `json:"name" validate:"required"`
		Category        string `json:"category" validate:"required,category"`
		Quantity        string `json:"quantity"`
		ExpirationDate  string `json:"expirationDate"`
		PurchaseDate    string `json:"purchaseDate"`
		StorageLocation string `json:"storageLocation" validate:"omitempty,location"`
		Frequency       string `json:"frequency" validate:"omitempty,oneof=daily weekly monthly rarely"`
		NonExpiring     bool   `json:"nonExpiring"`
		Notes           string `json:"notes"`
		ImageURL        string `json:"imageUrl" validate:"omitempty,url"`
	}

	UpdateItemRequest struct {
		Name            string `json:"name"`
		Category        string `json:"category" validate:"omitempty,category"`
		Quantity        string `json:"quantity"`
		ExpirationDate  string `json:"expirationDate"`
		PurchaseDate    string `json:"purchaseDate"`
		StorageLocation string `json:"storageLocation" validate:"omitempty,location"`
		Frequency       string `json:"frequency" validate:"omitempty,oneof=daily weekly monthly rarely"`
		Notes           string `json:"notes"`
		ImageURL        string `json:"imageUrl" validate:"omitempty,url"`
	}

	ScanItemRequest struct {
		Name            string `json:"name"`
		Category        string `json:"category" validate:"omitempty,category"`
		Quantity        string `json:"quantity"`
		ExpirationDate  string `json:"expirationDate"`
		StorageLocation string `json:"storageLocation" validate:"omitempty,location"`
	}

	QuickAddRequest struct {
		ItemID   string `json:"itemId" validate:"required,uuid"`
		Quantity string `json:"quantity" validate:"required"`
	}

	UploadItemImageRequest struct {
		ItemID string                `json:"item_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ItemResponse struct {
		ID                  string     `json:"id"`
		Name                string     `json:"name"`
		Category            string     `json:"category"`
		Quantity            string     `json:"quantity"`
		ExpirationDate      *time.Time `json:"expirationDate,omitempty"`
		PurchaseDate        time.Time  `json:"purchaseDate"`
		StorageLocation     string     `json:"storageLocation"`
		Frequency           *string    `json:"frequency,omitempty"`
		NonExpiring         bool       `json:"nonExpiring"`
		PurchaseCount       int        `json:"purchaseCount"`
		Notes               string     `json:"notes,omitempty"`
		ImageURL            string     `json:"imageUrl,omitempty"`
		IsStarterItem       bool       `json:"isStarterItem"`
		IsExpired           bool       `json:"isExpired"`
		DaysUntilExpiration *int       `json:"daysUntilExpiration"`
		CreatedAt           time.Time  `json:"createdAt"`
	}
)
