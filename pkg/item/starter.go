package item

import (
	"time"

	"Smart-Fridge-Backend/entities"

	"github.com/google/uuid"
)

type starterTemplate struct {
	name      string
	category  string
	quantity  string
	expiresIn int // days from seeding; 0 means non-expiring
}

var (
	// defaultStarterItems is handed out when a user asks for templates and
	// none exist yet.
	defaultStarterItems = []starterTemplate{
		{"Salt", "condiments", "1 container", 0},
		{"Sugar", "condiments", "1 bag", 0},
	}

	// guestStarterItems fills a fresh guest fridge.
	guestStarterItems = []starterTemplate{
		{"Salt", "condiments", "1 container", 0},
		{"Black Pepper", "condiments", "1 container", 0},
		{"Olive Oil", "condiments", "1 bottle", 8},
		{"Soy Sauce", "condiments", "1 bottle", 10},
		{"Sugar", "other", "1 bag", 0},
		{"Flour", "other", "1 bag", 14},
		{"Baking Soda", "other", "1 box", 0},
		{"Rice", "other", "1 bag", 18},
		{"Pasta", "other", "1 box", 20},
		{"Butter", "dairy", "1 package", 22},
		{"Eggs", "dairy", "1 dozen", 24},
		{"Milk", "dairy", "1 gallon", 26},
		{"Canned Beans", "other", "1 can", 28},
		{"Canned Tomatoes", "vegetables", "1 can", 30},
		{"Chicken Broth", "other", "1 container", 32},
	}
)

func buildStarterItems(templates []starterTemplate, owner uuid.UUID, now time.Time) []*entities.Item {
	items := make([]*entities.Item, 0, len(templates))
	for _, t := range templates {
		ownerID := owner
		item := &entities.Item{
			ID:              uuid.New(),
			Owner:           &ownerID,
			Name:            t.name,
			Category:        t.category,
			Quantity:        t.quantity,
			PurchaseDate:    now,
			StorageLocation: "main",
			NonExpiring:     t.expiresIn == 0,
			IsStarterItem:   true,
		}
		if t.expiresIn > 0 {
			exp := now.AddDate(0, 0, t.expiresIn)
			item.ExpirationDate = &exp
		}
		items = append(items, item)
	}
	return items
}
