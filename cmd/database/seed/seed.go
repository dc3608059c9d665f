package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/pkg/recipe"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:embed recipes.json
var recipeCatalog []byte

// LoadRecipes decodes the bundled recipe catalog.
func LoadRecipes() ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := json.Unmarshal(recipeCatalog, &recipes); err != nil {
		return nil, fmt.Errorf("decode recipe catalog: %w", err)
	}
	for _, r := range recipes {
		r.ID = uuid.New()
		if r.Favorites == nil {
			r.Favorites = []string{}
		}
	}
	return recipes, nil
}

// Seed fills an empty recipe table with the bundled catalog.
func Seed(db *gorm.DB) error {
	ctx := context.Background()
	repo := recipe.NewRecipeRepository(db)

	count, err := repo.CountRecipes(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Infof("recipe catalog already holds %d recipes, skipping seed", count)
		return nil
	}

	recipes, err := LoadRecipes()
	if err != nil {
		return err
	}
	if err := repo.CreateRecipes(ctx, recipes); err != nil {
		return err
	}
	log.Infof("seeded %d recipes", len(recipes))
	return nil
}
