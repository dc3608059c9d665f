package recipe

import (
	"context"

	"Smart-Fridge-Backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		CreateRecipes(ctx context.Context, recipes []*entities.Recipe) error
		CountRecipes(ctx context.Context) (int64, error)
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, filter string) ([]*entities.Recipe, error)
		// UpdateFavorites applies toggle to the stored favorites of one
		// recipe under a row lock and returns the updated recipe.
		UpdateFavorites(ctx context.Context, id string, toggle func([]string) []string) (*entities.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipes(ctx context.Context, recipes []*entities.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&recipes).Error
}

func (r *recipeRepository) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	query := r.db.WithContext(ctx)
	if filter != "" {
		query = query.Where("LOWER(filter) = LOWER(?)", filter)
	}
	if err := query.Order("name asc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateFavorites(ctx context.Context, id string, toggle func([]string) []string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&recipe).Error; err != nil {
			return err
		}
		recipe.Favorites = toggle(recipe.Favorites)
		return tx.Model(&recipe).Select("favorites").Updates(&recipe).Error
	})
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}
