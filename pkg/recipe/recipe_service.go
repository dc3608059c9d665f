package recipe

import (
	"context"
	"errors"
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/pkg/expiry"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// StockSource lists the items whose names count as the caller's stock.
	StockSource interface {
		GetItemsByOwner(ctx context.Context, ownerID string) ([]*entities.Item, error)
	}

	RecipeService interface {
		GetRecipes(ctx context.Context, filter string, userID string) ([]domain.Recipe, error)
		GetRecipeByID(ctx context.Context, id string, userID string) (domain.Recipe, error)
		ToggleFavorite(ctx context.Context, id string, userID string) (domain.Recipe, error)
		GetFavoriteRecipes(ctx context.Context, userID string) ([]domain.Recipe, error)
		SuggestRecipes(ctx context.Context, req domain.SuggestRecipesRequest, userID string) ([]domain.RecipeMatch, error)
		SuggestFromInventory(ctx context.Context, userID string) ([]domain.RecipeMatch, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		stock            StockSource
	}
)

func NewRecipeService(recipeRepository RecipeRepository, stock StockSource) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		stock:            stock,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, filter string, userID string) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToRecipes(recipes, userID), nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id string, userID string) (domain.Recipe, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Recipe{}, domain.ErrInvalidRecipeID
	}
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Recipe{}, domain.ErrRecipeNotFound
		}
		return domain.Recipe{}, err
	}
	return ToRecipe(recipe, userID), nil
}

func (s *recipeService) ToggleFavorite(ctx context.Context, id string, userID string) (domain.Recipe, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Recipe{}, domain.ErrInvalidRecipeID
	}
	if userID == "" {
		return domain.Recipe{}, domain.ErrUserNotAllowed
	}

	recipe, err := s.recipeRepository.UpdateFavorites(ctx, id, func(favorites []string) []string {
		return ToggleFavorite(favorites, userID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Recipe{}, domain.ErrRecipeNotFound
		}
		return domain.Recipe{}, err
	}
	return ToRecipe(recipe, userID), nil
}

func (s *recipeService) GetFavoriteRecipes(ctx context.Context, userID string) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, "")
	if err != nil {
		return nil, err
	}
	favorites := make([]*entities.Recipe, 0)
	for _, r := range recipes {
		if IsFavorite(r.Favorites, userID) {
			favorites = append(favorites, r)
		}
	}
	return ToRecipes(favorites, userID), nil
}

func (s *recipeService) SuggestRecipes(ctx context.Context, req domain.SuggestRecipesRequest, userID string) ([]domain.RecipeMatch, error) {
	if req.Inventory == nil {
		return nil, domain.ErrInvalidInventory
	}
	recipes, err := s.recipeRepository.GetRecipes(ctx, "")
	if err != nil {
		return nil, err
	}
	return Match(recipes, req.Inventory, domain.MatchThresholdPercent, userID), nil
}

// SuggestFromInventory matches the catalog against the names of the
// caller's items that have not expired yet.
func (s *recipeService) SuggestFromInventory(ctx context.Context, userID string) ([]domain.RecipeMatch, error) {
	items, err := s.stock.GetItemsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	names := make([]string, 0, len(items))
	for _, item := range items {
		if expiry.Classify(item, now).IsExpired() {
			continue
		}
		names = append(names, item.Name)
	}
	return s.SuggestRecipes(ctx, domain.SuggestRecipesRequest{Inventory: names}, userID)
}
