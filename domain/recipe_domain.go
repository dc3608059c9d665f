package domain

import (
	"errors"
)

const MatchThresholdPercent = 70

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessToggleFavorite  = "recipe favorites updated"
	MessageSuccessSuggestRecipes  = "success suggest recipes"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedToggleFavorite  = "failed to update recipe favorites"
	MessageFailedSuggestRecipes  = "failed to suggest recipes"

	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrInvalidRecipeID  = errors.New("invalid recipe ID")
	ErrInvalidInventory = errors.New("inventory must be an array of ingredients")
)

type (
	Ingredient struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
	}

	Recipe struct {
		ID            string       `json:"id"`
		Name          string       `json:"name"`
		Ingredients   []Ingredient `json:"ingredients"`
		Time          string       `json:"time"`
		Instructions  []string     `json:"instructions"`
		ImageURL      string       `json:"imageUrl,omitempty"`
		Filter        string       `json:"filter,omitempty"`
		FavoriteCount int          `json:"favoriteCount"`
		IsFavorite    bool         `json:"isFavorite"`
	}

	RecipeMatch struct {
		Recipe
		MatchCount         int          `json:"matchCount"`
		TotalIngredients   int          `json:"totalIngredients"`
		MatchPercentage    int          `json:"matchPercentage"`
		MatchedIngredients []Ingredient `json:"matchedIngredients"`
		MissingIngredients []Ingredient `json:"missingIngredients"`
	}

	SuggestRecipesRequest struct {
		Inventory []string `json:"inventory" validate:"required"`
	}
)
