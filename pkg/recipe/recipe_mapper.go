package recipe

import (
	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
)

func toIngredient(ing entities.RecipeIngredient) domain.Ingredient {
	return domain.Ingredient{Name: ing.Name, Quantity: ing.Quantity}
}

// ToRecipe maps a stored recipe; userID marks whether the caller has it
// among their favorites and may be empty. Favoriting users are exposed only
// as a count.
func ToRecipe(r *entities.Recipe, userID string) domain.Recipe {
	ingredients := make([]domain.Ingredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, toIngredient(ing))
	}
	instructions := r.Instructions
	if instructions == nil {
		instructions = []string{}
	}
	return domain.Recipe{
		ID:            r.ID.String(),
		Name:          r.Name,
		Ingredients:   ingredients,
		Time:          r.Time,
		Instructions:  instructions,
		ImageURL:      r.ImageURL,
		Filter:        r.Filter,
		FavoriteCount: len(r.Favorites),
		IsFavorite:    IsFavorite(r.Favorites, userID),
	}
}

func ToRecipes(recipes []*entities.Recipe, userID string) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, ToRecipe(r, userID))
	}
	return out
}
