package recipe

import (
	"math"
	"sort"
	"strings"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
)

// Normalize is the comparable form of an ingredient name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// StockSet builds a lookup of normalized ingredient names, skipping blanks.
func StockSet(stock []string) map[string]struct{} {
	set := make(map[string]struct{}, len(stock))
	for _, s := range stock {
		if n := Normalize(s); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// Match scores every recipe against stock and keeps those at or above
// threshold percent, best first. Recipes without ingredients never match.
func Match(recipes []*entities.Recipe, stock []string, threshold int, favoriteOf string) []domain.RecipeMatch {
	inStock := StockSet(stock)
	matches := make([]domain.RecipeMatch, 0)

	for _, r := range recipes {
		if r == nil || len(r.Ingredients) == 0 {
			continue
		}

		matched := make([]domain.Ingredient, 0, len(r.Ingredients))
		missing := make([]domain.Ingredient, 0)
		for _, ing := range r.Ingredients {
			if _, ok := inStock[Normalize(ing.Name)]; ok {
				matched = append(matched, toIngredient(ing))
			} else {
				missing = append(missing, toIngredient(ing))
			}
		}

		total := len(r.Ingredients)
		percentage := int(math.Round(float64(len(matched)) / float64(total) * 100))
		if percentage < threshold {
			continue
		}

		matches = append(matches, domain.RecipeMatch{
			Recipe:             ToRecipe(r, favoriteOf),
			MatchCount:         len(matched),
			TotalIngredients:   total,
			MatchPercentage:    percentage,
			MatchedIngredients: matched,
			MissingIngredients: missing,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchPercentage != matches[j].MatchPercentage {
			return matches[i].MatchPercentage > matches[j].MatchPercentage
		}
		return matches[i].MatchCount > matches[j].MatchCount
	})

	return matches
}
