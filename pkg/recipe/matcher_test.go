package recipe

import (
	"testing"

	"Smart-Fridge-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipeWith(name string, ingredients ...string) *entities.Recipe {
	r := &entities.Recipe{ID: uuid.New(), Name: name}
	for _, ing := range ingredients {
		r.Ingredients = append(r.Ingredients, entities.RecipeIngredient{Name: ing, Quantity: "1"})
	}
	return r
}

func TestMatch_BelowThresholdExcluded(t *testing.T) {
	recipes := []*entities.Recipe{recipeWith("Omelette", "Eggs", "Milk", "Cheese")}

	got := Match(recipes, []string{"eggs", "milk"}, 70, "")

	assert.Empty(t, got)
}

func TestMatch_FullMatch(t *testing.T) {
	recipes := []*entities.Recipe{recipeWith("Omelette", "Eggs", "Milk", "Cheese")}

	got := Match(recipes, []string{"EGGS ", " milk", "Cheese"}, 70, "")

	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].MatchCount)
	assert.Equal(t, 3, got[0].TotalIngredients)
	assert.Equal(t, 100, got[0].MatchPercentage)
	assert.Empty(t, got[0].MissingIngredients)
}

func TestMatch_SortedByPercentageThenCount(t *testing.T) {
	stock := []string{"a", "b", "c", "d", "e", "f", "g"}
	recipes := []*entities.Recipe{
		recipeWith("Small", "a", "b", "c", "q"),
		recipeWith("Below", "a", "b", "c", "x", "y", "z", "d", "e"),
		recipeWith("Large", "a", "b", "c", "d", "e", "f", "g", "q"),
		recipeWith("Exact", "a", "b"),
		recipeWith("Same", "a", "q", "b", "c"),
		recipeWith("Wide", "a", "b", "c", "d", "e", "f", "q", "r"),
	}

	got := Match(recipes, stock, 70, "")

	names := make([]string, 0, len(got))
	percentages := make([]int, 0, len(got))
	for _, m := range got {
		names = append(names, m.Name)
		percentages = append(percentages, m.MatchPercentage)
	}
	assert.Equal(t, []string{"Exact", "Large", "Wide", "Small", "Same"}, names)
	assert.Equal(t, []int{100, 88, 75, 75, 75}, percentages)
}

func TestMatch_PartitionsIngredients(t *testing.T) {
	r := recipeWith("Salad", "Lettuce", "Tomatoes", "Cucumber", "Olive Oil")

	got := Match([]*entities.Recipe{r}, []string{"lettuce", "tomatoes", "olive oil"}, 0, "")

	require.Len(t, got, 1)
	m := got[0]
	assert.Equal(t, 75, m.MatchPercentage)
	assert.Len(t, m.MatchedIngredients, m.MatchCount)
	assert.Equal(t, m.TotalIngredients, len(m.MatchedIngredients)+len(m.MissingIngredients))
	assert.Equal(t, "Cucumber", m.MissingIngredients[0].Name)
}

func TestMatch_ZeroIngredientRecipeNeverQualifies(t *testing.T) {
	got := Match([]*entities.Recipe{recipeWith("Air")}, []string{"anything"}, 0, "")
	assert.Empty(t, got)
}

func TestMatch_EmptyStock(t *testing.T) {
	got := Match([]*entities.Recipe{recipeWith("Toast", "Bread")}, nil, 70, "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatch_Rounding(t *testing.T) {
	// 2/3 rounds to 67
	got := Match([]*entities.Recipe{recipeWith("Trio", "a", "b", "c")}, []string{"a", "b"}, 67, "")
	require.Len(t, got, 1)
	assert.Equal(t, 67, got[0].MatchPercentage)
}

func TestMatch_MarksFavorite(t *testing.T) {
	r := recipeWith("Toast", "Bread")
	r.Favorites = []string{"user-1"}

	got := Match([]*entities.Recipe{r}, []string{"bread"}, 70, "user-1")

	require.Len(t, got, 1)
	assert.True(t, got[0].IsFavorite)
}

func TestStockSet(t *testing.T) {
	set := StockSet([]string{" Milk", "milk", "", "  ", "EGGS"})
	assert.Len(t, set, 2)
	assert.Contains(t, set, "milk")
	assert.Contains(t, set, "eggs")
}
