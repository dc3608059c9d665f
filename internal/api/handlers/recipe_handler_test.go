package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRecipeService struct {
	mock.Mock
}

func (m *mockRecipeService) GetRecipes(ctx context.Context, filter string, userID string) ([]domain.Recipe, error) {
	args := m.Called(filter, userID)
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *mockRecipeService) GetRecipeByID(ctx context.Context, id string, userID string) (domain.Recipe, error) {
	args := m.Called(id, userID)
	return args.Get(0).(domain.Recipe), args.Error(1)
}

func (m *mockRecipeService) ToggleFavorite(ctx context.Context, id string, userID string) (domain.Recipe, error) {
	args := m.Called(id, userID)
	return args.Get(0).(domain.Recipe), args.Error(1)
}

func (m *mockRecipeService) GetFavoriteRecipes(ctx context.Context, userID string) ([]domain.Recipe, error) {
	args := m.Called(userID)
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *mockRecipeService) SuggestRecipes(ctx context.Context, req domain.SuggestRecipesRequest, userID string) ([]domain.RecipeMatch, error) {
	args := m.Called(req, userID)
	return args.Get(0).([]domain.RecipeMatch), args.Error(1)
}

func (m *mockRecipeService) SuggestFromInventory(ctx context.Context, userID string) ([]domain.RecipeMatch, error) {
	args := m.Called(userID)
	return args.Get(0).([]domain.RecipeMatch), args.Error(1)
}

func newRecipeApp(svc *mockRecipeService) *fiber.App {
	utils.InitValidator()
	h := NewRecipeHandler(svc, utils.Validate)
	app := fiber.New()
	app.Get("/api/recipes", h.GetRecipes)
	app.Get("/api/recipes/:id", h.GetRecipeDetail)
	app.Put("/api/recipes/:id/favorite", withUser("user-1"), h.ToggleFavorite)
	app.Post("/api/recipes/suggest", h.SuggestRecipes)
	return app
}

func postJSON(t *testing.T, app *fiber.App, target, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	var out envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestSuggestRecipes(t *testing.T) {
	svc := new(mockRecipeService)
	svc.On("SuggestRecipes", domain.SuggestRecipesRequest{Inventory: []string{"eggs", "milk", "cheese"}}, "").
		Return([]domain.RecipeMatch{{Recipe: domain.Recipe{Name: "Omelette"}, MatchCount: 3, TotalIngredients: 3, MatchPercentage: 100}}, nil)

	status, body := postJSON(t, newRecipeApp(svc), "/api/recipes/suggest", `{"inventory":["eggs","milk","cheese"]}`)

	assert.Equal(t, fiber.StatusOK, status)
	var matches []domain.RecipeMatch
	require.NoError(t, json.Unmarshal(body.Data, &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, 100, matches[0].MatchPercentage)
}

func TestSuggestRecipes_InvalidInventory(t *testing.T) {
	svc := new(mockRecipeService)
	app := newRecipeApp(svc)

	for _, payload := range []string{`{}`, `{"inventory":"eggs"}`} {
		status, body := postJSON(t, app, "/api/recipes/suggest", payload)
		assert.Equal(t, fiber.StatusBadRequest, status, payload)
		assert.Equal(t, domain.ErrInvalidInventory.Error(), body.Error, payload)
	}
	svc.AssertNotCalled(t, "SuggestRecipes", mock.Anything, mock.Anything)
}

func TestGetRecipeDetail_NotFound(t *testing.T) {
	svc := new(mockRecipeService)
	svc.On("GetRecipeByID", "missing", "").Return(domain.Recipe{}, domain.ErrRecipeNotFound)

	status, body := doRequest(t, newRecipeApp(svc), fiber.MethodGet, "/api/recipes/missing")

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "error", body.Status)
}

func TestToggleFavorite_UsesCaller(t *testing.T) {
	svc := new(mockRecipeService)
	svc.On("ToggleFavorite", "r-1", "user-1").Return(domain.Recipe{ID: "r-1", FavoriteCount: 1, IsFavorite: true}, nil)

	status, body := doRequest(t, newRecipeApp(svc), fiber.MethodPut, "/api/recipes/r-1/favorite")

	assert.Equal(t, fiber.StatusOK, status)
	var recipe domain.Recipe
	require.NoError(t, json.Unmarshal(body.Data, &recipe))
	assert.True(t, recipe.IsFavorite)
	svc.AssertExpectations(t)
}

func TestGetRecipes_PassesFilter(t *testing.T) {
	svc := new(mockRecipeService)
	svc.On("GetRecipes", "vegan", "").Return([]domain.Recipe{}, nil)

	status, _ := doRequest(t, newRecipeApp(svc), fiber.MethodGet, "/api/recipes?filter=vegan")

	assert.Equal(t, fiber.StatusOK, status)
	svc.AssertExpectations(t)
}
