package recipe

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockRecipeRepository struct {
	mock.Mock
}

func (m *mockRecipeRepository) CreateRecipes(ctx context.Context, recipes []*entities.Recipe) error {
	return m.Called(ctx, recipes).Error(0)
}

func (m *mockRecipeRepository) CountRecipes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*entities.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecipeRepository) GetRecipes(ctx context.Context, filter string) ([]*entities.Recipe, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) UpdateFavorites(ctx context.Context, id string, toggle func([]string) []string) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	r := args.Get(0).(*entities.Recipe)
	r.Favorites = toggle(r.Favorites)
	return r, nil
}

type mockStock struct {
	mock.Mock
}

func (m *mockStock) GetItemsByOwner(ctx context.Context, ownerID string) ([]*entities.Item, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]*entities.Item), args.Error(1)
}

func TestRecipeService_ToggleFavorite(t *testing.T) {
	ctx := context.Background()
	r := recipeWith("Toast", "Bread")
	r.Favorites = []string{"someone-else"}

	repo := new(mockRecipeRepository)
	repo.On("UpdateFavorites", ctx, r.ID.String()).Return(r, nil)
	svc := NewRecipeService(repo, new(mockStock))

	res, err := svc.ToggleFavorite(ctx, r.ID.String(), "user-1")
	require.NoError(t, err)
	assert.True(t, res.IsFavorite)
	assert.Equal(t, 2, res.FavoriteCount)

	res, err = svc.ToggleFavorite(ctx, r.ID.String(), "user-1")
	require.NoError(t, err)
	assert.False(t, res.IsFavorite)
	assert.Equal(t, 1, res.FavoriteCount)
}

func TestRecipeService_ToggleFavorite_Errors(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRecipeRepository)
	svc := NewRecipeService(repo, new(mockStock))

	_, err := svc.ToggleFavorite(ctx, "not-a-uuid", "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidRecipeID)

	id := uuid.NewString()
	repo.On("UpdateFavorites", ctx, id).Return(nil, gorm.ErrRecordNotFound)
	_, err = svc.ToggleFavorite(ctx, id, "user-1")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRecipeService_GetRecipeByID(t *testing.T) {
	ctx := context.Background()
	r := recipeWith("Toast", "Bread")
	missing := uuid.NewString()

	repo := new(mockRecipeRepository)
	repo.On("GetRecipeByID", ctx, r.ID.String()).Return(r, nil)
	repo.On("GetRecipeByID", ctx, missing).Return(nil, gorm.ErrRecordNotFound)
	svc := NewRecipeService(repo, new(mockStock))

	res, err := svc.GetRecipeByID(ctx, r.ID.String(), "")
	require.NoError(t, err)
	assert.Equal(t, "Toast", res.Name)
	assert.Zero(t, res.FavoriteCount)

	_, err = svc.GetRecipeByID(ctx, missing, "")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRecipeService_GetFavoriteRecipes(t *testing.T) {
	ctx := context.Background()
	liked := recipeWith("Liked", "a")
	liked.Favorites = []string{"user-1"}
	other := recipeWith("Other", "a")

	repo := new(mockRecipeRepository)
	repo.On("GetRecipes", ctx, "").Return([]*entities.Recipe{liked, other}, nil)
	svc := NewRecipeService(repo, new(mockStock))

	res, err := svc.GetFavoriteRecipes(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Liked", res[0].Name)
}

func TestRecipeService_SuggestRecipes(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRecipeRepository)
	repo.On("GetRecipes", ctx, "").Return([]*entities.Recipe{
		recipeWith("Omelette", "Eggs", "Milk", "Cheese"),
		recipeWith("Pancakes", "Eggs", "Milk", "Flour"),
	}, nil)
	svc := NewRecipeService(repo, new(mockStock))

	res, err := svc.SuggestRecipes(ctx, domain.SuggestRecipesRequest{Inventory: []string{"eggs", "milk", "cheese"}}, "")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Omelette", res[0].Name)

	_, err = svc.SuggestRecipes(ctx, domain.SuggestRecipesRequest{}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInventory)
}

func TestRecipeService_SuggestFromInventory_SkipsExpired(t *testing.T) {
	ctx := context.Background()
	fresh := time.Now().Add(48 * time.Hour)
	stale := time.Now().Add(-48 * time.Hour)

	stock := new(mockStock)
	stock.On("GetItemsByOwner", ctx, "user-1").Return([]*entities.Item{
		{Name: "Eggs", ExpirationDate: &fresh},
		{Name: "Milk", ExpirationDate: &stale},
		{Name: "Salt", NonExpiring: true},
	}, nil)
	repo := new(mockRecipeRepository)
	repo.On("GetRecipes", ctx, "").Return([]*entities.Recipe{
		recipeWith("Eggs And Salt", "Eggs", "Salt"),
		recipeWith("Milky Eggs", "Eggs", "Milk"),
	}, nil)
	svc := NewRecipeService(repo, stock)

	res, err := svc.SuggestFromInventory(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Eggs And Salt", res[0].Name)
}

func TestRecipeService_GetRecipes_HidesFavoritingUsers(t *testing.T) {
	ctx := context.Background()
	r := recipeWith("Toast", "Bread")
	r.Favorites = []string{"user-1", "user-2"}

	repo := new(mockRecipeRepository)
	repo.On("GetRecipes", ctx, "").Return([]*entities.Recipe{r}, nil)
	svc := NewRecipeService(repo, new(mockStock))

	res, err := svc.GetRecipes(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 2, res[0].FavoriteCount)
	assert.False(t, res[0].IsFavorite)

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "user-1")
	assert.NotContains(t, string(body), "user-2")
}
