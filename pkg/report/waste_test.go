package report

import (
	"testing"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaste(t *testing.T) {
	start := now.Add(-10 * day)
	end := now

	items := []*entities.Item{
		expiring("Milk", "dairy", -2*day),
		expiring("Lettuce", "vegetables", -5*day),
		expiring("Old Bread", "other", -20*day),
		expiring("Steak", "meat", 3*day),
		nonExpiring("Salt", "condiments"),
		undated("Cream"),
	}

	res, anomalies, err := Waste(items, start, end)
	require.NoError(t, err)

	assert.Equal(t, 2, res.TotalExpired)
	assert.Equal(t, 2, res.TotalTracked)
	assert.Equal(t, 6, res.TotalInventory)
	assert.Equal(t, 100.0, res.WasteRatio)
	assert.Equal(t, map[string][]string{
		"dairy":      {"Milk"},
		"vegetables": {"Lettuce"},
	}, res.Breakdown)
	require.Len(t, anomalies, 1)
	assert.Equal(t, "Cream", anomalies[0].Name)
}

func TestWaste_BoundsAreInclusive(t *testing.T) {
	start := now.Add(-3 * day)
	end := now.Add(-1 * day)

	items := []*entities.Item{
		expiring("AtStart", "dairy", -3*day),
		expiring("AtEnd", "dairy", -1*day),
		expiring("JustAfter", "dairy", -1*day+1),
	}

	res, _, err := Waste(items, start, end)
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalExpired)
	assert.Equal(t, []string{"AtStart", "AtEnd"}, res.Breakdown["dairy"])
}

func TestWaste_NothingInRange(t *testing.T) {
	res, _, err := Waste([]*entities.Item{expiring("Milk", "dairy", 5*day)}, now.Add(-day), now)
	require.NoError(t, err)

	assert.Zero(t, res.TotalExpired)
	assert.Zero(t, res.WasteRatio)
	assert.Equal(t, 1, res.TotalInventory)
	assert.NotNil(t, res.Breakdown)
}

func TestWaste_InvertedRange(t *testing.T) {
	_, _, err := Waste(nil, now, now.Add(-day))
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestWaste_NonExpiringWithStoredDateIsNotWaste(t *testing.T) {
	salt := nonExpiring("Salt", "condiments")
	salt.ExpirationDate = ptrTime(now.Add(-day))

	res, anomalies, err := Waste([]*entities.Item{salt}, now.Add(-10*day), now)
	require.NoError(t, err)
	assert.Zero(t, res.TotalExpired)
	assert.Empty(t, anomalies)
}

func TestWasteRatio(t *testing.T) {
	assert.Equal(t, 0.0, wasteRatio(0, 0))
	assert.Equal(t, 33.3, wasteRatio(1, 3))
	assert.Equal(t, 66.7, wasteRatio(2, 3))
	assert.Equal(t, 100.0, wasteRatio(4, 4))
}
