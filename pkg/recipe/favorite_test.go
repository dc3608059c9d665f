package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleFavorite(t *testing.T) {
	tests := []struct {
		name      string
		favorites []string
		id        string
		want      []string
	}{
		{name: "adds when absent", favorites: []string{"a"}, id: "b", want: []string{"a", "b"}},
		{name: "removes when present", favorites: []string{"a", "b"}, id: "a", want: []string{"b"}},
		{name: "nil set", favorites: nil, id: "a", want: []string{"a"}},
		{name: "removes every copy", favorites: []string{"a", "b", "a"}, id: "a", want: []string{"b"}},
		{name: "drops duplicates of others", favorites: []string{"b", "b"}, id: "a", want: []string{"b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToggleFavorite(tt.favorites, tt.id))
		})
	}
}

func TestToggleFavorite_TwiceRestoresMembership(t *testing.T) {
	start := []string{"x", "y"}

	once := ToggleFavorite(start, "z")
	twice := ToggleFavorite(once, "z")

	assert.Contains(t, once, "z")
	assert.Equal(t, start, twice)
	assert.Equal(t, []string{"x", "y"}, start, "input is not modified")
}

func TestIsFavorite(t *testing.T) {
	assert.True(t, IsFavorite([]string{"a"}, "a"))
	assert.False(t, IsFavorite([]string{"a"}, "b"))
	assert.False(t, IsFavorite([]string{""}, ""))
}
