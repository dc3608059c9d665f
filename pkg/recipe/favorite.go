package recipe

import (
	"slices"
)

// ToggleFavorite removes id from favorites when present and appends it
// otherwise. The input is not modified and the result has no duplicates.
func ToggleFavorite(favorites []string, id string) []string {
	present := slices.Contains(favorites, id)

	out := make([]string, 0, len(favorites)+1)
	seen := make(map[string]struct{}, len(favorites)+1)
	for _, f := range favorites {
		if f == id {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	if !present {
		out = append(out, id)
	}
	return out
}

func IsFavorite(favorites []string, id string) bool {
	return id != "" && slices.Contains(favorites, id)
}
