package service

import (
	"sort"
	"strings"

	"github.com/fridgechef/backend/internal/types"
)

// ViewRecipes applies browse filters and sorting to a recipe set. The input
// slice is not modified. Filter fields are conjunctive; a zero MaxTime and
// empty difficulty/cuisine sets match everything.
func ViewRecipes(recipes []types.Recipe, filters types.RecipeFilters) []types.Recipe {
	out := make([]types.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if filters.MaxTime > 0 && r.TimeMinutes > filters.MaxTime {
			continue
		}
		if len(filters.Difficulty) > 0 && !containsFold(filters.Difficulty, r.Difficulty) {
			continue
		}
		if len(filters.Cuisine) > 0 && !containsFold(filters.Cuisine, r.Cuisine) {
			continue
		}
		if filters.OnlyComplete && len(r.MissingIngredients) > 0 {
			continue
		}
		out = append(out, r)
	}

	switch filters.SortBy {
	case types.SortByTime:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TimeMinutes < out[j].TimeMinutes
		})
	case types.SortByMissing:
		sort.SliceStable(out, func(i, j int) bool {
			return len(out[i].MissingIngredients) < len(out[j].MissingIngredients)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].MatchScore > out[j].MatchScore
		})
	}
	return out
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
