package types

// Sort keys for the recipe view.
const (
	SortByMatch   = "match"
	SortByTime    = "time"
	SortByMissing = "missing"
)

// RecipeFilters selects and orders a recipe list for display. Empty
// difficulty/cuisine sets keep everything; MaxTime zero means unbounded.
type RecipeFilters struct {
	MaxTime      int      `json:"maxTime,omitempty" form:"max_time"`
	Difficulty   []string `json:"difficulty,omitempty" form:"difficulty"`
	Cuisine      []string `json:"cuisine,omitempty" form:"cuisine"`
	OnlyComplete bool     `json:"onlyComplete" form:"only_complete"`
	SortBy       string   `json:"sortBy" form:"sort_by"`
}

// DefaultFilters returns the cleared-filters state.
func DefaultFilters() RecipeFilters {
	return RecipeFilters{SortBy: SortByMatch}
}
