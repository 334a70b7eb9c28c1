package types

// Difficulty values a recipe may carry.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Substitution pairs a missing ingredient with suggested replacements.
type Substitution struct {
	Missing string   `json:"missing"`
	Options []string `json:"options"`
}

// Nutrition holds the model's per-recipe nutrition estimate.
type Nutrition struct {
	Calories int `json:"calories"`
	ProteinG int `json:"proteinG"`
	CarbsG   int `json:"carbsG"`
	FatG     int `json:"fatG"`
}

// Recipe is a generated recipe as returned to clients. The ID is either a
// durable UUID or a temp-<index> placeholder when the row write failed.
type Recipe struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	Cuisine            string         `json:"cuisine"`
	TimeMinutes        int            `json:"timeMinutes"`
	Difficulty         string         `json:"difficulty"`
	MatchScore         int            `json:"matchScore"`
	HasIngredients     []string       `json:"hasIngredients"`
	MissingIngredients []string       `json:"missingIngredients"`
	Substitutions      []Substitution `json:"substitutions"`
	Steps              []string       `json:"steps"`
	Tips               []string       `json:"tips"`
	Nutrition          Nutrition      `json:"nutrition"`
	Saved              bool           `json:"saved,omitempty"`
	FridgeListID       string         `json:"fridgeListId,omitempty"`
}
