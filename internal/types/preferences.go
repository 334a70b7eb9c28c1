package types

// Skill levels recognized by the preference model.
const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
)

// Defaults applied when the corresponding preference field is unset.
const (
	DefaultServings      = 2
	DefaultAvailableTime = 60

	MinServings      = 1
	MaxServings      = 10
	MinAvailableTime = 15
	MaxAvailableTime = 180
	TimeStep         = 15
)

// DefaultPantryStaples is the fixed list used to auto-fill the pantry the
// first time a user enables includePantryStaples.
var DefaultPantryStaples = []string{
	"salt",
	"pepper",
	"olive oil",
	"vegetable oil",
	"butter",
	"flour",
	"sugar",
	"rice",
	"pasta",
	"garlic",
	"onions",
	"eggs",
	"milk",
	"soy sauce",
	"vinegar",
	"honey",
	"chicken broth",
	"canned tomatoes",
	"dried herbs",
	"baking powder",
}

// DietaryOptions lists the dietary restrictions users can toggle.
var DietaryOptions = []string{
	"vegetarian",
	"vegan",
	"halal",
	"kosher",
	"gluten-free",
	"dairy-free",
	"nut-free",
	"low-carb",
	"keto",
}

// CuisineOptions lists the cuisines users can toggle.
var CuisineOptions = []string{
	"italian",
	"mexican",
	"chinese",
	"japanese",
	"indian",
	"thai",
	"french",
	"mediterranean",
	"american",
	"korean",
}

// FridgePreferences describes a user's generation preferences. Every field is
// optional; zero values mean "not set" and produce no prompt line.
type FridgePreferences struct {
	Dietary              []string `json:"dietary,omitempty"`
	Cuisine              []string `json:"cuisine,omitempty"`
	SkillLevel           string   `json:"skillLevel,omitempty"`
	Servings             int      `json:"servings,omitempty"`
	AvailableTime        int      `json:"availableTime,omitempty"`
	IncludePantryStaples bool     `json:"includePantryStaples,omitempty"`
	PantryStaples        []string `json:"pantryStaples,omitempty"`
}

// ToggleDietary adds the option if absent and removes it if present.
func (p *FridgePreferences) ToggleDietary(value string) {
	p.Dietary = toggle(p.Dietary, value)
}

// ToggleCuisine adds the option if absent and removes it if present.
func (p *FridgePreferences) ToggleCuisine(value string) {
	p.Cuisine = toggle(p.Cuisine, value)
}

// SetIncludePantryStaples flips the pantry-staples switch. Enabling it when no
// pantry list has been chosen yet fills the list with DefaultPantryStaples; a
// list the user already customized is left alone.
func (p *FridgePreferences) SetIncludePantryStaples(enabled bool) {
	p.IncludePantryStaples = enabled
	if enabled && len(p.PantryStaples) == 0 {
		p.PantryStaples = append([]string(nil), DefaultPantryStaples...)
	}
}

// EffectiveServings returns the serving count, applying the default and
// clamping to the allowed range.
func (p *FridgePreferences) EffectiveServings() int {
	if p.Servings == 0 {
		return DefaultServings
	}
	return clamp(p.Servings, MinServings, MaxServings)
}

// EffectiveAvailableTime returns the time budget in minutes, applying the
// default and clamping to the allowed range.
func (p *FridgePreferences) EffectiveAvailableTime() int {
	if p.AvailableTime == 0 {
		return DefaultAvailableTime
	}
	return clamp(p.AvailableTime, MinAvailableTime, MaxAvailableTime)
}

func toggle(set []string, value string) []string {
	for i, v := range set {
		if v == value {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, value)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
