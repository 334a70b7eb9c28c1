package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FridgeList is the persisted snapshot of one generation request. Rows are
// written once and never updated.
type FridgeList struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time        `json:"created_at"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Items       JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"items"`
	Preferences JSONBPreferences `gorm:"type:jsonb" json:"preferences"`
}

func (FridgeList) TableName() string {
	return "fridge_lists"
}

func (l *FridgeList) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Recipe is a generated recipe row. Rows are created during generation and
// never mutated afterwards.
type Recipe struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt          time.Time          `json:"created_at"`
	UserID             uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	FridgeListID       *uuid.UUID         `gorm:"type:uuid;index" json:"fridge_list_id"`
	Name               string             `gorm:"size:255;not null" json:"name"`
	Description        string             `gorm:"type:text" json:"description"`
	Cuisine            string             `gorm:"size:50" json:"cuisine"`
	TimeMinutes        int                `json:"time_minutes"`
	Difficulty         string             `gorm:"size:10" json:"difficulty"`
	MatchScore         int                `json:"match_score"`
	HasIngredients     JSONBStringArray   `gorm:"type:jsonb;not null;default:'[]'" json:"has_ingredients"`
	MissingIngredients JSONBStringArray   `gorm:"type:jsonb;not null;default:'[]'" json:"missing_ingredients"`
	Substitutions      JSONBSubstitutions `gorm:"type:jsonb;not null;default:'[]'" json:"substitutions"`
	Steps              JSONBStringArray   `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	Tips               JSONBStringArray   `gorm:"type:jsonb;not null;default:'[]'" json:"tips"`
	Nutrition          JSONBNutrition     `gorm:"type:jsonb" json:"nutrition"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecipeSave marks a recipe a user saved for later.
type RecipeSave struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_saves_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_saves_user_recipe" json:"recipe_id"`
}

func (RecipeSave) TableName() string {
	return "recipe_saves"
}

func (s *RecipeSave) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
