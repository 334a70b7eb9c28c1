package types

import "time"

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued bearer token.
type AuthResponse struct {
	Token string `json:"token"`
}

// GenerateRecipesRequest is the request body for POST /generate-recipes.
type GenerateRecipesRequest struct {
	Items       []string          `json:"items"`
	Preferences FridgePreferences `json:"preferences"`
}

// GenerateRecipesResponse is the success payload of POST /generate-recipes.
// FridgeListID is null when the snapshot write failed.
type GenerateRecipesResponse struct {
	Recipes      []Recipe `json:"recipes"`
	FridgeListID *string  `json:"fridgeListId"`
}

// FridgeListSummary describes one persisted generation snapshot.
type FridgeListSummary struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Items       []string          `json:"items"`
	Preferences FridgePreferences `json:"preferences"`
	CreatedAt   time.Time         `json:"createdAt"`
}
