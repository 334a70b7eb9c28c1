package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/fridgechef/backend/config"
	"github.com/fridgechef/backend/internal/logger"
	"github.com/fridgechef/backend/internal/types"
)

const systemPrompt = `You are a professional chef AI. Generate 6-8 recipe recommendations based on the user's available ingredients.

STRICT RULES:
- Prioritize recipes that use ONLY the available ingredients
- If suggesting recipes with missing ingredients, keep missing count to 1-3 max
- Provide realistic cooking times and difficulty levels
- Include practical substitution options for missing ingredients
- Never suggest unsafe food combinations
- Provide accurate nutrition estimates

Return ONLY valid JSON matching this exact schema:
{
  "recipes": [
    {
      "name": "Recipe Name",
      "description": "Brief appetizing description",
      "cuisine": "Cuisine Type",
      "timeMinutes": 30,
      "difficulty": "easy" | "medium" | "hard",
      "matchScore": 85,
      "hasIngredients": ["ingredient1", "ingredient2"],
      "missingIngredients": ["missing1"],
      "substitutions": [{"missing": "ingredient", "options": ["sub1", "sub2"]}],
      "steps": ["Step 1", "Step 2"],
      "tips": ["Helpful tip"],
      "nutrition": {"calories": 400, "proteinG": 25, "carbsG": 30, "fatG": 15}
    }
  ]
}`

// LLMService calls the external AI gateway and turns its free-form reply
// into structured recipes.
type LLMService struct {
	client  *resty.Client
	apiURL  string
	apiKey  string
	model   string
	timeout time.Duration
}

// NewLLMService creates a new LLMService instance. A missing API key is not
// an error here; GenerateRecipes refuses to call out without one.
func NewLLMService(cfg config.LLMConfig) *LLMService {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+cfg.APIKey)

	return &LLMService{
		client:  client,
		apiURL:  cfg.APIURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateRecipes asks the model for recipe candidates for the given
// ingredients and preferences. The call is bounded by the configured timeout.
func (s *LLMService) GenerateRecipes(ctx context.Context, items []string, prefs types.FridgePreferences) ([]types.Recipe, error) {
	if s.apiKey == "" {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildUserPrompt(items, prefs)},
		},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(s.apiURL)
	if err != nil {
		return nil, fmt.Errorf("ai gateway request failed: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusPaymentRequired:
		return nil, ErrQuotaExceeded
	default:
		return nil, &UpstreamError{Status: resp.StatusCode()}
	}

	var chat chatResponse
	if err := json.Unmarshal(resp.Body(), &chat); err != nil {
		return nil, fmt.Errorf("failed to decode ai gateway response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, ErrParseRecipes
	}

	recipes, err := ParseRecipes(chat.Choices[0].Message.Content)
	if err != nil {
		logger.L().Error("unusable model output", zap.Error(err))
		return nil, err
	}
	return recipes, nil
}

// BuildUserPrompt assembles the user message: the comma-joined ingredient
// list plus one line per preference field that is actually set.
func BuildUserPrompt(items []string, prefs types.FridgePreferences) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Available ingredients: %s\n", strings.Join(items, ", "))
	if len(prefs.Dietary) > 0 {
		fmt.Fprintf(&b, "Dietary requirements: %s\n", strings.Join(prefs.Dietary, ", "))
	}
	if len(prefs.Cuisine) > 0 {
		fmt.Fprintf(&b, "Preferred cuisines: %s\n", strings.Join(prefs.Cuisine, ", "))
	}
	if prefs.SkillLevel != "" {
		fmt.Fprintf(&b, "Skill level: %s\n", prefs.SkillLevel)
	}
	if prefs.AvailableTime != 0 {
		fmt.Fprintf(&b, "Available time: %d minutes\n", prefs.EffectiveAvailableTime())
	}
	if prefs.Servings != 0 {
		fmt.Fprintf(&b, "Servings needed: %d\n", prefs.EffectiveServings())
	}
	b.WriteString("\nGenerate recipe recommendations.")
	return b.String()
}

// ParseRecipes extracts the first top-level JSON object from the model's raw
// text and decodes its recipes array. The model may wrap the object in prose;
// anything before the first '{' and after the last '}' is discarded. Any
// failure is ErrParseRecipes: no partial results.
func ParseRecipes(content string) ([]types.Recipe, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return nil, ErrParseRecipes
	}

	var wrapper struct {
		Recipes []types.Recipe `json:"recipes"`
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &wrapper); err != nil {
		return nil, ErrParseRecipes
	}
	if len(wrapper.Recipes) == 0 {
		return nil, ErrParseRecipes
	}
	return wrapper.Recipes, nil
}
