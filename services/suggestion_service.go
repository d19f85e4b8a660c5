package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/piskorekkevin-afk/essenstracker/models"
)

const (
	recentMealsForPrompt = 20
	maxSuggestions       = 3
)

// MealSuggestion is one proposed meal from the suggestion model.
type MealSuggestion struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
}

type SuggestionService struct {
	db        *gorm.DB
	nutrition *NutritionService
	limits    *LimitService
	client    SuggestionClient
}

func NewSuggestionService(db *gorm.DB, nutrition *NutritionService, limits *LimitService, client SuggestionClient) *SuggestionService {
	return &SuggestionService{db: db, nutrition: nutrition, limits: limits, client: client}
}

// Suggest asks the model for up to 3 meals that fit the user's eating
// history and remaining daily budget. Any failure degrades to an empty
// list; suggestions are never worth a failed request.
func (s *SuggestionService) Suggest(ctx context.Context, userID uint) []MealSuggestion {
	prompt, err := s.buildPrompt(userID)
	if err != nil {
		logrus.WithField("user_id", userID).WithError(err).Warn("failed to build suggestion prompt")
		return []MealSuggestion{}
	}

	text, err := s.client.Complete(ctx, prompt)
	if err != nil {
		logrus.WithField("user_id", userID).WithError(err).Warn("suggestion request failed")
		return []MealSuggestion{}
	}

	suggestions, err := ParseSuggestions(text)
	if err != nil {
		logrus.WithField("user_id", userID).WithError(err).Warn("failed to parse suggestions")
		return []MealSuggestion{}
	}
	return suggestions
}

func (s *SuggestionService) buildPrompt(userID uint) (string, error) {
	var recent []models.Meal
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(recentMealsForPrompt).
		Find(&recent).Error
	if err != nil {
		return "", err
	}

	history := "Noch keine Mahlzeiten erfasst"
	if len(recent) > 0 {
		names := make([]string, 0, len(recent))
		for _, m := range recent {
			names = append(names, m.Name)
		}
		history = strings.Join(names, ", ")
	}

	totals, err := s.nutrition.TotalsForDate(userID, time.Now())
	if err != nil {
		return "", err
	}
	limits, err := s.limits.Resolve(userID)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("Basierend auf dem bisherigen Essensverlauf eines Nutzers, schlage 3 gesunde Mahlzeiten vor.\n\n")
	fmt.Fprintf(&sb, "Bisherige Mahlzeiten: %s\n\n", history)
	sb.WriteString("Heutige Werte / Tageslimits:\n")
	fmt.Fprintf(&sb, "- Kalorien: %.0f / %.0f kcal\n", totals.Calories, limits.Calories)
	fmt.Fprintf(&sb, "- Protein: %.0f / %.0f g\n", totals.Protein, limits.Protein)
	fmt.Fprintf(&sb, "- Kohlenhydrate: %.0f / %.0f g\n", totals.Carbs, limits.Carbs)
	fmt.Fprintf(&sb, "- Fett: %.0f / %.0f g\n", totals.Fat, limits.Fat)
	fmt.Fprintf(&sb, "- Ballaststoffe: %.0f / %.0f g\n", totals.Fiber, limits.Fiber)
	sb.WriteString("\nAntworte NUR mit einem JSON-Array (kein Markdown) in diesem Format:\n")
	sb.WriteString(`[{"name": "Name", "description": "Beschreibung und warum es passt", "calories": 0, "protein": 0, "carbs": 0, "fat": 0, "fiber": 0}]`)
	sb.WriteString("\nDie Vorschläge sollen abwechslungsreich sein und die noch fehlenden Nährwerte ergänzen.")

	return sb.String(), nil
}

// ParseSuggestions decodes the model's JSON array, stripping a
// surrounding code fence first and capping the result at 3 entries.
func ParseSuggestions(text string) ([]MealSuggestion, error) {
	var suggestions []MealSuggestion
	if err := json.Unmarshal([]byte(StripCodeFence(text)), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse suggestion JSON: %w", err)
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions, nil
}
