package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/piskorekkevin-afk/essenstracker/models"
)

// SharedGoal is the slice of a goal exposed to token holders.
type SharedGoal struct {
	Title       string  `json:"title"`
	TargetType  string  `json:"target_type"`
	TargetValue float64 `json:"target_value"`
	Unit        string  `json:"unit"`
}

// SharedCalorieDay is one point of the public 7-day calorie trend.
type SharedCalorieDay struct {
	Date     string  `json:"date"`
	Label    string  `json:"label"`
	Calories float64 `json:"calories"`
}

// SharedSnapshot is the read-only view behind a share token. It carries
// aggregates only: no meal rows, descriptions or images.
type SharedSnapshot struct {
	Username string             `json:"username"`
	Totals   NutrientTotals     `json:"totals"`
	Limits   models.DailyLimit  `json:"limits"`
	Week     []SharedCalorieDay `json:"week"`
	Goals    []SharedGoal       `json:"goals"`
}

type ShareService struct {
	db        *gorm.DB
	nutrition *NutritionService
	limits    *LimitService
	goals     *GoalService
}

func NewShareService(db *gorm.DB, nutrition *NutritionService, limits *LimitService, goals *GoalService) *ShareService {
	return &ShareService{db: db, nutrition: nutrition, limits: limits, goals: goals}
}

// SnapshotByToken resolves a share token to its owner's aggregated
// view, or ErrNotFound for an unknown token.
func (s *ShareService) SnapshotByToken(token string) (*SharedSnapshot, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	var user models.User
	if err := s.db.Where("share_token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	today := time.Now()

	totals, err := s.nutrition.TotalsForDate(user.ID, today)
	if err != nil {
		return nil, err
	}

	limits, err := s.limits.Resolve(user.ID)
	if err != nil {
		return nil, err
	}

	week, err := s.nutrition.TrailingWeek(user.ID, today)
	if err != nil {
		return nil, err
	}
	trend := make([]SharedCalorieDay, 0, len(week))
	for _, d := range week {
		trend = append(trend, SharedCalorieDay{Date: d.Date, Label: d.Label, Calories: d.Totals.Calories})
	}

	active, err := s.goals.ListActive(user.ID)
	if err != nil {
		return nil, err
	}
	goals := make([]SharedGoal, 0, len(active))
	for _, g := range active {
		goals = append(goals, SharedGoal{
			Title:       g.Title,
			TargetType:  g.TargetType,
			TargetValue: g.TargetValue,
			Unit:        g.Unit,
		})
	}

	return &SharedSnapshot{
		Username: user.Username,
		Totals:   totals,
		Limits:   *limits,
		Week:     trend,
		Goals:    goals,
	}, nil
}
