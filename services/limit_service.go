package services

import (
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/piskorekkevin-afk/essenstracker/models"
)

type LimitService struct {
	db *gorm.DB
}

func NewLimitService(db *gorm.DB) *LimitService {
	return &LimitService{db: db}
}

// Resolve returns the user's daily limits, creating the record with
// baseline defaults on first access. The find-or-create runs in one
// transaction so concurrent first reads cannot insert twice.
func (s *LimitService) Resolve(userID uint) (*models.DailyLimit, error) {
	var limit models.DailyLimit
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", userID).First(&limit).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			limit = models.NewDailyLimit(userID)
			return tx.Create(&limit).Error
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &limit, nil
}

// limitField pairs a form name with its baseline and destination.
type limitField struct {
	name     string
	fallback float64
	dst      func(l *models.DailyLimit) *float64
}

var limitFields = []limitField{
	{"calories", models.DefaultCalories, func(l *models.DailyLimit) *float64 { return &l.Calories }},
	{"protein", models.DefaultProtein, func(l *models.DailyLimit) *float64 { return &l.Protein }},
	{"carbs", models.DefaultCarbs, func(l *models.DailyLimit) *float64 { return &l.Carbs }},
	{"fat", models.DefaultFat, func(l *models.DailyLimit) *float64 { return &l.Fat }},
	{"fiber", models.DefaultFiber, func(l *models.DailyLimit) *float64 { return &l.Fiber }},
	{"sugar", models.DefaultSugar, func(l *models.DailyLimit) *float64 { return &l.Sugar }},
	{"sodium", models.DefaultSodium, func(l *models.DailyLimit) *float64 { return &l.Sodium }},
	{"saturated_fat", models.DefaultSaturatedFat, func(l *models.DailyLimit) *float64 { return &l.SaturatedFat }},
	{"cholesterol", models.DefaultCholesterol, func(l *models.DailyLimit) *float64 { return &l.Cholesterol }},
	{"potassium", models.DefaultPotassium, func(l *models.DailyLimit) *float64 { return &l.Potassium }},
}

// ReplaceSettings replaces all 10 ceilings at once. A field that is
// absent, empty or non-numeric falls back to its baseline default, not
// to the previously stored value.
func (s *LimitService) ReplaceSettings(userID uint, form map[string]string) (*models.DailyLimit, error) {
	limit, err := s.Resolve(userID)
	if err != nil {
		return nil, err
	}

	for _, f := range limitFields {
		raw, ok := form[f.name]
		raw = strings.TrimSpace(raw)
		if !ok || raw == "" {
			*f.dst(limit) = f.fallback
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			v = f.fallback
		}
		*f.dst(limit) = v
	}

	if err := s.db.Save(limit).Error; err != nil {
		return nil, err
	}
	return limit, nil
}
