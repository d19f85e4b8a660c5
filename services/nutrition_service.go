package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/piskorekkevin-afk/essenstracker/models"
	"github.com/piskorekkevin-afk/essenstracker/utils"
)

// NutrientTotals is the elementwise sum of every nutrient field across
// a set of meals. The zero value is the correct result for a day with
// no meals.
type NutrientTotals struct {
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	Fiber        float64 `json:"fiber"`
	Sugar        float64 `json:"sugar"`
	Sodium       float64 `json:"sodium"`
	SaturatedFat float64 `json:"saturated_fat"`
	Cholesterol  float64 `json:"cholesterol"`
	Potassium    float64 `json:"potassium"`
	VitaminA     float64 `json:"vitamin_a"`
	VitaminC     float64 `json:"vitamin_c"`
	Calcium      float64 `json:"calcium"`
	Iron         float64 `json:"iron"`
}

func (t *NutrientTotals) add(m models.Meal) {
	t.Calories += m.Calories
	t.Protein += m.Protein
	t.Carbs += m.Carbs
	t.Fat += m.Fat
	t.Fiber += m.Fiber
	t.Sugar += m.Sugar
	t.Sodium += m.Sodium
	t.SaturatedFat += m.SaturatedFat
	t.Cholesterol += m.Cholesterol
	t.Potassium += m.Potassium
	t.VitaminA += m.VitaminA
	t.VitaminC += m.VitaminC
	t.Calcium += m.Calcium
	t.Iron += m.Iron
}

// DayTotals is one entry of the trailing-week chart.
type DayTotals struct {
	Date   string         `json:"date"`
	Label  string         `json:"label"`
	Totals NutrientTotals `json:"totals"`
}

// WeekDay is one column of the Monday-to-Sunday grid.
type WeekDay struct {
	Date    string         `json:"date"`
	Name    string         `json:"name"`
	IsToday bool           `json:"is_today"`
	Meals   []models.Meal  `json:"meals"`
	Totals  NutrientTotals `json:"totals"`
}

// Short weekday names the UI shows on the weekly grid, Monday first.
var weekdayNames = [7]string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"}

type NutritionService struct {
	db *gorm.DB
}

func NewNutritionService(db *gorm.DB) *NutritionService {
	return &NutritionService{db: db}
}

// MealsForDate returns the user's meals logged for a single day,
// oldest first. The caller is responsible for the user existing.
func (s *NutritionService) MealsForDate(userID uint, day time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ? AND date = ?", userID, utils.DateOnly(day)).
		Order("created_at ASC").
		Find(&meals).Error
	return meals, err
}

// TotalsForDate sums every nutrient field across the user's meals on
// that day. Pure read, no side effects.
func (s *NutritionService) TotalsForDate(userID uint, day time.Time) (NutrientTotals, error) {
	meals, err := s.MealsForDate(userID, day)
	if err != nil {
		return NutrientTotals{}, err
	}

	var totals NutrientTotals
	for _, m := range meals {
		totals.add(m)
	}
	return totals, nil
}

// TrailingWeek returns per-day totals for the 7 days ending on today,
// oldest first.
func (s *NutritionService) TrailingWeek(userID uint, today time.Time) ([]DayTotals, error) {
	today = utils.DateOnly(today)

	week := make([]DayTotals, 0, 7)
	for i := 6; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		totals, err := s.TotalsForDate(userID, d)
		if err != nil {
			return nil, err
		}
		week = append(week, DayTotals{
			Date:   d.Format("2006-01-02"),
			Label:  d.Format("Mon"),
			Totals: totals,
		})
	}
	return week, nil
}

// CalendarWeek returns the Monday-to-Sunday grid for the week
// containing today, each day with its meals and totals.
func (s *NutritionService) CalendarWeek(userID uint, today time.Time) ([]WeekDay, error) {
	today = utils.DateOnly(today)

	// time.Weekday counts Sunday as 0; the grid starts on Monday
	offset := (int(today.Weekday()) + 6) % 7
	monday := today.AddDate(0, 0, -offset)

	days := make([]WeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		meals, err := s.MealsForDate(userID, d)
		if err != nil {
			return nil, err
		}

		var totals NutrientTotals
		for _, m := range meals {
			totals.add(m)
		}

		days = append(days, WeekDay{
			Date:    d.Format("2006-01-02"),
			Name:    weekdayNames[i],
			IsToday: d.Equal(today),
			Meals:   meals,
			Totals:  totals,
		})
	}
	return days, nil
}
