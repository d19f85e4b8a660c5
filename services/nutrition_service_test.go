package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/piskorekkevin-afk/essenstracker/models"
	"github.com/piskorekkevin-afk/essenstracker/utils"
)

func addMeal(t *testing.T, db *gorm.DB, userID uint, day time.Time, calories, protein float64) *models.Meal {
	t.Helper()

	meal := models.Meal{
		UserID:   userID,
		Name:     "Testmahlzeit",
		MealType: models.MealTypeSnack,
		Date:     utils.DateOnly(day),
		Calories: calories,
		Protein:  protein,
	}
	require.NoError(t, db.Create(&meal).Error)
	return &meal
}

func TestTotalsForDateSumsAllMeals(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	user := createTestUser(t, db, "anna")

	today := time.Now()
	addMeal(t, db, user.ID, today, 300, 10)
	addMeal(t, db, user.ID, today, 450, 25.5)

	totals, err := svc.TotalsForDate(user.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 750.0, totals.Calories)
	assert.Equal(t, 35.5, totals.Protein)
	assert.Zero(t, totals.Fat)
}

func TestTotalsForDateEmptyDayIsZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	user := createTestUser(t, db, "ben")

	totals, err := svc.TotalsForDate(user.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, NutrientTotals{}, totals)
}

func TestTotalsForDateIgnoresOtherDaysAndUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	user := createTestUser(t, db, "carla")
	other := createTestUser(t, db, "dirk")

	today := time.Now()
	addMeal(t, db, user.ID, today, 100, 0)
	addMeal(t, db, user.ID, today.AddDate(0, 0, -1), 200, 0)
	addMeal(t, db, user.ID, today.AddDate(0, 0, 1), 400, 0)
	addMeal(t, db, other.ID, today, 800, 0)

	totals, err := svc.TotalsForDate(user.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 100.0, totals.Calories)
}

func TestTrailingWeekOldestFirstInclusiveBounds(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	user := createTestUser(t, db, "elena")

	today := utils.DateOnly(time.Now())
	addMeal(t, db, user.ID, today, 500, 0)                  // newest bound
	addMeal(t, db, user.ID, today.AddDate(0, 0, -6), 111, 0) // oldest bound
	addMeal(t, db, user.ID, today.AddDate(0, 0, -7), 999, 0) // outside

	week, err := svc.TrailingWeek(user.ID, today)
	require.NoError(t, err)
	require.Len(t, week, 7)

	assert.Equal(t, today.AddDate(0, 0, -6).Format("2006-01-02"), week[0].Date)
	assert.Equal(t, today.Format("2006-01-02"), week[6].Date)
	assert.Equal(t, 111.0, week[0].Totals.Calories)
	assert.Equal(t, 500.0, week[6].Totals.Calories)

	var sum float64
	for _, d := range week {
		sum += d.Totals.Calories
	}
	assert.Equal(t, 611.0, sum, "day outside the window must not leak in")
}

func TestCalendarWeekStartsMonday(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	user := createTestUser(t, db, "frank")

	today := utils.DateOnly(time.Now())
	addMeal(t, db, user.ID, today, 321, 0)

	days, err := svc.CalendarWeek(user.ID, today)
	require.NoError(t, err)
	require.Len(t, days, 7)

	assert.Equal(t, []string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"},
		[]string{days[0].Name, days[1].Name, days[2].Name, days[3].Name, days[4].Name, days[5].Name, days[6].Name})

	monday, err := time.Parse("2006-01-02", days[0].Date)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, monday.Weekday())

	foundToday := false
	for _, d := range days {
		if d.IsToday {
			foundToday = true
			assert.Equal(t, today.Format("2006-01-02"), d.Date)
			assert.Equal(t, 321.0, d.Totals.Calories)
			require.Len(t, d.Meals, 1)
		}
	}
	assert.True(t, foundToday)
}
