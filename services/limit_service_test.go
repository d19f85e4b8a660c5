package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piskorekkevin-afk/essenstracker/models"
)

func TestResolveCreatesDefaultsOnFirstAccess(t *testing.T) {
	db := newTestDB(t)
	svc := NewLimitService(db)
	user := createTestUser(t, db, "greta")

	limit, err := svc.Resolve(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, limit.Calories)
	assert.Equal(t, 50.0, limit.Protein)
	assert.Equal(t, 2300.0, limit.Sodium)
	assert.Equal(t, 3500.0, limit.Potassium)
}

func TestResolveIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewLimitService(db)
	user := createTestUser(t, db, "hans")

	first, err := svc.Resolve(user.ID)
	require.NoError(t, err)
	second, err := svc.Resolve(user.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Calories, second.Calories)
	assert.Equal(t, first.Fiber, second.Fiber)
	assert.Equal(t, first.Potassium, second.Potassium)

	var count int64
	require.NoError(t, db.Model(&models.DailyLimit{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "second resolve must not write a new row")
}

func TestReplaceSettingsBlankFieldFallsBackToBaseline(t *testing.T) {
	db := newTestDB(t)
	svc := NewLimitService(db)
	user := createTestUser(t, db, "ines")

	// bump fiber away from its default first
	_, err := svc.ReplaceSettings(user.ID, map[string]string{"fiber": "40"})
	require.NoError(t, err)

	limit, err := svc.ReplaceSettings(user.ID, map[string]string{
		"calories": "1500",
		"fiber":    "",
	})
	require.NoError(t, err)

	assert.Equal(t, 1500.0, limit.Calories)
	assert.Equal(t, 25.0, limit.Fiber, "blank input resets to the baseline, not the prior value")
}

func TestReplaceSettingsMissingAndInvalidFieldsUseBaselines(t *testing.T) {
	db := newTestDB(t)
	svc := NewLimitService(db)
	user := createTestUser(t, db, "jonas")

	limit, err := svc.ReplaceSettings(user.ID, map[string]string{
		"calories": "1800",
		"sugar":    "not-a-number",
	})
	require.NoError(t, err)

	assert.Equal(t, 1800.0, limit.Calories)
	assert.Equal(t, 50.0, limit.Protein)
	assert.Equal(t, 2300.0, limit.Sodium)
	assert.Equal(t, 50.0, limit.Sugar)

	// values persist
	stored, err := svc.Resolve(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1800.0, stored.Calories)
}
