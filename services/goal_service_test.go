package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piskorekkevin-afk/essenstracker/models"
)

func TestCreateGoalParsesEndDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	user := createTestUser(t, db, "uwe")

	goal, err := svc.Create(user.ID, GoalInput{
		Title:       "Abnehmen",
		TargetType:  "weight",
		TargetValue: "75",
		Unit:        "kg",
		EndDate:     "2026-12-31",
	})
	require.NoError(t, err)
	require.NotNil(t, goal.EndDate)
	assert.Equal(t, "2026-12-31", goal.EndDate.Format("2006-01-02"))
	assert.Equal(t, 75.0, goal.TargetValue)
	assert.False(t, goal.Completed)

	noDeadline, err := svc.Create(user.ID, GoalInput{Title: "Mehr Protein"})
	require.NoError(t, err)
	assert.Nil(t, noDeadline.EndDate)
	assert.Equal(t, "calories", noDeadline.TargetType, "target type defaults")
}

func TestGoalListsOrderingAndCap(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	user := createTestUser(t, db, "vera")

	for i := 0; i < 13; i++ {
		goal := models.Goal{
			UserID:    user.ID,
			Title:     fmt.Sprintf("Ziel %d", i),
			Completed: true,
		}
		goal.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Create(&goal).Error)
	}
	active := models.Goal{UserID: user.ID, Title: "Offen"}
	require.NoError(t, db.Create(&active).Error)

	activeGoals, err := svc.ListActive(user.ID)
	require.NoError(t, err)
	require.Len(t, activeGoals, 1)
	assert.Equal(t, "Offen", activeGoals[0].Title)

	completed, err := svc.ListCompleted(user.ID)
	require.NoError(t, err)
	assert.Len(t, completed, 10, "completed list is capped")
	assert.Equal(t, "Ziel 12", completed[0].Title, "newest first")
}

func TestCompleteGoalIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	user := createTestUser(t, db, "willi")

	goal, err := svc.Create(user.ID, GoalInput{Title: "Laufen"})
	require.NoError(t, err)

	done, err := svc.Complete(user.ID, goal.ID)
	require.NoError(t, err)
	assert.True(t, done.Completed)

	again, err := svc.Complete(user.ID, goal.ID)
	require.NoError(t, err, "completing a completed goal is a no-op")
	assert.True(t, again.Completed)
}

func TestGoalOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	owner := createTestUser(t, db, "xenia")
	intruder := createTestUser(t, db, "yannik")

	goal, err := svc.Create(owner.ID, GoalInput{Title: "Meins"})
	require.NoError(t, err)

	_, err = svc.Complete(intruder.ID, goal.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, svc.Delete(intruder.ID, goal.ID), ErrForbidden)

	_, err = svc.Complete(intruder.ID, 424242)
	assert.ErrorIs(t, err, ErrNotFound, "unknown id reports not-found before ownership")

	require.NoError(t, svc.Delete(owner.ID, goal.ID))
	assert.ErrorIs(t, svc.Delete(owner.ID, goal.ID), ErrNotFound)
}
