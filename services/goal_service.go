package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/piskorekkevin-afk/essenstracker/models"
	"github.com/piskorekkevin-afk/essenstracker/utils"
)

const completedGoalsLimit = 10

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

type GoalInput struct {
	Title       string
	Description string
	TargetType  string
	TargetValue string
	Unit        string
	EndDate     string // "2006-01-02" or empty
}

func (s *GoalService) Create(userID uint, in GoalInput) (*models.Goal, error) {
	if in.TargetType == "" {
		in.TargetType = "calories"
	}

	var endDate *time.Time
	if in.EndDate != "" {
		d, err := time.Parse("2006-01-02", in.EndDate)
		if err == nil {
			d = utils.DateOnly(d)
			endDate = &d
		}
	}

	goal := models.Goal{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		TargetType:  in.TargetType,
		TargetValue: utils.ParseFloat(in.TargetValue),
		Unit:        in.Unit,
		StartDate:   utils.DateOnly(time.Now()),
		EndDate:     endDate,
	}
	if err := s.db.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// ListActive returns the user's open goals, newest first.
func (s *GoalService) ListActive(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.db.
		Where("user_id = ? AND completed = ?", userID, false).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}

// ListCompleted returns at most the 10 most recently created completed
// goals.
func (s *GoalService) ListCompleted(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.db.
		Where("user_id = ? AND completed = ?", userID, true).
		Order("created_at DESC").
		Limit(completedGoalsLimit).
		Find(&goals).Error
	return goals, err
}

// owned loads the goal and checks ownership: ErrNotFound before
// ErrForbidden, matching the rest of the API.
func (s *GoalService) owned(userID, goalID uint) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.First(&goal, goalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if goal.UserID != userID {
		return nil, ErrForbidden
	}
	return &goal, nil
}

// Complete marks the goal done. Completing an already-completed goal is
// a no-op, not an error.
func (s *GoalService) Complete(userID, goalID uint) (*models.Goal, error) {
	goal, err := s.owned(userID, goalID)
	if err != nil {
		return nil, err
	}
	if goal.Completed {
		return goal, nil
	}

	goal.Completed = true
	if err := s.db.Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Delete(userID, goalID uint) error {
	goal, err := s.owned(userID, goalID)
	if err != nil {
		return err
	}
	return s.db.Unscoped().Delete(goal).Error
}
