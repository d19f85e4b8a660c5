package models

import (
	"time"

	"gorm.io/gorm"
)

// Goal is a user-defined target (calories, protein, weight, ...).
// CurrentValue is tracked but never updated automatically; completion
// is an explicit user action.
type Goal struct {
	gorm.Model
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	Title        string     `gorm:"size:200;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	TargetType   string     `gorm:"size:50" json:"target_type"`
	TargetValue  float64    `json:"target_value"`
	CurrentValue float64    `json:"current_value"`
	Unit         string     `gorm:"size:20" json:"unit"`
	StartDate    time.Time  `gorm:"type:date" json:"start_date"`
	EndDate      *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	Completed    bool       `gorm:"default:false" json:"completed"`
}
