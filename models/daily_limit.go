package models

import (
	"gorm.io/gorm"
)

// Baseline daily ceilings, applied when a limit record is first created
// and whenever a settings update leaves a field blank.
const (
	DefaultCalories     = 2000
	DefaultProtein      = 50
	DefaultCarbs        = 300
	DefaultFat          = 65
	DefaultFiber        = 25
	DefaultSugar        = 50
	DefaultSodium       = 2300
	DefaultSaturatedFat = 20
	DefaultCholesterol  = 300
	DefaultPotassium    = 3500
)

// DailyLimit holds one user's nutrient ceilings. The unique index on
// UserID keeps the record singular per user.
type DailyLimit struct {
	gorm.Model
	UserID       uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`       // g
	Carbs        float64 `json:"carbs"`         // g
	Fat          float64 `json:"fat"`           // g
	Fiber        float64 `json:"fiber"`         // g
	Sugar        float64 `json:"sugar"`         // g
	Sodium       float64 `json:"sodium"`        // mg
	SaturatedFat float64 `json:"saturated_fat"` // g
	Cholesterol  float64 `json:"cholesterol"`   // mg
	Potassium    float64 `json:"potassium"`     // mg
}

// NewDailyLimit returns a limit record for userID with every ceiling at
// its baseline.
func NewDailyLimit(userID uint) DailyLimit {
	return DailyLimit{
		UserID:       userID,
		Calories:     DefaultCalories,
		Protein:      DefaultProtein,
		Carbs:        DefaultCarbs,
		Fat:          DefaultFat,
		Fiber:        DefaultFiber,
		Sugar:        DefaultSugar,
		Sodium:       DefaultSodium,
		SaturatedFat: DefaultSaturatedFat,
		Cholesterol:  DefaultCholesterol,
		Potassium:    DefaultPotassium,
	}
}
