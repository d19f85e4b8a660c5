package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal categories.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// Meal is one logged eating event. Date is the day the meal counts
// toward, which is not necessarily the day the row was created.
type Meal struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	ImagePath   string    `gorm:"size:500" json:"image_path,omitempty"`
	MealType    string    `gorm:"size:20" json:"meal_type"`
	Date        time.Time `gorm:"type:date;index" json:"date"`

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
	VitaminA     float64 `json:"vitamin_a"`     // % daily value
	VitaminC     float64 `json:"vitamin_c"`     // % daily value
	Calcium      float64 `json:"calcium"`       // % daily value
	Iron         float64 `json:"iron"`          // % daily value
}

func (Meal) TableName() string {
	return "meals"
}
