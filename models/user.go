package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:256;not null" json:"-"`
	// ShareToken grants unauthenticated read access to the shared profile view.
	ShareToken string `gorm:"size:64;uniqueIndex" json:"-"`

	Meals  []Meal       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Goals  []Goal       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Limits []DailyLimit `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
