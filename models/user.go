package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`

	// Daily nutrient targets shown on the dashboard.
	DailyCalorieGoal float64 `gorm:"default:2000" json:"dailyCalorieGoal"`
	DailyProteinGoal float64 `gorm:"default:150" json:"dailyProteinGoal"`
	DailyCarbGoal    float64 `gorm:"default:200" json:"dailyCarbGoal"`
	DailyFatGoal     float64 `gorm:"default:70" json:"dailyFatGoal"`
}
