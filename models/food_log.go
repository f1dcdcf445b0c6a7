package models

import (
	"time"

	"gorm.io/gorm"
)

// One FoodLog row per accepted logging request. Nutrient columns hold the
// per-unit catalog values multiplied by Quantity and are never edited
// independently of it.
type FoodLog struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null" json:"userId"`
	FoodItem string  `gorm:"not null" json:"foodItem"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Unit     string  `gorm:"default:piece" json:"unit"`
	Calories float64 `gorm:"not null" json:"calories"`
	Protein  float64 `gorm:"not null" json:"protein"`
	Carbs    float64 `gorm:"not null" json:"carbs"`
	Fat      float64 `gorm:"not null" json:"fat"`

	LoggedAt time.Time `gorm:"index;not null" json:"logDate"`
	MealType string    `gorm:"size:20;default:snack" json:"mealType"` // breakfast|lunch|dinner|snack
}
