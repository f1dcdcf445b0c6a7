package models

import "gorm.io/gorm"

// Product is a store catalog item.
type Product struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	ImageURL    string  `json:"image"`
	Description string  `gorm:"type:text" json:"description"`
}

// Recipe is a curated recipe card with an approximate calorie count.
type Recipe struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `gorm:"type:text" json:"description"`
	Calories    float64 `json:"calories"`
}
