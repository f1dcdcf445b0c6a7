package models

import "gorm.io/gorm"

type Doctor struct {
	gorm.Model
	Name           string         `gorm:"not null" json:"name"`
	Specialization string         `gorm:"not null" json:"specialization"`
	Bio            string         `gorm:"type:text;not null" json:"bio"`
	Rating         float64        `gorm:"default:0" json:"rating"`
	Fee            float64        `gorm:"default:500" json:"fee"`
	ImageURL       string         `gorm:"not null" json:"imageUrl"`
	Reviews        []DoctorReview `json:"reviews"`
}

type DoctorReview struct {
	gorm.Model
	DoctorID uint    `gorm:"index;not null" json:"-"`
	UserID   uint    `gorm:"index" json:"userId"`
	Comment  string  `gorm:"type:text" json:"comment"`
	Rating   float64 `json:"rating"`
}
