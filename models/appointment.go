package models

import (
	"time"

	"gorm.io/gorm"
)

type Appointment struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"userId"`
	DoctorID uint      `gorm:"index;not null" json:"doctorId"`
	Doctor   Doctor    `json:"doctor"`
	Date     time.Time `gorm:"not null" json:"date"`
	Reason   string    `gorm:"type:text;not null" json:"reason"`
	Status   string    `gorm:"size:20;default:scheduled" json:"status"` // scheduled|completed|canceled
}
