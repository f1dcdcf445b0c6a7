package services

import (
	"errors"
	"time"

	"github.com/Shetty-ANANYA-Raju/NutriVista/models"

	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

func (s *AppointmentService) Book(userID, doctorID uint, date time.Time, reason string) (*models.Appointment, error) {
	var doctor models.Doctor
	if err := s.db.First(&doctor, doctorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	appt := models.Appointment{
		UserID:   userID,
		DoctorID: doctorID,
		Date:     date,
		Reason:   reason,
		Status:   "scheduled",
	}
	if err := s.db.Create(&appt).Error; err != nil {
		return nil, err
	}
	appt.Doctor = doctor
	return &appt, nil
}

func (s *AppointmentService) ListForUser(userID uint) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := s.db.
		Preload("Doctor").
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&appts).Error
	return appts, err
}
