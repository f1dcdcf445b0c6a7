package services

import (
	"github.com/Shetty-ANANYA-Raju/NutriVista/models"

	"gorm.io/gorm"
)

type DoctorService struct {
	db *gorm.DB
}

func NewDoctorService(db *gorm.DB) *DoctorService {
	return &DoctorService{db: db}
}

// Seed inserts the demo doctor set. Safe to call on every boot: existing
// rows are matched by name and left untouched.
func (s *DoctorService) Seed() error {
	doctors := []models.Doctor{
		{
			Name:           "Dr. Anjali Sharma",
			Specialization: "Dietitian",
			Bio:            "A seasoned dietitian with over 10 years of experience, specializing in personalized meal plans for weight management and chronic diseases.",
			Rating:         4.8,
			Fee:            800,
			ImageURL:       "https://placehold.co/150x150/d1d5db/4b5563?text=Dr.AS",
		},
		{
			Name:           "Dr. Rahul Verma",
			Specialization: "Nutritionist",
			Bio:            "Focuses on holistic nutrition and lifestyle changes to improve overall well-being and performance.",
			Rating:         4.5,
			Fee:            750,
			ImageURL:       "https://placehold.co/150x150/d1d5db/4b5563?text=Dr.RV",
		},
		{
			Name:           "Dr. Priya Singh",
			Specialization: "Dermatologist",
			Bio:            "Expert in skincare and haircare, providing evidence-based solutions for common conditions.",
			Rating:         4.9,
			Fee:            1200,
			ImageURL:       "https://placehold.co/150x150/d1d5db/4b5563?text=Dr.PS",
		},
	}

	for _, d := range doctors {
		doc := d
		if err := s.db.Where("name = ?", doc.Name).FirstOrCreate(&doc).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *DoctorService) List() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := s.db.Preload("Reviews").Find(&doctors).Error
	return doctors, err
}
