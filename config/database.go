package config

import (
	"github.com/Shetty-ANANYA-Raju/NutriVista/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the postgres connection and migrates the schema.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.FoodLog{},
		&models.Doctor{},
		&models.DoctorReview{},
		&models.Appointment{},
		&models.Product{},
		&models.Recipe{},
	)
}
