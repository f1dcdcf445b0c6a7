package services

import (
	"errors"

	"github.com/Shetty-ANANYA-Raju/NutriVista/models"
	"github.com/Shetty-ANANYA-Raju/NutriVista/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

// Register creates a user with default daily goals and returns a signed
// token so the client is logged in immediately.
func (s *AuthService) Register(username, password string) (string, *models.User, error) {
	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return "", nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return "", nil, err
	}

	user := models.User{
		Username:         username,
		Password:         hashed,
		DailyCalorieGoal: 2000,
		DailyProteinGoal: 150,
		DailyCarbGoal:    200,
		DailyFatGoal:     70,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateJWT(user.ID, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}
