package services

import (
	"github.com/Shetty-ANANYA-Raju/NutriVista/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type GoalsInput struct {
	DailyCalorieGoal *float64 `json:"dailyCalorieGoal"`
	DailyProteinGoal *float64 `json:"dailyProteinGoal"`
	DailyCarbGoal    *float64 `json:"dailyCarbGoal"`
	DailyFatGoal     *float64 `json:"dailyFatGoal"`
}

// UpdateGoals changes only the goals present in the input; omitted fields
// keep their current values.
func (s *UserService) UpdateGoals(userID uint, input GoalsInput) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	if input.DailyCalorieGoal != nil {
		user.DailyCalorieGoal = *input.DailyCalorieGoal
	}
	if input.DailyProteinGoal != nil {
		user.DailyProteinGoal = *input.DailyProteinGoal
	}
	if input.DailyCarbGoal != nil {
		user.DailyCarbGoal = *input.DailyCarbGoal
	}
	if input.DailyFatGoal != nil {
		user.DailyFatGoal = *input.DailyFatGoal
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
