package services

import (
	"fmt"
	"time"

	"github.com/Shetty-ANANYA-Raju/NutriVista/catalog"
	"github.com/Shetty-ANANYA-Raju/NutriVista/models"

	"gorm.io/gorm"
)

// DailyTotals is recomputed on every request and never persisted.
type DailyTotals struct {
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFat      float64 `json:"totalFat"`
}

type FoodLogService struct {
	db  *gorm.DB
	cat *catalog.Catalog
}

func NewFoodLogService(db *gorm.DB, cat *catalog.Catalog) *FoodLogService {
	return &FoodLogService{db: db, cat: cat}
}

// LogIntake interprets free text and persists one FoodLog row. It returns
// catalog.ErrNotRecognized when no known food appears in the text, in which
// case nothing is written.
func (s *FoodLogService) LogIntake(userID uint, text string) (*models.FoodLog, error) {
	parsed, err := catalog.Parse(text, s.cat)
	if err != nil {
		return nil, err
	}

	qty := float64(parsed.Quantity)
	entry := models.FoodLog{
		UserID:   userID,
		FoodItem: parsed.Food.Name,
		Quantity: parsed.Quantity,
		Unit:     "piece",
		Calories: parsed.Food.Calories * qty,
		Protein:  parsed.Food.Protein * qty,
		Carbs:    parsed.Food.Carbs * qty,
		Fat:      parsed.Food.Fat * qty,
		LoggedAt: time.Now(),
		MealType: "snack",
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return &entry, nil
}

// QueryByUserAndRange returns the user's entries with logged_at inside the
// inclusive [from, to] window, in insertion order for equal timestamps.
func (s *FoodLogService) QueryByUserAndRange(userID uint, from, to time.Time) ([]models.FoodLog, error) {
	var entries []models.FoodLog
	err := s.db.
		Where("user_id = ? AND logged_at >= ? AND logged_at <= ?", userID, from, to).
		Order("logged_at ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return entries, nil
}

// Summarize folds the user's entries for the calendar day containing ref,
// in the server's local time zone. Zero entries yield all-zero totals.
func (s *FoodLogService) Summarize(userID uint, ref time.Time) (DailyTotals, error) {
	// Both bounds are clock times of the same calendar day, not offsets
	// from midnight, so DST transition days keep their full span.
	local := ref.In(time.Local)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
	end := time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, int(999*time.Millisecond), time.Local)

	entries, err := s.QueryByUserAndRange(userID, start, end)
	if err != nil {
		return DailyTotals{}, err
	}

	var totals DailyTotals
	for _, e := range entries {
		totals.TotalCalories += e.Calories
		totals.TotalProtein += e.Protein
		totals.TotalCarbs += e.Carbs
		totals.TotalFat += e.Fat
	}
	return totals, nil
}
