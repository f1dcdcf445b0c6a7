package services

import (
	"github.com/Shetty-ANANYA-Raju/NutriVista/models"

	"gorm.io/gorm"
)

type StoreService struct {
	db *gorm.DB
}

func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{db: db}
}

// Seed loads the store and recipe catalogs, matching existing rows by name.
func (s *StoreService) Seed() error {
	products := []models.Product{
		{Name: "Weekly Fruit Combo", Price: 15.99, ImageURL: "https://placehold.co/400x300/3b82f6/FFFFFF?text=Fruit+Combo", Description: "A fresh mix of seasonal fruits for a healthy week."},
		{Name: "Protein Shake Kit", Price: 29.99, ImageURL: "https://placehold.co/400x300/f59e0b/FFFFFF?text=Protein+Kit", Description: "Everything you need for a protein-packed morning shake."},
		{Name: "Organic Skincare Set", Price: 49.99, ImageURL: "https://placehold.co/400x300/22c55e/FFFFFF?text=Skincare+Set", Description: "Natural, organic products to keep your skin glowing."},
		{Name: "Yoga Mat & Block Combo", Price: 35.00, ImageURL: "https://placehold.co/400x300/ec4899/FFFFFF?text=Yoga+Kit", Description: "Start your fitness journey with this premium combo."},
	}
	for _, p := range products {
		product := p
		if err := s.db.Where("name = ?", product.Name).FirstOrCreate(&product).Error; err != nil {
			return err
		}
	}

	recipes := []models.Recipe{
		{Name: "Healthy Sprout Salad", ImageURL: "https://placehold.co/400x300/fecaca/991b1b?text=Salad", Description: "A quick and delicious salad packed with protein and fiber.", Calories: 250},
		{Name: "Protein-Rich Dal Tadka", ImageURL: "https://placehold.co/400x300/fde68a/92400e?text=Dal", Description: "A staple Indian dish that is both nutritious and comforting.", Calories: 350},
		{Name: "Millet Vegetable Upma", ImageURL: "https://placehold.co/400x300/d1d5db/374151?text=Upma", Description: "A healthy and easy breakfast option with millets and vegetables.", Calories: 300},
	}
	for _, r := range recipes {
		recipe := r
		if err := s.db.Where("name = ?", recipe.Name).FirstOrCreate(&recipe).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *StoreService) ListProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Find(&products).Error
	return products, err
}

func (s *StoreService) ListRecipes() ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.Find(&recipes).Error
	return recipes, err
}
