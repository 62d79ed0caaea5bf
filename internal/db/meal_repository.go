package db

import (
	"github.com/minhngct/vitatrack/internal/models"
	"gorm.io/gorm"
)

type MealRepository struct {
	database *gorm.DB
}

func NewMealRepository(database *gorm.DB) *MealRepository {
	return &MealRepository{database: database}
}

// FindByID deliberately ignores the is_active flag: historical meal logs may
// reference soft-deleted catalog rows and still need to resolve them.
func (repo *MealRepository) FindByID(mealID uint) (models.Meal, bool, error) {
	var meal models.Meal
	result := repo.database.Limit(1).Find(&meal, mealID)
	if result.Error != nil {
		return models.Meal{}, false, result.Error
	}
	return meal, result.RowsAffected > 0, nil
}

func (repo *MealRepository) ListActive() ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.Where("is_active = ?", true).Order("id ASC").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (repo *MealRepository) ListActiveByGoal(goal string) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.
		Where("is_active = ? AND goal = ?", true, goal).
		Order("id ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (repo *MealRepository) Create(meal *models.Meal) error {
	return repo.database.Create(meal).Error
}

func (repo *MealRepository) Save(meal *models.Meal) error {
	return repo.database.Save(meal).Error
}
