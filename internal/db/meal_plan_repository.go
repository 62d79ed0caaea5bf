package db

import (
	"github.com/minhngct/vitatrack/internal/models"
	"gorm.io/gorm"
)

type MealPlanRepository struct {
	database *gorm.DB
}

func NewMealPlanRepository(database *gorm.DB) *MealPlanRepository {
	return &MealPlanRepository{database: database}
}

func (repo *MealPlanRepository) FindByID(planID uint) (models.MealPlan, bool, error) {
	var plan models.MealPlan
	result := repo.database.Limit(1).Find(&plan, planID)
	if result.Error != nil {
		return models.MealPlan{}, false, result.Error
	}
	return plan, result.RowsAffected > 0, nil
}

func (repo *MealPlanRepository) ListActive() ([]models.MealPlan, error) {
	plans := make([]models.MealPlan, 0)
	if err := repo.database.Where("is_active = ?", true).Order("id ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (repo *MealPlanRepository) Create(plan *models.MealPlan) error {
	return repo.database.Create(plan).Error
}

func (repo *MealPlanRepository) Save(plan *models.MealPlan) error {
	return repo.database.Save(plan).Error
}
