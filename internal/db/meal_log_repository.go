package db

import (
	"time"

	"github.com/minhngct/vitatrack/internal/models"
	"gorm.io/gorm"
)

type MealLogRepository struct {
	database *gorm.DB
}

func NewMealLogRepository(database *gorm.DB) *MealLogRepository {
	return &MealLogRepository{database: database}
}

func (repo *MealLogRepository) ListByUser(userID uint) ([]models.MealLog, error) {
	logs := make([]models.MealLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// UpsertByUserDayAndType is the meal-slot counterpart of the health record
// upsert: one transaction around find-mutate-write, keyed by
// (user_id, date, meal_type), with a single retry when a racing insert trips
// the unique index.
func (repo *MealLogRepository) UpsertByUserDayAndType(userID uint, dayStart time.Time, dayEnd time.Time, mealType string, mutate func(entry *models.MealLog, found bool) error) (models.MealLog, bool, error) {
	entry, wasUpdate, err := repo.upsertOnce(userID, dayStart, dayEnd, mealType, mutate)
	if err != nil && isUniqueConstraintError(err) {
		return repo.upsertOnce(userID, dayStart, dayEnd, mealType, mutate)
	}
	return entry, wasUpdate, err
}

func (repo *MealLogRepository) upsertOnce(userID uint, dayStart time.Time, dayEnd time.Time, mealType string, mutate func(entry *models.MealLog, found bool) error) (models.MealLog, bool, error) {
	var entry models.MealLog
	var wasUpdate bool
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		entry = models.MealLog{}
		result := tx.
			Where("user_id = ? AND date >= ? AND date < ? AND meal_type = ?", userID, dayStart, dayEnd, mealType).
			Order("date DESC, id DESC").
			Limit(1).
			Find(&entry)
		if result.Error != nil {
			return result.Error
		}

		found := result.RowsAffected > 0
		wasUpdate = found
		if err := mutate(&entry, found); err != nil {
			return err
		}

		if found {
			return tx.Save(&entry).Error
		}
		entry.UserID = userID
		entry.Date = dayStart
		entry.MealType = mealType
		return tx.Create(&entry).Error
	})
	if err != nil {
		return models.MealLog{}, false, err
	}
	return entry, wasUpdate, nil
}
