package db

import (
	"time"

	"github.com/minhngct/vitatrack/internal/models"
	"gorm.io/gorm"
)

type HealthRecordRepository struct {
	database *gorm.DB
}

func NewHealthRecordRepository(database *gorm.DB) *HealthRecordRepository {
	return &HealthRecordRepository{database: database}
}

func (repo *HealthRecordRepository) ListByUser(userID uint) ([]models.HealthRecord, error) {
	records := make([]models.HealthRecord, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *HealthRecordRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.HealthRecord, error) {
	records := make([]models.HealthRecord, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *HealthRecordRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.HealthRecord, bool, error) {
	var record models.HealthRecord
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.HealthRecord{}, false, result.Error
	}
	return record, result.RowsAffected > 0, nil
}

// UpsertByUserAndDay runs the find-mutate-write sequence for a (user, day)
// key inside one transaction. The composite unique index on (user_id, date)
// backs it up: if two callers race past the lookup, the loser's insert hits
// the constraint and is retried once as an update.
func (repo *HealthRecordRepository) UpsertByUserAndDay(userID uint, dayStart time.Time, dayEnd time.Time, mutate func(record *models.HealthRecord, found bool) error) (models.HealthRecord, bool, error) {
	record, wasUpdate, err := repo.upsertOnce(userID, dayStart, dayEnd, mutate)
	if err != nil && isUniqueConstraintError(err) {
		return repo.upsertOnce(userID, dayStart, dayEnd, mutate)
	}
	return record, wasUpdate, err
}

func (repo *HealthRecordRepository) upsertOnce(userID uint, dayStart time.Time, dayEnd time.Time, mutate func(record *models.HealthRecord, found bool) error) (models.HealthRecord, bool, error) {
	var record models.HealthRecord
	var wasUpdate bool
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		record = models.HealthRecord{}
		result := tx.
			Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
			Order("date DESC, id DESC").
			Limit(1).
			Find(&record)
		if result.Error != nil {
			return result.Error
		}

		found := result.RowsAffected > 0
		wasUpdate = found
		if err := mutate(&record, found); err != nil {
			return err
		}

		if found {
			return tx.Save(&record).Error
		}
		record.UserID = userID
		record.Date = dayStart
		return tx.Create(&record).Error
	})
	if err != nil {
		return models.HealthRecord{}, false, err
	}
	return record, wasUpdate, nil
}
