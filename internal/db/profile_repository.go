package db

import (
	"github.com/minhngct/vitatrack/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) FindByUserID(userID uint) (models.Profile, bool, error) {
	var profile models.Profile
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&profile)
	if result.Error != nil {
		return models.Profile{}, false, result.Error
	}
	return profile, result.RowsAffected > 0, nil
}

func (repo *ProfileRepository) Create(profile *models.Profile) error {
	return repo.database.Create(profile).Error
}

// SaveUserAndProfile persists both halves of a profile mutation in one
// transaction so derived metrics can never go stale against the biometrics
// they were computed from.
func (repo *ProfileRepository) SaveUserAndProfile(user *models.User, profile *models.Profile) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		return tx.Save(profile).Error
	})
}

// CreateUserAndProfile inserts a fresh user with its 1:1 profile atomically.
func (repo *ProfileRepository) CreateUserAndProfile(user *models.User, profile *models.Profile) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}
