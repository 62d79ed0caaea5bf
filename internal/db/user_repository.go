package db

import (
	"github.com/minhngct/vitatrack/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, bool, error) {
	var user models.User
	result := repo.database.Limit(1).Find(&user, userID)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	return user, result.RowsAffected > 0, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, bool, error) {
	var user models.User
	result := repo.database.Where("lower(trim(email)) = ?", email).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	return user, result.RowsAffected > 0, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) UpdatePasswordHash(userID uint, passwordHash string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}

func (repo *UserRepository) UpdateActive(userID uint, isActive bool) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).
		Update("is_active", isActive).Error
}

func (repo *UserRepository) ListByRole(role string) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.
		Where("role = ?", role).
		Order("created_at DESC, id DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
