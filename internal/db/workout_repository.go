package db

import (
	"github.com/minhngct/vitatrack/internal/models"
	"gorm.io/gorm"
)

type WorkoutTypeRepository struct {
	database *gorm.DB
}

func NewWorkoutTypeRepository(database *gorm.DB) *WorkoutTypeRepository {
	return &WorkoutTypeRepository{database: database}
}

func (repo *WorkoutTypeRepository) FindByID(workoutID uint) (models.WorkoutType, bool, error) {
	var workout models.WorkoutType
	result := repo.database.Limit(1).Find(&workout, workoutID)
	if result.Error != nil {
		return models.WorkoutType{}, false, result.Error
	}
	return workout, result.RowsAffected > 0, nil
}

func (repo *WorkoutTypeRepository) ListActive() ([]models.WorkoutType, error) {
	workouts := make([]models.WorkoutType, 0)
	if err := repo.database.Where("is_active = ?", true).Order("id ASC").Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *WorkoutTypeRepository) ListActiveByGoal(goal string) ([]models.WorkoutType, error) {
	workouts := make([]models.WorkoutType, 0)
	if err := repo.database.
		Where("is_active = ? AND goal = ?", true, goal).
		Order("id ASC").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *WorkoutTypeRepository) Create(workout *models.WorkoutType) error {
	return repo.database.Create(workout).Error
}

func (repo *WorkoutTypeRepository) Save(workout *models.WorkoutType) error {
	return repo.database.Save(workout).Error
}

type WorkoutScheduleRepository struct {
	database *gorm.DB
}

func NewWorkoutScheduleRepository(database *gorm.DB) *WorkoutScheduleRepository {
	return &WorkoutScheduleRepository{database: database}
}

func (repo *WorkoutScheduleRepository) FindByID(scheduleID uint) (models.WorkoutSchedule, bool, error) {
	var schedule models.WorkoutSchedule
	result := repo.database.Limit(1).Find(&schedule, scheduleID)
	if result.Error != nil {
		return models.WorkoutSchedule{}, false, result.Error
	}
	return schedule, result.RowsAffected > 0, nil
}

func (repo *WorkoutScheduleRepository) ListActive() ([]models.WorkoutSchedule, error) {
	schedules := make([]models.WorkoutSchedule, 0)
	if err := repo.database.Where("is_active = ?", true).Order("id ASC").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (repo *WorkoutScheduleRepository) Create(schedule *models.WorkoutSchedule) error {
	return repo.database.Create(schedule).Error
}

func (repo *WorkoutScheduleRepository) Save(schedule *models.WorkoutSchedule) error {
	return repo.database.Save(schedule).Error
}
