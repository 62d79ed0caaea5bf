package db

import (
	"strings"

	"gorm.io/gorm"
)

type Repositories struct {
	Users            *UserRepository
	Profiles         *ProfileRepository
	HealthRecords    *HealthRecordRepository
	Meals            *MealRepository
	MealLogs         *MealLogRepository
	WorkoutTypes     *WorkoutTypeRepository
	WorkoutSchedules *WorkoutScheduleRepository
	MealPlans        *MealPlanRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:            NewUserRepository(database),
		Profiles:         NewProfileRepository(database),
		HealthRecords:    NewHealthRecordRepository(database),
		Meals:            NewMealRepository(database),
		MealLogs:         NewMealLogRepository(database),
		WorkoutTypes:     NewWorkoutTypeRepository(database),
		WorkoutSchedules: NewWorkoutScheduleRepository(database),
		MealPlans:        NewMealPlanRepository(database),
	}
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
