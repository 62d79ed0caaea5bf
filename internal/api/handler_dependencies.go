package api

import (
	"github.com/minhngct/vitatrack/internal/db"
	"github.com/minhngct/vitatrack/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	repos := handler.repositories
	handler.authService = services.NewAuthService(repos.Users, repos.Profiles)
	handler.profileService = services.NewProfileService(repos.Users, repos.Profiles)
	handler.healthRecordService = services.NewHealthRecordService(repos.HealthRecords, repos.Profiles, handler.location)
	handler.mealLogService = services.NewMealLogService(repos.MealLogs, repos.Meals, handler.location)
	handler.catalogService = services.NewCatalogService(repos.Meals, repos.WorkoutTypes, repos.WorkoutSchedules, repos.MealPlans)
	handler.homeService = services.NewHomeService(handler.healthRecordService, repos.Profiles, repos.Meals, repos.WorkoutTypes, handler.location)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.withDependencies(handler.db)
	}
}
