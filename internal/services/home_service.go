package services

import (
	"time"

	"github.com/minhngct/vitatrack/internal/models"
)

// HomeSummary is the dashboard payload: the latest measurements plus
// catalog picks matching the user's goal.
type HomeSummary struct {
	TodayRecord         *models.HealthRecord  `json:"todayRecord"`
	YesterdayRecord     *models.HealthRecord  `json:"yesterdayRecord"`
	WeeklyRecords       []models.HealthRecord `json:"weeklyRecords"`
	RecommendedMeals    []models.Meal         `json:"recommendedMeals"`
	RecommendedWorkouts []models.WorkoutType  `json:"recommendedWorkouts"`
}

type RecommendationMealStore interface {
	ListActiveByGoal(goal string) ([]models.Meal, error)
}

type RecommendationWorkoutStore interface {
	ListActiveByGoal(goal string) ([]models.WorkoutType, error)
}

type HomeService struct {
	records  *HealthRecordService
	profiles ProfileStore
	meals    RecommendationMealStore
	workouts RecommendationWorkoutStore
	location *time.Location
	now      func() time.Time
}

func NewHomeService(records *HealthRecordService, profiles ProfileStore, meals RecommendationMealStore, workouts RecommendationWorkoutStore, location *time.Location) *HomeService {
	if location == nil {
		location = time.UTC
	}
	return &HomeService{
		records:  records,
		profiles: profiles,
		meals:    meals,
		workouts: workouts,
		location: location,
		now:      time.Now,
	}
}

func (service *HomeService) BuildSummary(userID uint) (HomeSummary, error) {
	profile, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return HomeSummary{}, ErrProfileLoadFailed
	}
	if !found {
		return HomeSummary{}, ErrProfileMissing
	}

	today := DateAtLocation(service.now(), service.location)
	summary := HomeSummary{
		WeeklyRecords:       make([]models.HealthRecord, 0),
		RecommendedMeals:    make([]models.Meal, 0),
		RecommendedWorkouts: make([]models.WorkoutType, 0),
	}

	if record, recordFound, err := service.records.FetchByDate(userID, today); err == nil && recordFound {
		summary.TodayRecord = &record
	}
	if record, recordFound, err := service.records.FetchByDate(userID, today.AddDate(0, 0, -1)); err == nil && recordFound {
		summary.YesterdayRecord = &record
	}

	weekly, err := service.records.FetchRecentDays(userID, 7)
	if err != nil {
		return HomeSummary{}, ErrHealthRecordLoadFailed
	}
	summary.WeeklyRecords = weekly

	meals, err := service.meals.ListActiveByGoal(profile.Goal)
	if err != nil {
		return HomeSummary{}, ErrCatalogLookupFailed
	}
	summary.RecommendedMeals = meals

	workouts, err := service.workouts.ListActiveByGoal(profile.Goal)
	if err != nil {
		return HomeSummary{}, ErrCatalogLookupFailed
	}
	summary.RecommendedWorkouts = workouts

	return summary, nil
}
