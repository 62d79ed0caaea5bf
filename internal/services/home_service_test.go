package services

import (
	"testing"
	"time"

	"github.com/minhngct/vitatrack/internal/models"
)

type recommendationMealStoreStub struct {
	byGoal map[string][]models.Meal
}

func (stub *recommendationMealStoreStub) ListActiveByGoal(goal string) ([]models.Meal, error) {
	meals := stub.byGoal[goal]
	if meals == nil {
		meals = []models.Meal{}
	}
	return meals, nil
}

type recommendationWorkoutStoreStub struct {
	byGoal map[string][]models.WorkoutType
}

func (stub *recommendationWorkoutStoreStub) ListActiveByGoal(goal string) ([]models.WorkoutType, error) {
	workouts := stub.byGoal[goal]
	if workouts == nil {
		workouts = []models.WorkoutType{}
	}
	return workouts, nil
}

func TestBuildSummaryPicksRecordsAndGoalRecommendations(t *testing.T) {
	records := newHealthRecordStoreStub()
	profiles := newProfileStoreStub()
	profiles.profiles[1] = models.Profile{UserID: 1, Goal: models.GoalLoseWeight, HeightCm: floatPtr(175)}
	recordService := newHealthRecordServiceForTest(profiles, records)

	today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	for _, offset := range []int{0, -1, -3} {
		day := today.AddDate(0, 0, offset)
		if _, _, err := recordService.Upsert(1, HealthRecordPatch{Date: timePtr(day), Weight: floatPtr(70)}); err != nil {
			t.Fatalf("seed upsert failed: %v", err)
		}
	}

	meals := &recommendationMealStoreStub{byGoal: map[string][]models.Meal{
		models.GoalLoseWeight: {{ID: 1, Name: "Salad"}},
	}}
	workouts := &recommendationWorkoutStoreStub{byGoal: map[string][]models.WorkoutType{
		models.GoalLoseWeight: {{ID: 1, Name: "Running"}},
	}}

	service := NewHomeService(recordService, profiles, meals, workouts, time.UTC)
	service.now = recordService.now

	summary, err := service.BuildSummary(1)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	if summary.TodayRecord == nil || !summary.TodayRecord.Date.Equal(today) {
		t.Fatalf("expected today's record, got %+v", summary.TodayRecord)
	}
	if summary.YesterdayRecord == nil || !summary.YesterdayRecord.Date.Equal(today.AddDate(0, 0, -1)) {
		t.Fatalf("expected yesterday's record, got %+v", summary.YesterdayRecord)
	}
	if len(summary.WeeklyRecords) != 3 {
		t.Fatalf("expected 3 records in the weekly window, got %d", len(summary.WeeklyRecords))
	}
	if len(summary.RecommendedMeals) != 1 || summary.RecommendedMeals[0].Name != "Salad" {
		t.Fatalf("expected goal-matched meal recommendation, got %+v", summary.RecommendedMeals)
	}
	if len(summary.RecommendedWorkouts) != 1 || summary.RecommendedWorkouts[0].Name != "Running" {
		t.Fatalf("expected goal-matched workout recommendation, got %+v", summary.RecommendedWorkouts)
	}
}

func TestBuildSummaryWithoutRecords(t *testing.T) {
	records := newHealthRecordStoreStub()
	profiles := newProfileStoreStub()
	profiles.profiles[1] = models.Profile{UserID: 1, Goal: models.GoalMaintain}
	recordService := newHealthRecordServiceForTest(profiles, records)

	meals := &recommendationMealStoreStub{byGoal: map[string][]models.Meal{}}
	workouts := &recommendationWorkoutStoreStub{byGoal: map[string][]models.WorkoutType{}}

	service := NewHomeService(recordService, profiles, meals, workouts, time.UTC)
	service.now = recordService.now

	summary, err := service.BuildSummary(1)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TodayRecord != nil || summary.YesterdayRecord != nil {
		t.Fatal("expected no daily records for an empty store")
	}
	if summary.WeeklyRecords == nil || summary.RecommendedMeals == nil || summary.RecommendedWorkouts == nil {
		t.Fatal("expected empty slices, not nils, for JSON encoding")
	}
}
