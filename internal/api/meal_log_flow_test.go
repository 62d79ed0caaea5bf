package api

import (
	"net/http"
	"testing"

	"github.com/minhngct/vitatrack/internal/models"
	"gorm.io/gorm"
)

func seedTestMeal(t *testing.T, database *gorm.DB, name string, calories float64) models.Meal {
	t.Helper()
	meal := models.Meal{
		Name:     name,
		Category: models.MealTypeBreakfast,
		Goal:     models.GoalMaintain,
		Calories: &calories,
		IsActive: true,
	}
	if err := database.Create(&meal).Error; err != nil {
		t.Fatalf("seed meal: %v", err)
	}
	return meal
}

func TestMealLogUpsertFlow(t *testing.T) {
	app, database := newTestApp(t)
	accessToken := registerTestUser(t, app, "alex@example.com", "hunter22hunter")
	oatmeal := seedTestMeal(t, database, "Oatmeal", 350)
	salad := seedTestMeal(t, database, "Salad", 200)

	first := map[string]any{
		"date":     "2024-01-01",
		"mealId":   oatmeal.ID,
		"mealType": models.MealTypeBreakfast,
		"quantity": 1.5,
	}
	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/meal-logs", first, accessToken), -1)
	if err != nil {
		t.Fatalf("first upsert request failed: %v", err)
	}
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 on first write, got %d", response.StatusCode)
	}
	var created models.MealLog
	decodeResponse(t, response, &created)
	if created.TotalCalories == nil || *created.TotalCalories != 525 {
		t.Fatalf("expected total calories 525, got %v", created.TotalCalories)
	}

	second := map[string]any{
		"date":     "2024-01-01",
		"mealId":   salad.ID,
		"mealType": models.MealTypeBreakfast,
		"quantity": 2.0,
	}
	response, err = app.Test(jsonRequest(t, http.MethodPost, "/api/meal-logs", second, accessToken), -1)
	if err != nil {
		t.Fatalf("second upsert request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on slot rewrite, got %d", response.StatusCode)
	}
	var updated models.MealLog
	decodeResponse(t, response, &updated)
	if updated.ID != created.ID {
		t.Fatalf("expected the same row, got ids %d and %d", created.ID, updated.ID)
	}
	if updated.MealID != salad.ID {
		t.Fatalf("expected the meal reference replaced, got %d", updated.MealID)
	}
	if updated.TotalCalories == nil || *updated.TotalCalories != 400 {
		t.Fatalf("expected total calories 400, got %v", updated.TotalCalories)
	}

	var count int64
	if err := database.Model(&models.MealLog{}).Count(&count).Error; err != nil {
		t.Fatalf("count meal logs: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one stored row, got %d", count)
	}
}

func TestMealLogValidationErrors(t *testing.T) {
	app, database := newTestApp(t)
	accessToken := registerTestUser(t, app, "alex@example.com", "hunter22hunter")
	oatmeal := seedTestMeal(t, database, "Oatmeal", 350)

	tests := []struct {
		name     string
		payload  map[string]any
		expected int
	}{
		{"unknown meal", map[string]any{"mealId": 9999, "mealType": models.MealTypeLunch}, http.StatusNotFound},
		{"bad meal type", map[string]any{"mealId": oatmeal.ID, "mealType": "BRUNCH"}, http.StatusBadRequest},
		{"bad date", map[string]any{"mealId": oatmeal.ID, "mealType": models.MealTypeLunch, "date": "not-a-date"}, http.StatusBadRequest},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/meal-logs", test.payload, accessToken), -1)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if response.StatusCode != test.expected {
				t.Fatalf("expected %d, got %d", test.expected, response.StatusCode)
			}
			response.Body.Close()
		})
	}

	var count int64
	if err := database.Model(&models.MealLog{}).Count(&count).Error; err != nil {
		t.Fatalf("count meal logs: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows written by rejected inputs, got %d", count)
	}
}
