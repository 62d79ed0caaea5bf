package api

import (
	"net/http"
	"testing"

	"github.com/minhngct/vitatrack/internal/models"
)

func TestHealthRecordUpsertFlow(t *testing.T) {
	app, database := newTestApp(t)
	accessToken := registerTestUser(t, app, "alex@example.com", "hunter22hunter")

	first := map[string]any{"date": "2024-01-01", "weight": 70.0, "sleepHours": 7.5}
	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/health-records", first, accessToken), -1)
	if err != nil {
		t.Fatalf("first upsert request failed: %v", err)
	}
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 on first write, got %d", response.StatusCode)
	}
	var created models.HealthRecord
	decodeResponse(t, response, &created)
	if created.Bmi == nil || *created.Bmi != 22.86 {
		t.Fatalf("expected BMI 22.86 from the registered height, got %v", created.Bmi)
	}

	second := map[string]any{"date": "2024-01-01", "weight": 80.0}
	response, err = app.Test(jsonRequest(t, http.MethodPost, "/api/health-records", second, accessToken), -1)
	if err != nil {
		t.Fatalf("second upsert request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on same-day rewrite, got %d", response.StatusCode)
	}
	var updated models.HealthRecord
	decodeResponse(t, response, &updated)
	if updated.ID != created.ID {
		t.Fatalf("expected the same row, got ids %d and %d", created.ID, updated.ID)
	}
	if updated.SleepHours == nil || *updated.SleepHours != 7.5 {
		t.Fatalf("expected untouched sleep hours, got %v", updated.SleepHours)
	}
	if updated.Bmi == nil || *updated.Bmi != 26.12 {
		t.Fatalf("expected BMI recomputed from the new weight, got %v", updated.Bmi)
	}

	var count int64
	if err := database.Model(&models.HealthRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("count records: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one stored row, got %d", count)
	}

	response, err = app.Test(jsonRequest(t, http.MethodGet, "/api/health-records/my", nil, accessToken), -1)
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected list status 200, got %d", response.StatusCode)
	}
	var listed []models.HealthRecord
	decodeResponse(t, response, &listed)
	if len(listed) != 1 {
		t.Fatalf("expected one listed record, got %d", len(listed))
	}
}

func TestHealthRecordRejectsBadDate(t *testing.T) {
	app, _ := newTestApp(t)
	accessToken := registerTestUser(t, app, "alex@example.com", "hunter22hunter")

	payload := map[string]any{"date": "01/02/2024", "weight": 70.0}
	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/health-records", payload, accessToken), -1)
	if err != nil {
		t.Fatalf("upsert request failed: %v", err)
	}
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed date, got %d", response.StatusCode)
	}
	response.Body.Close()
}
