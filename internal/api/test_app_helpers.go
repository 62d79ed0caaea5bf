package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/minhngct/vitatrack/internal/db"
	"github.com/minhngct/vitatrack/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "vitatrack-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", time.UTC)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func jsonRequest(t *testing.T, method string, path string, payload any, accessToken string) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if accessToken != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+accessToken)
	}
	return request
}

func decodeResponse(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func registerTestUser(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	payload := map[string]any{
		"email":         email,
		"password":      password,
		"fullName":      "Test User",
		"gender":        models.GenderMale,
		"heightCm":      175.0,
		"weightKg":      70.0,
		"activityLevel": models.ActivityModerate,
		"goal":          models.GoalMaintain,
	}
	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", payload, ""), -1)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", response.StatusCode)
	}

	var parsed struct {
		AccessToken string `json:"accessToken"`
	}
	decodeResponse(t, response, &parsed)
	if parsed.AccessToken == "" {
		t.Fatal("register response is missing the access token")
	}
	return parsed.AccessToken
}

func createTestAdmin(t *testing.T, database *gorm.DB, email string, password string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		FullName:     "Admin",
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := database.Create(&admin).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}
	return admin
}

func loginTestUser(t *testing.T, app *fiber.App, path string, email string, password string) string {
	t.Helper()

	payload := map[string]string{"email": email, "password": password}
	response, err := app.Test(jsonRequest(t, http.MethodPost, path, payload, ""), -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}

	var parsed struct {
		AccessToken string `json:"accessToken"`
	}
	decodeResponse(t, response, &parsed)
	if parsed.AccessToken == "" {
		t.Fatal("login response is missing the access token")
	}
	return parsed.AccessToken
}
