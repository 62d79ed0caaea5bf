package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/minhngct/vitatrack/internal/db"
	"github.com/minhngct/vitatrack/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db                  *gorm.DB
	secretKey           []byte
	location            *time.Location
	repositories        *db.Repositories
	authService         *services.AuthService
	profileService      *services.ProfileService
	healthRecordService *services.HealthRecordService
	mealLogService      *services.MealLogService
	catalogService      *services.CatalogService
	homeService         *services.HomeService
}

const (
	defaultAccessTokenTTL  = 24 * time.Hour
	defaultRefreshTokenTTL = 30 * 24 * time.Hour

	contextUserKey = "current_user"

	tokenPurposeAccess  = "access"
	tokenPurposeRefresh = "refresh"
)

type authClaims struct {
	UserID  uint   `json:"uid"`
	Role    string `json:"role"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

func NewHandler(database *gorm.DB, secret string, location *time.Location) *Handler {
	if location == nil {
		location = time.Local
	}
	handler := &Handler{
		db:        database,
		secretKey: []byte(secret),
		location:  location,
	}
	return handler.withDependencies(database)
}
