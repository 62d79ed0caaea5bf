package services

import (
	"errors"
	"strings"
	"time"

	"github.com/minhngct/vitatrack/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken          = errors.New("email is already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountDeactivated  = errors.New("account is deactivated")
	ErrAdminRequired       = errors.New("access denied")
	ErrRegistrationFailed  = errors.New("registration failed")
	ErrPasswordSameAsOld   = errors.New("new password must be different from current password")
	ErrPasswordMismatch    = errors.New("new password and confirmation do not match")
	ErrCurrentPasswordBad  = errors.New("current password is incorrect")
	ErrPasswordHashFailure = errors.New("password hashing failed")
)

// RegisterInput carries registration fields; the biometric ones are optional
// and, when all present, seed the profile's derived metrics immediately.
type RegisterInput struct {
	Email          string
	Password       string
	FullName       string
	Gender         string
	BirthDate      *time.Time
	HeightCm       *float64
	WeightKg       *float64
	TargetWeightKg *float64
	ActivityLevel  string
	Goal           string
}

type AuthUserStore interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, bool, error)
	FindByID(userID uint) (models.User, bool, error)
	UpdatePasswordHash(userID uint, passwordHash string) error
}

type AuthProfileStore interface {
	CreateUserAndProfile(user *models.User, profile *models.Profile) error
}

type AuthService struct {
	users    AuthUserStore
	profiles AuthProfileStore
	now      func() time.Time
}

func NewAuthService(users AuthUserStore, profiles AuthProfileStore) *AuthService {
	return &AuthService{
		users:    users,
		profiles: profiles,
		now:      time.Now,
	}
}

// Register creates the user together with its 1:1 profile. When height,
// weight, birth date and gender all arrive with the request the profile is
// seeded with BMI, BMR and TDEE through the same formulas every later
// profile update uses, so registration can never disagree with an update.
func (service *AuthService) Register(input RegisterInput) (models.User, models.Profile, error) {
	email := NormalizeEmail(input.Email)

	taken, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, models.Profile{}, ErrRegistrationFailed
	}
	if taken {
		return models.User{}, models.Profile{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, models.Profile{}, ErrPasswordHashFailure
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		FullName:     strings.TrimSpace(input.FullName),
		Role:         models.RoleUser,
		IsActive:     true,
	}

	profile := models.Profile{
		Gender:         models.GenderOther,
		ActivityLevel:  models.ActivitySedentary,
		Goal:           models.GoalMaintain,
		HeightCm:       input.HeightCm,
		WeightKg:       input.WeightKg,
		TargetWeightKg: input.TargetWeightKg,
		BirthDate:      input.BirthDate,
	}
	if input.Gender != "" {
		profile.Gender = input.Gender
	}
	if input.ActivityLevel != "" {
		profile.ActivityLevel = input.ActivityLevel
	}
	if input.Goal != "" {
		profile.Goal = input.Goal
	}
	if input.BirthDate != nil {
		age := AgeAt(*input.BirthDate, service.now())
		profile.Age = &age
	}
	RecomputeProfileMetrics(&profile)

	if err := service.profiles.CreateUserAndProfile(&user, &profile); err != nil {
		return models.User{}, models.Profile{}, ErrRegistrationFailed
	}
	return user, profile, nil
}

// Authenticate checks credentials and account status. adminOnly additionally
// requires the ADMIN role, for the admin login entry point.
func (service *AuthService) Authenticate(email string, password string, adminOnly bool) (models.User, error) {
	user, found, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !found {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return models.User{}, ErrAccountDeactivated
	}
	if adminOnly && user.Role != models.RoleAdmin {
		return models.User{}, ErrAdminRequired
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, bool, error) {
	return service.users.FindByID(userID)
}

// ChangePassword verifies the current password, requires the new one to be
// both confirmed and actually new, and persists the fresh hash.
func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string, confirmPassword string) error {
	user, found, err := service.users.FindByID(userID)
	if err != nil || !found {
		return ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrCurrentPasswordBad
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(newPassword)) == nil {
		return ErrPasswordSameAsOld
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}
	return service.users.UpdatePasswordHash(user.ID, string(passwordHash))
}
