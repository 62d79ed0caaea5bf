package services

import (
	"errors"
	"time"

	"github.com/minhngct/vitatrack/internal/models"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidGender        = errors.New("invalid gender")
	ErrInvalidActivityLevel = errors.New("invalid activity level")
	ErrInvalidGoal          = errors.New("invalid goal")
	ErrProfileLoadFailed    = errors.New("load profile failed")
	ErrProfileSaveFailed    = errors.New("save profile failed")
)

// ProfilePatch mirrors the optional fields of a profile update request.
type ProfilePatch struct {
	FullName       *string
	Gender         *string
	BirthDate      *time.Time
	HeightCm       *float64
	WeightKg       *float64
	TargetWeightKg *float64
	ActivityLevel  *string
	Goal           *string
}

type ProfileUserStore interface {
	FindByID(userID uint) (models.User, bool, error)
}

type ProfileWriteStore interface {
	FindByUserID(userID uint) (models.Profile, bool, error)
	SaveUserAndProfile(user *models.User, profile *models.Profile) error
}

type ProfileService struct {
	users    ProfileUserStore
	profiles ProfileWriteStore
	now      func() time.Time
}

func NewProfileService(users ProfileUserStore, profiles ProfileWriteStore) *ProfileService {
	return &ProfileService{
		users:    users,
		profiles: profiles,
		now:      time.Now,
	}
}

// UpdateProfile merges present patch fields into the stored profile, then
// recomputes the derived metrics in dependency order: BMI from height and
// weight, BMR from weight/height/age/gender, TDEE from BMR and activity
// level. A metric whose inputs are incomplete keeps its previous value.
// User and profile rows are written in one transaction.
func (service *ProfileService) UpdateProfile(userID uint, patch ProfilePatch) (models.Profile, error) {
	if patch.Gender != nil && !models.IsValidGender(*patch.Gender) {
		return models.Profile{}, ErrInvalidGender
	}
	if patch.ActivityLevel != nil && !models.IsValidActivityLevel(*patch.ActivityLevel) {
		return models.Profile{}, ErrInvalidActivityLevel
	}
	if patch.Goal != nil && !models.IsValidGoal(*patch.Goal) {
		return models.Profile{}, ErrInvalidGoal
	}

	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.Profile{}, ErrProfileLoadFailed
	}
	if !found {
		return models.Profile{}, ErrUserNotFound
	}

	profile, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.Profile{}, ErrProfileLoadFailed
	}
	if !found {
		// Every user gets a profile at registration; a missing row is a
		// data-integrity fault, not a request error.
		return models.Profile{}, ErrProfileMissing
	}

	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Gender != nil {
		profile.Gender = *patch.Gender
	}
	if patch.BirthDate != nil {
		age := AgeAt(*patch.BirthDate, service.now())
		profile.BirthDate = patch.BirthDate
		profile.Age = &age
	}
	if patch.HeightCm != nil {
		profile.HeightCm = patch.HeightCm
	}
	if patch.WeightKg != nil {
		profile.WeightKg = patch.WeightKg
	}
	if patch.TargetWeightKg != nil {
		profile.TargetWeightKg = patch.TargetWeightKg
	}
	if patch.ActivityLevel != nil {
		profile.ActivityLevel = *patch.ActivityLevel
	}
	if patch.Goal != nil {
		profile.Goal = *patch.Goal
	}

	RecomputeProfileMetrics(&profile)

	if err := service.profiles.SaveUserAndProfile(&user, &profile); err != nil {
		return models.Profile{}, ErrProfileSaveFailed
	}
	return profile, nil
}

// RecomputeProfileMetrics refreshes BMI, BMR and TDEE from the profile's
// current biometrics. Metrics with incomplete inputs are left untouched.
func RecomputeProfileMetrics(profile *models.Profile) {
	if profile.HeightCm != nil && profile.WeightKg != nil {
		if bmi, err := BMI(*profile.WeightKg, *profile.HeightCm); err == nil {
			profile.Bmi = &bmi
		}
	}

	if profile.WeightKg != nil && profile.HeightCm != nil && profile.Age != nil && profile.Gender != "" {
		bmr := BMR(*profile.WeightKg, *profile.HeightCm, *profile.Age, profile.Gender)
		profile.Bmr = &bmr
	}

	if profile.Bmr != nil && profile.ActivityLevel != "" {
		tdee := TDEE(*profile.Bmr, models.ActivityFactor(profile.ActivityLevel))
		profile.Tdee = &tdee
	}
}

func (service *ProfileService) FetchProfile(userID uint) (models.User, models.Profile, error) {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, models.Profile{}, ErrProfileLoadFailed
	}
	if !found {
		return models.User{}, models.Profile{}, ErrUserNotFound
	}
	profile, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.User{}, models.Profile{}, ErrProfileLoadFailed
	}
	if !found {
		return models.User{}, models.Profile{}, ErrProfileMissing
	}
	return user, profile, nil
}
