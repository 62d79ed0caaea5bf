package models

import "time"

const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderOther  = "OTHER"
)

const (
	ActivitySedentary  = "SEDENTARY"
	ActivityLight      = "LIGHT"
	ActivityModerate   = "MODERATE"
	ActivityActive     = "ACTIVE"
	ActivityVeryActive = "VERY_ACTIVE"
)

const (
	GoalLoseWeight = "LOSE_WEIGHT"
	GoalMaintain   = "MAINTAIN"
	GoalGainWeight = "GAIN_WEIGHT"
)

// ActivityFactor maps an activity level to its TDEE multiplier.
// Unknown levels fall back to the sedentary multiplier.
func ActivityFactor(level string) float64 {
	switch level {
	case ActivityLight:
		return 1.375
	case ActivityModerate:
		return 1.55
	case ActivityActive:
		return 1.725
	case ActivityVeryActive:
		return 1.9
	default:
		return 1.2
	}
}

func IsValidGender(gender string) bool {
	switch gender {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

func IsValidActivityLevel(level string) bool {
	switch level {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	default:
		return false
	}
}

func IsValidGoal(goal string) bool {
	switch goal {
	case GoalLoseWeight, GoalMaintain, GoalGainWeight:
		return true
	default:
		return false
	}
}

// Profile holds the biometric profile owned 1:1 by a user. Bmi, Bmr and
// Tdee are derived columns, recomputed on every write that changes their
// inputs, never patched incrementally.
type Profile struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"not null;uniqueIndex" json:"userId"`
	Gender         string     `gorm:"not null;default:OTHER" json:"gender"`
	Age            *int       `json:"age"`
	BirthDate      *time.Time `gorm:"type:date" json:"birthDate"`
	HeightCm       *float64   `json:"heightCm"`
	WeightKg       *float64   `json:"weightKg"`
	TargetWeightKg *float64   `json:"targetWeightKg"`
	ActivityLevel  string     `gorm:"not null;default:SEDENTARY" json:"activityLevel"`
	Goal           string     `gorm:"not null;default:MAINTAIN" json:"goal"`
	Bmi            *float64   `json:"bmi"`
	Bmr            *float64   `json:"bmr"`
	Tdee           *float64   `json:"tdee"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
