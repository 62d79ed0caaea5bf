package services

import (
	"errors"
	"math"
	"time"

	"github.com/minhngct/vitatrack/internal/models"
)

var ErrInvalidHeight = errors.New("height must be positive")

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// BMI computes body mass index from weight in kilograms and height in
// centimeters.
func BMI(weightKg float64, heightCm float64) (float64, error) {
	if heightCm <= 0 {
		return 0, ErrInvalidHeight
	}
	heightM := heightCm / 100
	return Round2(weightKg / (heightM * heightM)), nil
}

// BMR computes basal metabolic rate with the Mifflin-St Jeor equation.
// Genders other than MALE use the female constant.
func BMR(weightKg float64, heightCm float64, age int, gender string) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == models.GenderMale {
		base += 5
	} else {
		base -= 161
	}
	return Round2(base)
}

// TDEE scales a basal metabolic rate by the activity factor.
func TDEE(bmr float64, activityFactor float64) float64 {
	return Round2(bmr * activityFactor)
}

// AgeAt returns whole years between birthDate and now, clamped at zero.
func AgeAt(birthDate time.Time, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if birthDate.AddDate(age, 0, 0).After(now) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// BMICategory maps a BMI value to its WHO band.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	case bmi < 35:
		return "Obesity class I"
	case bmi < 40:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
