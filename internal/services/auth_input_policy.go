package services

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/minhngct/vitatrack/internal/models"
)

const MinPasswordLength = 8

var (
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrFullNameRequired = errors.New("full name is required")
)

func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func ValidateEmail(raw string) error {
	email := NormalizeEmail(raw)
	if email == "" {
		return ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidateRegisterInput gates a registration payload before any write.
func ValidateRegisterInput(input RegisterInput) error {
	if err := ValidateEmail(input.Email); err != nil {
		return err
	}
	if err := ValidatePassword(input.Password); err != nil {
		return err
	}
	if strings.TrimSpace(input.FullName) == "" {
		return ErrFullNameRequired
	}
	if input.Gender != "" && !models.IsValidGender(input.Gender) {
		return ErrInvalidGender
	}
	if input.ActivityLevel != "" && !models.IsValidActivityLevel(input.ActivityLevel) {
		return ErrInvalidActivityLevel
	}
	if input.Goal != "" && !models.IsValidGoal(input.Goal) {
		return ErrInvalidGoal
	}
	return nil
}
