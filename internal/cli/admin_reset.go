package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"

	"github.com/minhngct/vitatrack/internal/db"
	"github.com/minhngct/vitatrack/internal/models"
	"github.com/minhngct/vitatrack/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunAdminResetCommand creates the ADMIN account or resets its password.
// The password is read from the terminal without echo; an empty line falls
// back to a generated temporary password that is printed once.
func RunAdminResetCommand(dbPath string, email string) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	fmt.Print("New admin password (leave empty to generate): ")
	entered, err := readPasswordNoEcho(os.Stdin)
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	password := strings.TrimSpace(string(entered))
	generated := false
	if password == "" {
		password, err = generateTemporaryPassword(12)
		if err != nil {
			return fmt.Errorf("generate temporary password: %w", err)
		}
		generated = true
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	created, err := applyAdminReset(database, normalizedEmail, password)
	if err != nil {
		return err
	}

	if created {
		fmt.Printf("Admin account %s created.\n", normalizedEmail)
	} else {
		fmt.Printf("Admin password for %s reset.\n", normalizedEmail)
	}
	if generated {
		fmt.Printf("Temporary password: %s\n", password)
	}
	return nil
}

// applyAdminReset writes the admin row. An existing account is promoted to
// ADMIN, reactivated and given the new hash; a missing one is created with
// its 1:1 profile.
func applyAdminReset(database *gorm.DB, email string, password string) (bool, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	var user models.User
	result := database.Where("lower(trim(email)) = ?", email).Limit(1).Find(&user)
	if result.Error != nil {
		return false, fmt.Errorf("load user: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		user.PasswordHash = string(passwordHash)
		user.Role = models.RoleAdmin
		user.IsActive = true
		if err := database.Save(&user).Error; err != nil {
			return false, fmt.Errorf("update admin: %w", err)
		}
		return false, nil
	}

	user = models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		FullName:     "Administrator",
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	err = database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.Profile{UserID: user.ID}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
