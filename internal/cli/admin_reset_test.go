package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/minhngct/vitatrack/internal/db"
	"github.com/minhngct/vitatrack/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "vitatrack-cli-test.db"))
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
	return database
}

func TestApplyAdminResetCreatesAccountWithProfile(t *testing.T) {
	database := newTestDatabase(t)

	created, err := applyAdminReset(database, "root@example.com", "hunter22hunter")
	if err != nil {
		t.Fatalf("applyAdminReset failed: %v", err)
	}
	if !created {
		t.Fatal("expected a fresh admin to be created")
	}

	var admin models.User
	if err := database.Where("email = ?", "root@example.com").First(&admin).Error; err != nil {
		t.Fatalf("load admin: %v", err)
	}
	if admin.Role != models.RoleAdmin || !admin.IsActive {
		t.Fatalf("expected active ADMIN, got role %q active %v", admin.Role, admin.IsActive)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("hunter22hunter")) != nil {
		t.Fatal("expected the stored hash to match the password")
	}

	var profileCount int64
	if err := database.Model(&models.Profile{}).Where("user_id = ?", admin.ID).Count(&profileCount).Error; err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	if profileCount != 1 {
		t.Fatalf("expected one profile row, got %d", profileCount)
	}
}

func TestApplyAdminResetPromotesExistingAccount(t *testing.T) {
	database := newTestDatabase(t)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	existing := models.User{
		Email:        "root@example.com",
		PasswordHash: string(passwordHash),
		FullName:     "Root",
		Role:         models.RoleUser,
		IsActive:     false,
	}
	if err := database.Create(&existing).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	created, err := applyAdminReset(database, "root@example.com", "a-new-password")
	if err != nil {
		t.Fatalf("applyAdminReset failed: %v", err)
	}
	if created {
		t.Fatal("expected the existing account to be reused")
	}

	var admin models.User
	if err := database.First(&admin, existing.ID).Error; err != nil {
		t.Fatalf("load admin: %v", err)
	}
	if admin.Role != models.RoleAdmin || !admin.IsActive {
		t.Fatalf("expected promoted active ADMIN, got role %q active %v", admin.Role, admin.IsActive)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("a-new-password")) != nil {
		t.Fatal("expected the hash replaced with the new password")
	}
}

func TestGenerateTemporaryPasswordMinimumLength(t *testing.T) {
	t.Parallel()

	password, err := generateTemporaryPassword(4)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 8 {
		t.Fatalf("generateTemporaryPassword minimum len = %d, want 8", len(password))
	}
}

func TestGenerateTemporaryPasswordAlphabet(t *testing.T) {
	t.Parallel()

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	password, err := generateTemporaryPassword(24)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 24 {
		t.Fatalf("generateTemporaryPassword len = %d, want 24", len(password))
	}

	for _, char := range password {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("password %q contains char %q outside alphabet", password, char)
		}
	}
}
