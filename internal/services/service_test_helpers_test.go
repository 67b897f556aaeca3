package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/inmotionhq/inmotion/internal/db"
	"github.com/inmotionhq/inmotion/internal/models"
)

func openTestRepositories(t *testing.T) *db.Repositories {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "inmotion-services-test.db")
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
	return db.NewRepositories(database)
}

func createServiceTestUser(t *testing.T, repositories *db.Repositories, email string) models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		PasswordHash: "test-hash",
		CreatedAt:    time.Now().UTC(),
	}
	if err := repositories.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func serviceTestDay(t *testing.T, value string) time.Time {
	t.Helper()

	day, err := ParseDate(value, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return day
}
