package db

import (
	"path/filepath"
	"testing"
)

func TestOpenSQLiteAppliesMigrationsIdempotently(t *testing.T) {
	t.Parallel()

	databasePath := filepath.Join(t.TempDir(), "inmotion-migrations-test.db")

	first, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	firstSQL, err := first.DB()
	if err != nil {
		t.Fatalf("first sql db: %v", err)
	}
	if err := firstSQL.Close(); err != nil {
		t.Fatalf("close first connection: %v", err)
	}

	second, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("reopen with applied migrations: %v", err)
	}
	defer func() {
		if sqlDB, err := second.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	var applied int64
	if err := second.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied).Error; err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied == 0 {
		t.Fatal("expected at least one applied migration")
	}

	for _, table := range []string{
		"users", "vision_plans", "quarterly_quests", "weekly_plans",
		"daily_tasks", "pomodoro_sessions", "daily_reflections", "error_logs",
	} {
		var count int64
		if err := second.Raw(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&count).Error; err != nil {
			t.Fatalf("inspect table %s: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("table %s missing after migrations", table)
		}
	}
}
