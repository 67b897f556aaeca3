package db

import (
	"testing"
	"time"

	"github.com/inmotionhq/inmotion/internal/models"
)

func TestDeleteDailyTaskMissingRowIsNoOp(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t)
	user := createTestUser(t, database, "task-delete-missing@example.com")
	repo := NewDailyTaskRepository(database)

	if err := repo.DeleteByIDForUser(424242, user.ID); err != nil {
		t.Fatalf("delete of missing task returned error: %v", err)
	}
}

func TestDeleteDailyTaskScopedToOwner(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t)
	owner := createTestUser(t, database, "task-delete-owner@example.com")
	other := createTestUser(t, database, "task-delete-other@example.com")
	repo := NewDailyTaskRepository(database)

	task := models.DailyTask{
		UserID: owner.ID,
		Title:  "Deep work block",
		Impact: models.ImpactHigh,
		Date:   testDay(t, "2026-03-02"),
	}
	if err := repo.Create(&task); err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := repo.DeleteByIDForUser(task.ID, other.ID); err != nil {
		t.Fatalf("foreign delete returned error: %v", err)
	}
	_, found, err := repo.FindByIDForUser(task.ID, owner.ID)
	if err != nil {
		t.Fatalf("reload task: %v", err)
	}
	if !found {
		t.Fatal("task deleted by non-owner")
	}

	if err := repo.DeleteByIDForUser(task.ID, owner.ID); err != nil {
		t.Fatalf("owner delete returned error: %v", err)
	}
	_, found, err = repo.FindByIDForUser(task.ID, owner.ID)
	if err != nil {
		t.Fatalf("reload task after delete: %v", err)
	}
	if found {
		t.Fatal("task still present after owner delete")
	}
}

func TestListDailyTasksByDay(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t)
	user := createTestUser(t, database, "task-list-day@example.com")
	repo := NewDailyTaskRepository(database)

	monday := testDay(t, "2026-03-02")
	tuesday := testDay(t, "2026-03-03")
	for _, task := range []models.DailyTask{
		{UserID: user.ID, Title: "Monday A", Impact: models.ImpactMedium, Date: monday},
		{UserID: user.ID, Title: "Monday B", Impact: models.ImpactLow, Date: monday},
		{UserID: user.ID, Title: "Tuesday", Impact: models.ImpactHigh, Date: tuesday},
	} {
		task := task
		if err := repo.Create(&task); err != nil {
			t.Fatalf("create task %q: %v", task.Title, err)
		}
	}

	tasks, err := repo.ListByUserDay(user.ID, monday, monday.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("ListByUserDay returned error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("monday task count = %d, want 2", len(tasks))
	}

	all, err := repo.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all task count = %d, want 3", len(all))
	}
}

func TestIncrementPomodoroCountScopedToOwner(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t)
	owner := createTestUser(t, database, "task-pomo-owner@example.com")
	other := createTestUser(t, database, "task-pomo-other@example.com")
	repo := NewDailyTaskRepository(database)

	task := models.DailyTask{
		UserID: owner.ID,
		Title:  "Focus target",
		Impact: models.ImpactHigh,
		Date:   testDay(t, "2026-03-02"),
	}
	if err := repo.Create(&task); err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := repo.IncrementPomodoroCount(task.ID, other.ID); err != nil {
		t.Fatalf("foreign increment returned error: %v", err)
	}
	if err := repo.IncrementPomodoroCount(task.ID, owner.ID); err != nil {
		t.Fatalf("owner increment returned error: %v", err)
	}

	stored, found, err := repo.FindByIDForUser(task.ID, owner.ID)
	if err != nil || !found {
		t.Fatalf("reload task: found=%v err=%v", found, err)
	}
	if stored.PomodoroCount != 1 {
		t.Fatalf("pomodoro count = %d, want 1", stored.PomodoroCount)
	}
}

func TestUpdateDailyTaskRefreshesTimestamp(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t)
	user := createTestUser(t, database, "task-update-ts@example.com")
	repo := NewDailyTaskRepository(database)

	task := models.DailyTask{
		UserID: user.ID,
		Title:  "Before",
		Impact: models.ImpactMedium,
		Date:   testDay(t, "2026-03-02"),
	}
	if err := repo.Create(&task); err != nil {
		t.Fatalf("create task: %v", err)
	}

	now := time.Now()
	updated, found, err := repo.UpdateByIDForUser(task.ID, user.ID, map[string]any{
		"is_completed": true,
		"completed_at": now,
	})
	if err != nil {
		t.Fatalf("UpdateByIDForUser returned error: %v", err)
	}
	if !found {
		t.Fatal("expected update to match the row")
	}
	if !updated.IsCompleted || updated.CompletedAt == nil {
		t.Fatalf("completion not stored: %+v", updated)
	}
}
