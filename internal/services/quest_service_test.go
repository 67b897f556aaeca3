package services

import (
	"errors"
	"testing"

	"github.com/inmotionhq/inmotion/internal/models"
)

func TestQuestCreateValidation(t *testing.T) {
	t.Parallel()

	repositories := openTestRepositories(t)
	user := createServiceTestUser(t, repositories, "quest-create@example.com")
	service := NewQuestService(repositories.QuarterlyQuests)

	if _, err := service.Create(user.ID, QuestInput{Title: "  ", Quarter: models.QuarterQ1}); !errors.Is(err, ErrQuestTitleRequired) {
		t.Fatalf("blank title: expected ErrQuestTitleRequired, got %v", err)
	}
	if _, err := service.Create(user.ID, QuestInput{Title: "ok", Quarter: "Q5"}); !errors.Is(err, ErrInvalidQuarterLabel) {
		t.Fatalf("bad quarter: expected ErrInvalidQuarterLabel, got %v", err)
	}
	if _, err := service.Create(user.ID, QuestInput{Title: "ok", Quarter: models.QuarterQ1, Progress: 120}); !errors.Is(err, ErrInvalidQuestProgress) {
		t.Fatalf("bad progress: expected ErrInvalidQuestProgress, got %v", err)
	}

	quest, err := service.Create(user.ID, QuestInput{
		Title:    "  Launch beta  ",
		Goal:     "100 signups",
		Quarter:  models.QuarterQ2,
		Year:     2026,
		Progress: 0,
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("create quest: %v", err)
	}
	if quest.Title != "Launch beta" {
		t.Fatalf("title not trimmed: %q", quest.Title)
	}
}

func TestQuestUpdate(t *testing.T) {
	t.Parallel()

	repositories := openTestRepositories(t)
	user := createServiceTestUser(t, repositories, "quest-update@example.com")
	stranger := createServiceTestUser(t, repositories, "quest-stranger@example.com")
	service := NewQuestService(repositories.QuarterlyQuests)

	quest, err := service.Create(user.ID, QuestInput{Title: "Launch beta", Quarter: models.QuarterQ2, Year: 2026, IsActive: true})
	if err != nil {
		t.Fatalf("create quest: %v", err)
	}

	progress := 65
	updated, err := service.Update(quest.ID, user.ID, QuestPatch{Progress: &progress})
	if err != nil {
		t.Fatalf("update quest: %v", err)
	}
	if updated.Progress != 65 || updated.Title != "Launch beta" {
		t.Fatalf("partial update wrong: %+v", updated)
	}

	if _, err := service.Update(quest.ID, user.ID, QuestPatch{}); !errors.Is(err, ErrEmptyQuestUpdate) {
		t.Fatalf("empty patch: expected ErrEmptyQuestUpdate, got %v", err)
	}

	// Another user's id never resolves someone else's quest.
	if _, err := service.Update(quest.ID, stranger.ID, QuestPatch{Progress: &progress}); !errors.Is(err, ErrQuestNotFound) {
		t.Fatalf("foreign owner: expected ErrQuestNotFound, got %v", err)
	}
}
