package services

import (
	"errors"
	"strings"

	"github.com/inmotionhq/inmotion/internal/models"
)

var (
	ErrQuestNotFound        = errors.New("quarterly quest not found")
	ErrQuestTitleRequired   = errors.New("quest title is required")
	ErrInvalidQuarterLabel  = errors.New("invalid quarter label")
	ErrInvalidQuestProgress = errors.New("progress must be between 0 and 100")
	ErrEmptyQuestUpdate     = errors.New("empty quest update")
)

type QuestRepository interface {
	ListByUser(userID uint) ([]models.QuarterlyQuest, error)
	Create(quest *models.QuarterlyQuest) error
	UpdateByIDForUser(questID uint, userID uint, updates map[string]any) (models.QuarterlyQuest, bool, error)
}

type QuestService struct {
	quests QuestRepository
}

func NewQuestService(quests QuestRepository) *QuestService {
	return &QuestService{quests: quests}
}

type QuestInput struct {
	Title    string
	Goal     string
	Plan     string
	Systems  string
	Quarter  string
	Year     int
	Progress int
	IsActive bool
}

type QuestPatch struct {
	Title    *string
	Goal     *string
	Plan     *string
	Systems  *string
	Quarter  *string
	Year     *int
	Progress *int
	IsActive *bool
}

func (service *QuestService) List(userID uint) ([]models.QuarterlyQuest, error) {
	return service.quests.ListByUser(userID)
}

func (service *QuestService) Create(userID uint, input QuestInput) (models.QuarterlyQuest, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.QuarterlyQuest{}, ErrQuestTitleRequired
	}
	if !models.ValidQuarterLabel(input.Quarter) {
		return models.QuarterlyQuest{}, ErrInvalidQuarterLabel
	}
	if !validProgress(input.Progress) {
		return models.QuarterlyQuest{}, ErrInvalidQuestProgress
	}

	quest := models.QuarterlyQuest{
		UserID:   userID,
		Title:    title,
		Goal:     strings.TrimSpace(input.Goal),
		Plan:     strings.TrimSpace(input.Plan),
		Systems:  strings.TrimSpace(input.Systems),
		Quarter:  input.Quarter,
		Year:     input.Year,
		Progress: input.Progress,
		IsActive: input.IsActive,
	}
	if err := service.quests.Create(&quest); err != nil {
		return models.QuarterlyQuest{}, err
	}
	return quest, nil
}

func (service *QuestService) Update(questID uint, userID uint, patch QuestPatch) (models.QuarterlyQuest, error) {
	updates := map[string]any{}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return models.QuarterlyQuest{}, ErrQuestTitleRequired
		}
		updates["title"] = title
	}
	if patch.Goal != nil {
		updates["goal"] = strings.TrimSpace(*patch.Goal)
	}
	if patch.Plan != nil {
		updates["plan"] = strings.TrimSpace(*patch.Plan)
	}
	if patch.Systems != nil {
		updates["systems"] = strings.TrimSpace(*patch.Systems)
	}
	if patch.Quarter != nil {
		if !models.ValidQuarterLabel(*patch.Quarter) {
			return models.QuarterlyQuest{}, ErrInvalidQuarterLabel
		}
		updates["quarter"] = *patch.Quarter
	}
	if patch.Year != nil {
		updates["year"] = *patch.Year
	}
	if patch.Progress != nil {
		if !validProgress(*patch.Progress) {
			return models.QuarterlyQuest{}, ErrInvalidQuestProgress
		}
		updates["progress"] = *patch.Progress
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}
	if len(updates) == 0 {
		return models.QuarterlyQuest{}, ErrEmptyQuestUpdate
	}

	quest, found, err := service.quests.UpdateByIDForUser(questID, userID, updates)
	if err != nil {
		return models.QuarterlyQuest{}, err
	}
	if !found {
		return models.QuarterlyQuest{}, ErrQuestNotFound
	}
	return quest, nil
}

func validProgress(progress int) bool {
	return progress >= 0 && progress <= 100
}
