package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/inmotionhq/inmotion/internal/models"
)

var (
	ErrWeeklyPlanNotFound    = errors.New("weekly plan not found")
	ErrInvalidPlanProgress   = errors.New("progress must be between 0 and 100")
	ErrPriorityTitleRequired = errors.New("priority title is required")
	ErrEmptyPlanUpdate       = errors.New("empty weekly plan update")
)

type WeeklyPlanRepository interface {
	ListByUser(userID uint) ([]models.WeeklyPlan, error)
	ListByUserWeek(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.WeeklyPlan, error)
	Create(plan *models.WeeklyPlan) error
	UpdateByIDForUser(planID uint, userID uint, updates map[string]any) (models.WeeklyPlan, bool, error)
}

type WeeklyPlanService struct {
	plans    WeeklyPlanRepository
	location *time.Location
}

func NewWeeklyPlanService(plans WeeklyPlanRepository, location *time.Location) *WeeklyPlanService {
	if location == nil {
		location = time.UTC
	}
	return &WeeklyPlanService{plans: plans, location: location}
}

type WeeklyPlanInput struct {
	QuestID       *uint
	WeekStartDate time.Time
	Priorities    []models.WeeklyPriority
	Reflection    models.WeeklyReflection
	Progress      int
}

// WeeklyPlanPatch carries partial updates. QuestID is doubly indirect
// so a present-but-nil value can clear the quest link.
type WeeklyPlanPatch struct {
	QuestID    **uint
	Priorities *[]models.WeeklyPriority
	Reflection *models.WeeklyReflection
	Progress   *int
}

// List returns all the user's weekly plans, or only those starting on
// the given day when weekStart is set.
func (service *WeeklyPlanService) List(userID uint, weekStart *time.Time) ([]models.WeeklyPlan, error) {
	if weekStart == nil {
		return service.plans.ListByUser(userID)
	}
	dayStart, dayEnd := DayRange(*weekStart, service.location)
	return service.plans.ListByUserWeek(userID, dayStart, dayEnd)
}

func (service *WeeklyPlanService) Create(userID uint, input WeeklyPlanInput) (models.WeeklyPlan, error) {
	priorities, err := normalizePriorities(input.Priorities)
	if err != nil {
		return models.WeeklyPlan{}, err
	}
	if !validProgress(input.Progress) {
		return models.WeeklyPlan{}, ErrInvalidPlanProgress
	}

	weekStart, _ := DayRange(input.WeekStartDate, service.location)
	plan := models.WeeklyPlan{
		UserID:        userID,
		QuestID:       input.QuestID,
		WeekStartDate: weekStart,
		Priorities:    priorities,
		Reflection:    input.Reflection,
		Progress:      input.Progress,
	}
	if err := service.plans.Create(&plan); err != nil {
		return models.WeeklyPlan{}, err
	}
	return plan, nil
}

func (service *WeeklyPlanService) Update(planID uint, userID uint, patch WeeklyPlanPatch) (models.WeeklyPlan, error) {
	updates := map[string]any{}
	if patch.QuestID != nil {
		if *patch.QuestID == nil {
			updates["quest_id"] = nil
		} else {
			updates["quest_id"] = **patch.QuestID
		}
	}
	// Map-based Updates bypass GORM's field serializer, so the JSON
	// columns are encoded by hand here.
	if patch.Priorities != nil {
		priorities, err := normalizePriorities(*patch.Priorities)
		if err != nil {
			return models.WeeklyPlan{}, err
		}
		encoded, err := json.Marshal(priorities)
		if err != nil {
			return models.WeeklyPlan{}, err
		}
		updates["priorities"] = string(encoded)
	}
	if patch.Reflection != nil {
		encoded, err := json.Marshal(*patch.Reflection)
		if err != nil {
			return models.WeeklyPlan{}, err
		}
		updates["reflection"] = string(encoded)
	}
	if patch.Progress != nil {
		if !validProgress(*patch.Progress) {
			return models.WeeklyPlan{}, ErrInvalidPlanProgress
		}
		updates["progress"] = *patch.Progress
	}
	if len(updates) == 0 {
		return models.WeeklyPlan{}, ErrEmptyPlanUpdate
	}

	plan, found, err := service.plans.UpdateByIDForUser(planID, userID, updates)
	if err != nil {
		return models.WeeklyPlan{}, err
	}
	if !found {
		return models.WeeklyPlan{}, ErrWeeklyPlanNotFound
	}
	return plan, nil
}

func normalizePriorities(priorities []models.WeeklyPriority) ([]models.WeeklyPriority, error) {
	normalized := make([]models.WeeklyPriority, 0, len(priorities))
	for _, priority := range priorities {
		title := strings.TrimSpace(priority.Title)
		if title == "" {
			return nil, ErrPriorityTitleRequired
		}
		normalized = append(normalized, models.WeeklyPriority{
			Title:       title,
			Description: strings.TrimSpace(priority.Description),
			IsCompleted: priority.IsCompleted,
		})
	}
	return normalized, nil
}
