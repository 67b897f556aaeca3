package services

import (
	"errors"
	"strings"
	"time"

	"github.com/inmotionhq/inmotion/internal/models"
)

var (
	ErrTaskNotFound      = errors.New("daily task not found")
	ErrTaskTitleRequired = errors.New("task title is required")
	ErrInvalidImpact     = errors.New("invalid impact level")
	ErrEmptyTaskUpdate   = errors.New("empty task update")
)

type DailyTaskRepository interface {
	ListByUser(userID uint) ([]models.DailyTask, error)
	ListByUserDay(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.DailyTask, error)
	Create(task *models.DailyTask) error
	UpdateByIDForUser(taskID uint, userID uint, updates map[string]any) (models.DailyTask, bool, error)
	DeleteByIDForUser(taskID uint, userID uint) error
}

type TaskService struct {
	tasks    DailyTaskRepository
	location *time.Location
	now      func() time.Time
}

func NewTaskService(tasks DailyTaskRepository, location *time.Location) *TaskService {
	if location == nil {
		location = time.UTC
	}
	return &TaskService{tasks: tasks, location: location, now: time.Now}
}

type TaskInput struct {
	WeeklyPlanID *uint
	Title        string
	Description  string
	Impact       string
	Date         time.Time
}

// TaskPatch carries partial updates. CompletedAt is intentionally
// absent: it is derived from IsCompleted transitions and callers must
// not be able to set it directly. WeeklyPlanID is doubly indirect so a
// present-but-nil value can clear the link.
type TaskPatch struct {
	WeeklyPlanID **uint
	Title        *string
	Description  *string
	Impact       *string
	IsCompleted  *bool
	Date         *time.Time
}

func (service *TaskService) List(userID uint, date *time.Time) ([]models.DailyTask, error) {
	if date == nil {
		return service.tasks.ListByUser(userID)
	}
	dayStart, dayEnd := DayRange(*date, service.location)
	return service.tasks.ListByUserDay(userID, dayStart, dayEnd)
}

func (service *TaskService) Create(userID uint, input TaskInput) (models.DailyTask, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.DailyTask{}, ErrTaskTitleRequired
	}
	impact := input.Impact
	if impact == "" {
		impact = models.ImpactMedium
	}
	if !models.ValidImpactLevel(impact) {
		return models.DailyTask{}, ErrInvalidImpact
	}

	dayStart, _ := DayRange(input.Date, service.location)
	task := models.DailyTask{
		UserID:       userID,
		WeeklyPlanID: input.WeeklyPlanID,
		Title:        title,
		Description:  strings.TrimSpace(input.Description),
		Impact:       impact,
		Date:         dayStart,
	}
	if err := service.tasks.Create(&task); err != nil {
		return models.DailyTask{}, err
	}
	return task, nil
}

func (service *TaskService) Update(taskID uint, userID uint, patch TaskPatch) (models.DailyTask, error) {
	updates := map[string]any{}
	if patch.WeeklyPlanID != nil {
		if *patch.WeeklyPlanID == nil {
			updates["weekly_plan_id"] = nil
		} else {
			updates["weekly_plan_id"] = **patch.WeeklyPlanID
		}
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return models.DailyTask{}, ErrTaskTitleRequired
		}
		updates["title"] = title
	}
	if patch.Description != nil {
		updates["description"] = strings.TrimSpace(*patch.Description)
	}
	if patch.Impact != nil {
		if !models.ValidImpactLevel(*patch.Impact) {
			return models.DailyTask{}, ErrInvalidImpact
		}
		updates["impact"] = *patch.Impact
	}
	if patch.Date != nil {
		dayStart, _ := DayRange(*patch.Date, service.location)
		updates["date"] = dayStart
	}
	if patch.IsCompleted != nil {
		updates["is_completed"] = *patch.IsCompleted
		if *patch.IsCompleted {
			updates["completed_at"] = service.now()
		} else {
			updates["completed_at"] = nil
		}
	}
	if len(updates) == 0 {
		return models.DailyTask{}, ErrEmptyTaskUpdate
	}

	task, found, err := service.tasks.UpdateByIDForUser(taskID, userID, updates)
	if err != nil {
		return models.DailyTask{}, err
	}
	if !found {
		return models.DailyTask{}, ErrTaskNotFound
	}
	return task, nil
}

// Delete is a no-op when no row matches the id and owner.
func (service *TaskService) Delete(taskID uint, userID uint) error {
	return service.tasks.DeleteByIDForUser(taskID, userID)
}
