package services

import (
	"errors"
	"math"
	"time"

	"github.com/inmotionhq/inmotion/internal/models"
)

var (
	ErrInvalidSessionType     = errors.New("invalid session type")
	ErrInvalidSessionDuration = errors.New("duration must be positive")
)

type PomodoroRepository interface {
	Create(session *models.PomodoroSession) error
	ListByUser(userID uint) ([]models.PomodoroSession, error)
	ListByUserCompletedDay(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.PomodoroSession, error)
}

type PomodoroTaskCounter interface {
	IncrementPomodoroCount(taskID uint, userID uint) error
}

type PomodoroService struct {
	sessions PomodoroRepository
	tasks    PomodoroTaskCounter
	location *time.Location
	now      func() time.Time
}

func NewPomodoroService(sessions PomodoroRepository, tasks PomodoroTaskCounter, location *time.Location) *PomodoroService {
	if location == nil {
		location = time.UTC
	}
	return &PomodoroService{sessions: sessions, tasks: tasks, location: location, now: time.Now}
}

type SessionInput struct {
	TaskID      *uint
	Duration    int
	Type        string
	CompletedAt *time.Time
}

// PomodoroStats summarises completed work sessions. Break sessions are
// persisted but never counted.
type PomodoroStats struct {
	TotalFocusTime       int `json:"totalFocusTime"`
	CompletedPomodoros   int `json:"completedPomodoros"`
	AverageSessionLength int `json:"averageSessionLength"`
}

func (service *PomodoroService) Record(userID uint, input SessionInput) (models.PomodoroSession, error) {
	sessionType := input.Type
	if sessionType == "" {
		sessionType = models.SessionTypeWork
	}
	if !models.ValidSessionType(sessionType) {
		return models.PomodoroSession{}, ErrInvalidSessionType
	}
	if input.Duration <= 0 {
		return models.PomodoroSession{}, ErrInvalidSessionDuration
	}

	completedAt := service.now()
	if input.CompletedAt != nil {
		completedAt = *input.CompletedAt
	}

	session := models.PomodoroSession{
		UserID:      userID,
		TaskID:      input.TaskID,
		Duration:    input.Duration,
		Type:        sessionType,
		CompletedAt: completedAt,
	}
	if err := service.sessions.Create(&session); err != nil {
		return models.PomodoroSession{}, err
	}

	// Work sessions linked to a task bump its visible counter. The
	// increment is ownership-scoped; a stale or foreign task id is a
	// silent no-op rather than a failed session write.
	if sessionType == models.SessionTypeWork && input.TaskID != nil {
		if err := service.tasks.IncrementPomodoroCount(*input.TaskID, userID); err != nil {
			return models.PomodoroSession{}, err
		}
	}
	return session, nil
}

func (service *PomodoroService) Stats(userID uint, date *time.Time) (PomodoroStats, error) {
	var sessions []models.PomodoroSession
	var err error
	if date == nil {
		sessions, err = service.sessions.ListByUser(userID)
	} else {
		dayStart, dayEnd := DayRange(*date, service.location)
		sessions, err = service.sessions.ListByUserCompletedDay(userID, dayStart, dayEnd)
	}
	if err != nil {
		return PomodoroStats{}, err
	}

	stats := PomodoroStats{}
	for _, session := range sessions {
		if session.Type != models.SessionTypeWork {
			continue
		}
		stats.TotalFocusTime += session.Duration
		stats.CompletedPomodoros++
	}
	if stats.CompletedPomodoros > 0 {
		stats.AverageSessionLength = int(math.Round(float64(stats.TotalFocusTime) / float64(stats.CompletedPomodoros)))
	}
	return stats, nil
}
