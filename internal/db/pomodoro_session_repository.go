package db

import (
	"time"

	"github.com/inmotionhq/inmotion/internal/models"
	"gorm.io/gorm"
)

type PomodoroSessionRepository struct {
	database *gorm.DB
}

func NewPomodoroSessionRepository(database *gorm.DB) *PomodoroSessionRepository {
	return &PomodoroSessionRepository{database: database}
}

func (repo *PomodoroSessionRepository) Create(session *models.PomodoroSession) error {
	return repo.database.Create(session).Error
}

func (repo *PomodoroSessionRepository) ListByUser(userID uint) ([]models.PomodoroSession, error) {
	sessions := make([]models.PomodoroSession, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("completed_at ASC, id ASC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListByUserCompletedDay returns sessions whose completion time falls
// inside the [dayStart, dayEnd) calendar-day window.
func (repo *PomodoroSessionRepository) ListByUserCompletedDay(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.PomodoroSession, error) {
	sessions := make([]models.PomodoroSession, 0)
	if err := repo.database.
		Where("user_id = ? AND completed_at >= ? AND completed_at < ?", userID, dayStart, dayEnd).
		Order("completed_at ASC, id ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
