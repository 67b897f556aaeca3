package db

import (
	"time"

	"github.com/inmotionhq/inmotion/internal/models"
	"gorm.io/gorm"
)

type DailyTaskRepository struct {
	database *gorm.DB
}

func NewDailyTaskRepository(database *gorm.DB) *DailyTaskRepository {
	return &DailyTaskRepository{database: database}
}

func (repo *DailyTaskRepository) ListByUser(userID uint) ([]models.DailyTask, error) {
	tasks := make([]models.DailyTask, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("date DESC, id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *DailyTaskRepository) ListByUserDay(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.DailyTask, error) {
	tasks := make([]models.DailyTask, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *DailyTaskRepository) FindByIDForUser(taskID uint, userID uint) (models.DailyTask, bool, error) {
	var task models.DailyTask
	result := repo.database.Where("id = ? AND user_id = ?", taskID, userID).Limit(1).Find(&task)
	if result.Error != nil {
		return models.DailyTask{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyTask{}, false, nil
	}
	return task, true, nil
}

func (repo *DailyTaskRepository) Create(task *models.DailyTask) error {
	return repo.database.Create(task).Error
}

func (repo *DailyTaskRepository) UpdateByIDForUser(taskID uint, userID uint, updates map[string]any) (models.DailyTask, bool, error) {
	result := repo.database.Model(&models.DailyTask{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		Updates(updates)
	if result.Error != nil {
		return models.DailyTask{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyTask{}, false, nil
	}
	return repo.FindByIDForUser(taskID, userID)
}

// DeleteByIDForUser removes the task if it exists and belongs to the
// user. A zero-row match is deliberately not an error.
func (repo *DailyTaskRepository) DeleteByIDForUser(taskID uint, userID uint) error {
	return repo.database.Where("id = ? AND user_id = ?", taskID, userID).Delete(&models.DailyTask{}).Error
}

func (repo *DailyTaskRepository) IncrementPomodoroCount(taskID uint, userID uint) error {
	return repo.database.Model(&models.DailyTask{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		UpdateColumn("pomodoro_count", gorm.Expr("pomodoro_count + 1")).Error
}
