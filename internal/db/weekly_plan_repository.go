package db

import (
	"time"

	"github.com/inmotionhq/inmotion/internal/models"
	"gorm.io/gorm"
)

type WeeklyPlanRepository struct {
	database *gorm.DB
}

func NewWeeklyPlanRepository(database *gorm.DB) *WeeklyPlanRepository {
	return &WeeklyPlanRepository{database: database}
}

func (repo *WeeklyPlanRepository) ListByUser(userID uint) ([]models.WeeklyPlan, error) {
	plans := make([]models.WeeklyPlan, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("week_start_date DESC, id DESC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// ListByUserWeek returns the user's plans whose week start falls on the
// given day, compared as a [dayStart, nextDay) window.
func (repo *WeeklyPlanRepository) ListByUserWeek(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.WeeklyPlan, error) {
	plans := make([]models.WeeklyPlan, 0)
	if err := repo.database.
		Where("user_id = ? AND week_start_date >= ? AND week_start_date < ?", userID, dayStart, dayEnd).
		Order("id DESC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (repo *WeeklyPlanRepository) FindByIDForUser(planID uint, userID uint) (models.WeeklyPlan, bool, error) {
	var plan models.WeeklyPlan
	result := repo.database.Where("id = ? AND user_id = ?", planID, userID).Limit(1).Find(&plan)
	if result.Error != nil {
		return models.WeeklyPlan{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeeklyPlan{}, false, nil
	}
	return plan, true, nil
}

func (repo *WeeklyPlanRepository) Create(plan *models.WeeklyPlan) error {
	return repo.database.Create(plan).Error
}

func (repo *WeeklyPlanRepository) UpdateByIDForUser(planID uint, userID uint, updates map[string]any) (models.WeeklyPlan, bool, error) {
	result := repo.database.Model(&models.WeeklyPlan{}).
		Where("id = ? AND user_id = ?", planID, userID).
		Updates(updates)
	if result.Error != nil {
		return models.WeeklyPlan{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeeklyPlan{}, false, nil
	}
	return repo.FindByIDForUser(planID, userID)
}
