package db

import (
	"time"

	"github.com/inmotionhq/inmotion/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyReflectionRepository struct {
	database *gorm.DB
}

func NewDailyReflectionRepository(database *gorm.DB) *DailyReflectionRepository {
	return &DailyReflectionRepository{database: database}
}

func (repo *DailyReflectionRepository) FindByUserAndDay(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyReflection, bool, error) {
	var reflection models.DailyReflection
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Limit(1).
		Find(&reflection)
	if result.Error != nil {
		return models.DailyReflection{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyReflection{}, false, nil
	}
	return reflection, true, nil
}

// Upsert writes the user's reflection for one date in a single
// statement, keyed on the (user_id, date) unique index.
func (repo *DailyReflectionRepository) Upsert(reflection *models.DailyReflection) (models.DailyReflection, error) {
	if err := repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"reflection", "tomorrow_priority", "energy_level", "updated_at",
		}),
	}).Create(reflection).Error; err != nil {
		return models.DailyReflection{}, err
	}

	dayStart := reflection.Date
	stored, found, err := repo.FindByUserAndDay(reflection.UserID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return models.DailyReflection{}, err
	}
	if !found {
		return models.DailyReflection{}, gorm.ErrRecordNotFound
	}
	return stored, nil
}
