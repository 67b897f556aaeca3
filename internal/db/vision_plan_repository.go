package db

import (
	"github.com/inmotionhq/inmotion/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VisionPlanRepository struct {
	database *gorm.DB
}

func NewVisionPlanRepository(database *gorm.DB) *VisionPlanRepository {
	return &VisionPlanRepository{database: database}
}

func (repo *VisionPlanRepository) FindByUser(userID uint) (models.VisionPlan, bool, error) {
	var plan models.VisionPlan
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&plan)
	if result.Error != nil {
		return models.VisionPlan{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.VisionPlan{}, false, nil
	}
	return plan, true, nil
}

// Upsert writes the user's single vision plan in one statement: insert,
// or on a user_id conflict update the mutable fields in place. The
// stored row is re-read so the caller sees generated id and timestamps.
func (repo *VisionPlanRepository) Upsert(plan *models.VisionPlan) (models.VisionPlan, error) {
	if err := repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"core_values", "three_year_vision", "purpose", "updated_at",
		}),
	}).Create(plan).Error; err != nil {
		return models.VisionPlan{}, err
	}

	stored, found, err := repo.FindByUser(plan.UserID)
	if err != nil {
		return models.VisionPlan{}, err
	}
	if !found {
		return models.VisionPlan{}, gorm.ErrRecordNotFound
	}
	return stored, nil
}
