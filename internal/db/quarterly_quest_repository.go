package db

import (
	"github.com/inmotionhq/inmotion/internal/models"
	"gorm.io/gorm"
)

type QuarterlyQuestRepository struct {
	database *gorm.DB
}

func NewQuarterlyQuestRepository(database *gorm.DB) *QuarterlyQuestRepository {
	return &QuarterlyQuestRepository{database: database}
}

func (repo *QuarterlyQuestRepository) ListByUser(userID uint) ([]models.QuarterlyQuest, error) {
	quests := make([]models.QuarterlyQuest, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("year DESC, quarter DESC, id DESC").Find(&quests).Error; err != nil {
		return nil, err
	}
	return quests, nil
}

func (repo *QuarterlyQuestRepository) FindByIDForUser(questID uint, userID uint) (models.QuarterlyQuest, bool, error) {
	var quest models.QuarterlyQuest
	result := repo.database.Where("id = ? AND user_id = ?", questID, userID).Limit(1).Find(&quest)
	if result.Error != nil {
		return models.QuarterlyQuest{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.QuarterlyQuest{}, false, nil
	}
	return quest, true, nil
}

func (repo *QuarterlyQuestRepository) CountActiveByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.QuarterlyQuest{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *QuarterlyQuestRepository) Create(quest *models.QuarterlyQuest) error {
	return repo.database.Create(quest).Error
}

// UpdateByIDForUser applies a partial update restricted to rows matching
// both the quest id and the owning user. The false return distinguishes
// a missed predicate (wrong id or wrong owner) from storage failure.
func (repo *QuarterlyQuestRepository) UpdateByIDForUser(questID uint, userID uint, updates map[string]any) (models.QuarterlyQuest, bool, error) {
	result := repo.database.Model(&models.QuarterlyQuest{}).
		Where("id = ? AND user_id = ?", questID, userID).
		Updates(updates)
	if result.Error != nil {
		return models.QuarterlyQuest{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.QuarterlyQuest{}, false, nil
	}
	return repo.FindByIDForUser(questID, userID)
}
