package db

import (
	"github.com/inmotionhq/inmotion/internal/models"
	"gorm.io/gorm"
)

// ErrorLogRepository is append-only: no update or delete is exposed,
// and rows may be written without an authenticated user.
type ErrorLogRepository struct {
	database *gorm.DB
}

func NewErrorLogRepository(database *gorm.DB) *ErrorLogRepository {
	return &ErrorLogRepository{database: database}
}

func (repo *ErrorLogRepository) Create(entry *models.ErrorLog) error {
	return repo.database.Create(entry).Error
}
