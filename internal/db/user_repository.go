package db

import (
	"strings"

	"github.com/inmotionhq/inmotion/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func normalizeEmailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

// Provision inserts the user, or on an email conflict refreshes the
// mutable profile columns in place. Called once per login/registration,
// so a returning identity always ends up with current profile data.
func (repo *UserRepository) Provision(user *models.User) (models.User, error) {
	if err := repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(user).Error; err != nil {
		return models.User{}, err
	}
	return repo.FindByNormalizedEmail(normalizeEmailKey(user.Email))
}

func (repo *UserRepository) UpdateProfile(userID uint, updates map[string]any) (models.User, bool, error) {
	result := repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	user, err := repo.FindByID(userID)
	if err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}

func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"password_hash":        passwordHash,
		"must_change_password": mustChangePassword,
	}).Error
}
