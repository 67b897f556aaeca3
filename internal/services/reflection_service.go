package services

import (
	"errors"
	"strings"
	"time"

	"github.com/inmotionhq/inmotion/internal/models"
)

var ErrInvalidEnergyLevel = errors.New("energy level must be between 1 and 5")

type ReflectionRepository interface {
	FindByUserAndDay(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyReflection, bool, error)
	Upsert(reflection *models.DailyReflection) (models.DailyReflection, error)
}

// ReflectionService owns the singleton-per-(user, date) end-of-day
// reflection.
type ReflectionService struct {
	reflections ReflectionRepository
	location    *time.Location
}

func NewReflectionService(reflections ReflectionRepository, location *time.Location) *ReflectionService {
	if location == nil {
		location = time.UTC
	}
	return &ReflectionService{reflections: reflections, location: location}
}

type ReflectionInput struct {
	Date             time.Time
	Reflection       string
	TomorrowPriority string
	EnergyLevel      int
}

func (service *ReflectionService) Fetch(userID uint, day time.Time) (models.DailyReflection, bool, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	return service.reflections.FindByUserAndDay(userID, dayStart, dayEnd)
}

func (service *ReflectionService) Save(userID uint, input ReflectionInput) (models.DailyReflection, error) {
	if input.EnergyLevel < models.MinEnergyLevel || input.EnergyLevel > models.MaxEnergyLevel {
		return models.DailyReflection{}, ErrInvalidEnergyLevel
	}

	dayStart, _ := DayRange(input.Date, service.location)
	reflection := models.DailyReflection{
		UserID:           userID,
		Date:             dayStart,
		Reflection:       strings.TrimSpace(input.Reflection),
		TomorrowPriority: strings.TrimSpace(input.TomorrowPriority),
		EnergyLevel:      input.EnergyLevel,
	}
	return service.reflections.Upsert(&reflection)
}
