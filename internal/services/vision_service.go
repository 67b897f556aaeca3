package services

import (
	"strings"

	"github.com/inmotionhq/inmotion/internal/models"
)

type VisionPlanRepository interface {
	FindByUser(userID uint) (models.VisionPlan, bool, error)
	Upsert(plan *models.VisionPlan) (models.VisionPlan, error)
}

// VisionService owns the singleton-per-user vision plan. Saving is a
// true upsert: one row per user, updated in place on every submission.
type VisionService struct {
	plans VisionPlanRepository
}

func NewVisionService(plans VisionPlanRepository) *VisionService {
	return &VisionService{plans: plans}
}

type VisionPlanInput struct {
	CoreValues      []string
	ThreeYearVision string
	Purpose         string
}

func (service *VisionService) Fetch(userID uint) (models.VisionPlan, bool, error) {
	return service.plans.FindByUser(userID)
}

func (service *VisionService) Save(userID uint, input VisionPlanInput) (models.VisionPlan, error) {
	plan := models.VisionPlan{
		UserID:          userID,
		CoreValues:      normalizeCoreValues(input.CoreValues),
		ThreeYearVision: strings.TrimSpace(input.ThreeYearVision),
		Purpose:         strings.TrimSpace(input.Purpose),
	}
	return service.plans.Upsert(&plan)
}

func normalizeCoreValues(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		normalized = append(normalized, trimmed)
	}
	return normalized
}
