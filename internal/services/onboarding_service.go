package services

import "github.com/inmotionhq/inmotion/internal/models"

// Onboarding is considered complete once the user has written a vision
// plan with at least this many core values and has an active quest.
const minOnboardingCoreValues = 3

type OnboardingVisionReader interface {
	FindByUser(userID uint) (models.VisionPlan, bool, error)
}

type OnboardingQuestCounter interface {
	CountActiveByUser(userID uint) (int64, error)
}

type OnboardingService struct {
	plans  OnboardingVisionReader
	quests OnboardingQuestCounter
}

func NewOnboardingService(plans OnboardingVisionReader, quests OnboardingQuestCounter) *OnboardingService {
	return &OnboardingService{plans: plans, quests: quests}
}

type OnboardingStatus struct {
	HasVisionPlan  bool `json:"hasVisionPlan"`
	HasCoreValues  bool `json:"hasCoreValues"`
	HasActiveQuest bool `json:"hasActiveQuest"`
	Completed      bool `json:"completed"`
}

// Status is a pure function of data presence, recomputed on every call.
func (service *OnboardingService) Status(userID uint) (OnboardingStatus, error) {
	plan, found, err := service.plans.FindByUser(userID)
	if err != nil {
		return OnboardingStatus{}, err
	}

	activeQuests, err := service.quests.CountActiveByUser(userID)
	if err != nil {
		return OnboardingStatus{}, err
	}

	status := OnboardingStatus{
		HasVisionPlan:  found,
		HasCoreValues:  found && len(plan.CoreValues) >= minOnboardingCoreValues,
		HasActiveQuest: activeQuests > 0,
	}
	status.Completed = status.HasCoreValues && status.HasActiveQuest
	return status, nil
}
