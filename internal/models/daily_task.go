package models

import "time"

const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// DailyTask is a single actionable item for a date. CompletedAt is
// derived from IsCompleted transitions and never settable by callers.
type DailyTask struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	UserID        uint       `json:"userId" gorm:"not null;index"`
	WeeklyPlanID  *uint      `json:"weeklyPlanId" gorm:"index"`
	Title         string     `json:"title" gorm:"not null"`
	Description   string     `json:"description"`
	Impact        string     `json:"impact" gorm:"not null;default:medium"`
	IsCompleted   bool       `json:"isCompleted" gorm:"not null;default:false"`
	CompletedAt   *time.Time `json:"completedAt"`
	Date          time.Time  `json:"date" gorm:"type:date;not null;index"`
	PomodoroCount int        `json:"pomodoroCount" gorm:"not null;default:0"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func ValidImpactLevel(impact string) bool {
	switch impact {
	case ImpactHigh, ImpactMedium, ImpactLow:
		return true
	default:
		return false
	}
}
