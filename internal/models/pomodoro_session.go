package models

import "time"

const (
	SessionTypeWork  = "work"
	SessionTypeBreak = "break"
)

// PomodoroSession records one completed work or break interval.
// Sessions are immutable once written; break sessions are persisted
// but excluded from every focus statistic.
type PomodoroSession struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	TaskID      *uint     `json:"taskId" gorm:"index"`
	Duration    int       `json:"duration" gorm:"not null"`
	Type        string    `json:"type" gorm:"not null;default:work"`
	CompletedAt time.Time `json:"completedAt" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ValidSessionType(sessionType string) bool {
	return sessionType == SessionTypeWork || sessionType == SessionTypeBreak
}
