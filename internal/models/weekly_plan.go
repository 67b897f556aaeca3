package models

import "time"

type WeeklyPriority struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted bool   `json:"isCompleted"`
}

type WeeklyReflection struct {
	WentWell  string `json:"wentWell"`
	ToImprove string `json:"toImprove"`
}

// WeeklyPlan captures one week's top priorities and its end-of-week
// reflection. One plan per (user, week start) is a convention the client
// follows, not a schema constraint.
type WeeklyPlan struct {
	ID            uint             `json:"id" gorm:"primaryKey"`
	UserID        uint             `json:"userId" gorm:"not null;index"`
	QuestID       *uint            `json:"questId" gorm:"index"`
	WeekStartDate time.Time        `json:"weekStartDate" gorm:"type:date;not null"`
	Priorities    []WeeklyPriority `json:"priorities" gorm:"serializer:json"`
	Reflection    WeeklyReflection `json:"reflection" gorm:"serializer:json"`
	Progress      int              `json:"progress" gorm:"not null;default:0"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}
