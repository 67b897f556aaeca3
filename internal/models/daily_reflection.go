package models

import "time"

const (
	MinEnergyLevel = 1
	MaxEnergyLevel = 5
)

// DailyReflection is the end-of-day journal entry. At most one row
// exists per (user, date), enforced by the composite unique index.
type DailyReflection struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"userId" gorm:"not null;uniqueIndex:uidx_reflection_user_date"`
	Date             time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:uidx_reflection_user_date"`
	Reflection       string    `json:"reflection"`
	TomorrowPriority string    `json:"tomorrowPriority"`
	EnergyLevel      int       `json:"energyLevel" gorm:"not null;default:3"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
