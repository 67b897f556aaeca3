package models

import "time"

const (
	QuarterQ1 = "Q1"
	QuarterQ2 = "Q2"
	QuarterQ3 = "Q3"
	QuarterQ4 = "Q4"
)

// QuarterlyQuest is a 90-day goal in the Goal/Plan/Systems structure.
type QuarterlyQuest struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"not null"`
	Goal      string    `json:"goal"`
	Plan      string    `json:"plan"`
	Systems   string    `json:"systems"`
	Quarter   string    `json:"quarter" gorm:"not null"`
	Year      int       `json:"year" gorm:"not null"`
	Progress  int       `json:"progress" gorm:"not null;default:0"`
	// No gorm default tag: a default would make GORM omit false on
	// insert and silently store the column's SQL default instead.
	IsActive  bool      `json:"isActive" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ValidQuarterLabel(quarter string) bool {
	switch quarter {
	case QuarterQ1, QuarterQ2, QuarterQ3, QuarterQ4:
		return true
	default:
		return false
	}
}
