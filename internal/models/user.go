package models

import "time"

type User struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Email              string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash       string    `json:"-" gorm:"not null"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	ProfileImageURL    string    `json:"profileImageUrl"`
	MustChangePassword bool      `json:"mustChangePassword" gorm:"not null;default:false"`
	CreatedAt          time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
