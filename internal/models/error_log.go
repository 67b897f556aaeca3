package models

import "time"

// ErrorLog is a client-reported error record. Append-only; UserID is
// optional because the client may report failures before logging in.
type ErrorLog struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       *uint          `json:"userId" gorm:"index"`
	BlockType    string         `json:"blockType" gorm:"not null"`
	ErrorMessage string         `json:"errorMessage" gorm:"not null"`
	ErrorStack   string         `json:"errorStack"`
	ErrorDetails map[string]any `json:"errorDetails" gorm:"serializer:json"`
	CreatedAt    time.Time      `json:"createdAt"`
}
