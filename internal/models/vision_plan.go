package models

import "time"

// VisionPlan holds a user's long-term direction. At most one row exists
// per user, enforced by the unique index on user_id.
type VisionPlan struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"userId" gorm:"not null;uniqueIndex:uidx_vision_user"`
	CoreValues      []string  `json:"coreValues" gorm:"serializer:json"`
	ThreeYearVision string    `json:"threeYearVision"`
	Purpose         string    `json:"purpose"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
