package model

import "time"

// User is a registered member. ID is the identity provider subject.
type User struct {
	ID          string    `json:"id" gorm:"size:128;primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Email       string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Avatar      string    `json:"avatar" gorm:"size:1024"`
	College     string    `json:"college" gorm:"size:255;not null"`
	DateOfBirth string    `json:"date_of_birth" gorm:"size:10;not null"` // YYYY-MM-DD
	Gender      string    `json:"gender" gorm:"size:32;not null"`
	Phone       *string   `json:"phone,omitempty" gorm:"size:32"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
