package model

import (
	"strings"
	"time"
)

// AdminEntry marks an admin by normalized email. Presence is the privilege.
type AdminEntry struct {
	Key       string    `json:"key" gorm:"size:255;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the roster under the "admins" collection name.
func (AdminEntry) TableName() string {
	return "admins"
}

// NormalizeEmailKey turns an email into a roster key: trimmed, lower-cased,
// with every "." replaced by "_".
func NormalizeEmailKey(email string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(email)), ".", "_")
}
