package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Material is a published study resource, visible in the public catalog.
// SourceID is nil for materials an admin added directly.
type Material struct {
	ID              uuid.UUID                   `json:"id" gorm:"type:char(36);primaryKey"`
	SourceID        *uuid.UUID                  `json:"source_id,omitempty" gorm:"type:char(36);uniqueIndex"`
	Title           string                      `json:"title" gorm:"size:255;not null"`
	Description     string                      `json:"description" gorm:"type:text;not null"`
	Tags            datatypes.JSONSlice[string] `json:"tags"`
	ContributorID   string                      `json:"contributor_id" gorm:"size:128;not null;index"`
	ContributorName string                      `json:"contributor_name" gorm:"size:255"`
	FileURL         string                      `json:"file_url" gorm:"size:2048;not null"`
	FileType        string                      `json:"file_type" gorm:"size:128"`
	PublishedAt     time.Time                   `json:"published_at" gorm:"index"`
	PublishedBy     string                      `json:"published_by" gorm:"size:128"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

// BeforeCreate sets UUID and publish time before creating the record.
func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.PublishedAt.IsZero() {
		m.PublishedAt = time.Now()
	}
	return nil
}

// ContributionSummary is one row of a contributor's history across all stages.
type ContributionSummary struct {
	ID        uuid.UUID `json:"id"`
	Stage     Stage     `json:"stage"`
	Title     string    `json:"title"`
	FileURL   string    `json:"file_url"`
	Tags      []string  `json:"tags"`
	Timestamp time.Time `json:"timestamp"`
}
