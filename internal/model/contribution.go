package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Stage names a pipeline collection.
type Stage string

const (
	StagePending   Stage = "pending"
	StageVerified  Stage = "verified"
	StagePublished Stage = "published"
)

// UnverifiedContribution is a user submission waiting for review.
type UnverifiedContribution struct {
	ID              uuid.UUID                   `json:"id" gorm:"type:char(36);primaryKey"`
	Title           string                      `json:"title" gorm:"size:255;not null"`
	Description     string                      `json:"description" gorm:"type:text;not null"`
	ContributorID   string                      `json:"contributor_id" gorm:"size:128;not null;index"`
	ContributorName string                      `json:"contributor_name" gorm:"size:255;not null"`
	FileURL         string                      `json:"file_url" gorm:"size:2048;not null"`
	FileType        string                      `json:"file_type" gorm:"size:128"`
	Tags            datatypes.JSONSlice[string] `json:"tags"`
	Version         int                         `json:"version" gorm:"not null;default:1"`
	CreatedAt       time.Time                   `json:"created_at" gorm:"index"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

// BeforeCreate sets UUID and initial version before creating the record.
func (u *UnverifiedContribution) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Version == 0 {
		u.Version = 1
	}
	return nil
}

// VerifiedContribution passed the first review and waits for publication.
type VerifiedContribution struct {
	ID              uuid.UUID                   `json:"id" gorm:"type:char(36);primaryKey"`
	SourceID        uuid.UUID                   `json:"source_id" gorm:"type:char(36);uniqueIndex;not null"`
	Title           string                      `json:"title" gorm:"size:255;not null"`
	Description     string                      `json:"description" gorm:"type:text;not null"`
	Tags            datatypes.JSONSlice[string] `json:"tags"`
	ContributorID   string                      `json:"contributor_id" gorm:"size:128;not null;index"`
	ContributorName string                      `json:"contributor_name" gorm:"size:255;not null"`
	FileURL         string                      `json:"file_url" gorm:"size:2048;not null"`
	FileType        string                      `json:"file_type" gorm:"size:128"`
	SubmittedAt     time.Time                   `json:"submitted_at"`
	VerifiedAt      time.Time                   `json:"verified_at" gorm:"index"`
	VerifiedBy      string                      `json:"verified_by" gorm:"size:128"`
	Version         int                         `json:"version" gorm:"not null;default:1"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

// BeforeCreate sets UUID and initial version before creating the record.
func (v *VerifiedContribution) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.Version == 0 {
		v.Version = 1
	}
	return nil
}
