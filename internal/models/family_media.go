package models

import (
	"time"

	"gorm.io/gorm"
)

// MediaType classifies an attached media item.
type MediaType string

const (
	MediaImage    MediaType = "image"
	MediaVideo    MediaType = "video"
	MediaDocument MediaType = "document"
)

// FamilyMedia is a media item attached to exactly one member.
type FamilyMedia struct {
	gorm.Model
	FamilyMemberID uint      `gorm:"not null;index"`
	MediaType      MediaType `gorm:"size:20;not null;default:'image'"`
	MediaURL       string    `gorm:"size:512;not null"`
	Title          string    `gorm:"size:255"`
	Description    string
	DateTaken      *time.Time
	Location       string `gorm:"size:255"`
	Verified       bool   `gorm:"not null;default:false"`
	AddedByID      *uint  `gorm:"index"`
}
