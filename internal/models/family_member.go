package models

import (
	"time"

	"gorm.io/gorm"
)

// Gender is the tag stored for a member's gender. The vocabulary is the
// French one used by the original directory data.
type Gender string

const (
	GenderMale   Gender = "masculin"
	GenderFemale Gender = "féminin"
)

// FamilyMember represents a person node in the family graph.
// Members are never hard-deleted; gorm.Model's DeletedAt gives them a
// soft lifecycle only.
type FamilyMember struct {
	gorm.Model
	FirstName       string     `gorm:"size:255;not null"`
	LastName        string     `gorm:"size:255;not null"`
	BirthDate       *time.Time
	DeathDate       *time.Time
	BirthPlace      string `gorm:"size:255"`
	CurrentLocation string `gorm:"size:255"`
	Occupation      string `gorm:"size:255"`
	PhoneNumber     string `gorm:"size:50"`
	Email           string `gorm:"size:255"`
	Bio             string
	ProfileImageURL string `gorm:"size:512"`
	Gender          Gender `gorm:"size:20"`
	Verified        bool   `gorm:"not null;default:false"`

	// The account that created this member (registration approval or
	// direct add).
	AddedByID *uint `gorm:"index"`

	Media []FamilyMedia `gorm:"foreignKey:FamilyMemberID"`
}

// FullName returns the member's "first last" full name, the form used for
// fuzzy matching and display.
func (m FamilyMember) FullName() string {
	return m.FirstName + " " + m.LastName
}
