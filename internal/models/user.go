package models

import "gorm.io/gorm"

// User represents an authenticated account in the system.
// Profile data that the original store kept in a separate user_profiles
// table (family link, capability grant) lives directly on the user row.
type User struct {
	gorm.Model
	FirstName    string `gorm:"size:255;not null"`
	LastName     string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:50;not null;default:'user';index"`

	// Set when a family request is approved: the member record this
	// account corresponds to, and the right to add further members.
	FamilyMemberID *uint `gorm:"index"`
	CanAddMembers  bool  `gorm:"not null;default:false"`

	FamilyMember *FamilyMember `gorm:"foreignKey:FamilyMemberID"`
}

// Name returns the display name composed as "first last".
func (u User) Name() string {
	return u.FirstName + " " + u.LastName
}
