package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// RequestStatus is the lifecycle state of a family request. "pending" is
// the only non-terminal state.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// RequestTypeFamilyValidation is the only request type currently issued.
const RequestTypeFamilyValidation = "family_validation"

// RequestDataVersion is the current schema version of the RequestData
// payload. Bump it when fields are added so old rows stay readable.
const RequestDataVersion = 1

// CandidateInfo carries the registrant's details as submitted.
type CandidateInfo struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	FatherName string `json:"father_name,omitempty"`
	MotherName string `json:"mother_name,omitempty"`
}

// FamilyConnection is an explicitly selected link to an existing member,
// chosen interactively from search results rather than found by fuzzy
// text match.
type FamilyConnection struct {
	ExistingMemberID uint             `json:"existing_member_id"`
	RelationshipType RelationshipType `json:"relationship_type"`
	MemberName       string           `json:"member_name"`
}

// RequestData is the typed, versioned payload stored on a family request.
type RequestData struct {
	Version           int               `json:"version"`
	CandidateInfo     CandidateInfo     `json:"candidate_info"`
	FamilyConnection  *FamilyConnection `json:"family_connection,omitempty"`
	ValidationScore   int               `json:"validation_score"`
	ValidationReasons []string          `json:"validation_reasons"`
}

// Value serializes the payload to JSON for the jsonb column.
func (d RequestData) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan deserializes the jsonb column back into the payload.
func (d *RequestData) Scan(value interface{}) error {
	if value == nil {
		*d = RequestData{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("unsupported type %T for RequestData", value)
	}
}

// ErrAlreadyReviewed is returned when a decision is attempted on a request
// that has left the pending state.
var ErrAlreadyReviewed = errors.New("request already reviewed")

// FamilyRequest is a claim of kinship submitted at registration. It is
// created once, then mutated exactly once: by the automatic-approval path
// at creation time or by an admin decision.
type FamilyRequest struct {
	gorm.Model
	Reference      string        `gorm:"size:64;unique;not null"`
	RequesterID    uint          `gorm:"not null;index"`
	RequestType    string        `gorm:"size:50;not null;default:'family_validation'"`
	TargetMemberID uint          `gorm:"not null;index"`
	RequestData    RequestData   `gorm:"type:jsonb"`
	Status         RequestStatus `gorm:"size:20;not null;default:'pending';index"`
	ReviewComment  *string
	ReviewedAt     *time.Time
	ReviewedByID   *uint `gorm:"index"`

	Requester    User         `gorm:"foreignKey:RequesterID"`
	TargetMember FamilyMember `gorm:"foreignKey:TargetMemberID"`
}
