package models

import "gorm.io/gorm"

// RelationshipType is the label on a directed relationship edge.
type RelationshipType string

const (
	// Structural types: these are the only two the tree builder turns
	// into parent/child edges.
	RelationParent RelationshipType = "parent"
	RelationChild  RelationshipType = "enfant"

	// Descriptive types: shown on profiles, never traversed.
	RelationSibling     RelationshipType = "frère/sœur"
	RelationCousin      RelationshipType = "cousin(e)"
	RelationUncleAunt   RelationshipType = "oncle/tante"
	RelationNieceNephew RelationshipType = "neveu/nièce"
)

// Structural reports whether the type contributes to tree structure.
func (t RelationshipType) Structural() bool {
	return t == RelationParent || t == RelationChild
}

// Known reports whether the type belongs to the fixed vocabulary.
func (t RelationshipType) Known() bool {
	switch t {
	case RelationParent, RelationChild, RelationSibling, RelationCousin, RelationUncleAunt, RelationNieceNephew:
		return true
	}
	return false
}

// FamilyRelationship is a directed edge between two members. Edges are not
// auto-mirrored: a "parent" edge from A to B says B is a parent of A and
// nothing else.
type FamilyRelationship struct {
	gorm.Model
	PersonID         uint             `gorm:"not null;index"`
	RelatedPersonID  uint             `gorm:"not null;index"`
	RelationshipType RelationshipType `gorm:"size:50;not null"`
	AddedByID        *uint            `gorm:"index"`

	Person        FamilyMember `gorm:"foreignKey:PersonID"`
	RelatedPerson FamilyMember `gorm:"foreignKey:RelatedPersonID"`
}
