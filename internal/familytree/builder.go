// Package familytree assembles the traversable family tree from the flat
// member, relationship and media lists.
package familytree

import "familytree/backend/internal/models"

// Node is a member with its direct parent/child edges and media attached.
// Only one generation of edges is materialized per node; deeper traversal
// (grandparents and beyond) walks Parents[i].Parents at render time.
type Node struct {
	models.FamilyMember
	Parents  []*Node              `json:"parents"`
	Children []*Node              `json:"children"`
	Media    []models.FamilyMedia `json:"media"`
}

// Build assembles the tree and returns its root, or nil when either the
// member list or the relationship list is empty.
//
// Only "parent" and "enfant" edges are structural: a parent edge appends
// the related member under the subject's Parents, a child edge under its
// Children. Every other relationship type is descriptive metadata and is
// ignored here. Edges are directional and never auto-mirrored.
//
// The root is the member with the smallest id. That is a deterministic
// stand-in for a real root heuristic, not a claim about generations.
func Build(members []models.FamilyMember, relationships []models.FamilyRelationship, media []models.FamilyMedia) *Node {
	if len(members) == 0 || len(relationships) == 0 {
		return nil
	}

	nodes := make(map[uint]*Node, len(members))
	for i := range members {
		nodes[members[i].ID] = &Node{
			FamilyMember: members[i],
			Parents:      []*Node{},
			Children:     []*Node{},
			Media:        []models.FamilyMedia{},
		}
	}

	for _, m := range media {
		if owner, ok := nodes[m.FamilyMemberID]; ok {
			owner.Media = append(owner.Media, m)
		}
	}

	for _, rel := range relationships {
		person, ok := nodes[rel.PersonID]
		if !ok {
			continue
		}
		related, ok := nodes[rel.RelatedPersonID]
		if !ok {
			continue
		}
		switch rel.RelationshipType {
		case models.RelationParent:
			person.Parents = append(person.Parents, related)
		case models.RelationChild:
			person.Children = append(person.Children, related)
		}
	}

	var root *Node
	for _, n := range nodes {
		if root == nil || n.ID < root.ID {
			root = n
		}
	}
	return root
}
