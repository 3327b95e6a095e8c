package familytree

import (
	"testing"

	"familytree/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func member(id uint, first, last string) models.FamilyMember {
	m := models.FamilyMember{FirstName: first, LastName: last}
	m.ID = id
	return m
}

func edge(person, related uint, relType models.RelationshipType) models.FamilyRelationship {
	return models.FamilyRelationship{
		PersonID:         person,
		RelatedPersonID:  related,
		RelationshipType: relType,
	}
}

func TestBuildReturnsNilOnEmptyInputs(t *testing.T) {
	members := []models.FamilyMember{member(1, "Jean", "Martin")}
	relationships := []models.FamilyRelationship{edge(1, 2, models.RelationParent)}

	assert.Nil(t, Build(nil, relationships, nil))
	assert.Nil(t, Build(members, nil, nil))
}

func TestBuildParentEdgeIsDirectional(t *testing.T) {
	members := []models.FamilyMember{
		member(1, "Lucas", "Martin"),
		member(2, "Jean", "Martin"),
	}
	relationships := []models.FamilyRelationship{edge(1, 2, models.RelationParent)}

	root := Build(members, relationships, nil)
	require.NotNil(t, root)
	assert.Equal(t, uint(1), root.ID)

	require.Len(t, root.Parents, 1)
	assert.Equal(t, uint(2), root.Parents[0].ID)

	// Edges are not auto-mirrored: the parent knows nothing of the child.
	assert.Empty(t, root.Parents[0].Children)
	assert.Empty(t, root.Children)
}

func TestBuildIgnoresDescriptiveRelationshipTypes(t *testing.T) {
	members := []models.FamilyMember{
		member(1, "Lucas", "Martin"),
		member(2, "Emma", "Martin"),
	}
	relationships := []models.FamilyRelationship{
		edge(1, 2, models.RelationSibling),
		edge(1, 2, models.RelationCousin),
		edge(1, 2, models.RelationUncleAunt),
	}

	root := Build(members, relationships, nil)
	require.NotNil(t, root)
	assert.Empty(t, root.Parents)
	assert.Empty(t, root.Children)
}

func TestBuildChildEdgeAndMediaAttachment(t *testing.T) {
	members := []models.FamilyMember{
		member(1, "Jean", "Martin"),
		member(2, "Lucas", "Martin"),
	}
	relationships := []models.FamilyRelationship{edge(1, 2, models.RelationChild)}
	photo := models.FamilyMedia{FamilyMemberID: 2, MediaType: models.MediaImage, MediaURL: "https://media.example.com/lucas.jpg"}
	media := []models.FamilyMedia{photo}

	root := Build(members, relationships, media)
	require.NotNil(t, root)
	require.Len(t, root.Children, 1)

	child := root.Children[0]
	require.Len(t, child.Media, 1)
	assert.Equal(t, photo.MediaURL, child.Media[0].MediaURL)
	assert.Empty(t, root.Media)
}

func TestBuildRootIsSmallestID(t *testing.T) {
	members := []models.FamilyMember{
		member(7, "Emma", "Martin"),
		member(3, "Jean", "Martin"),
		member(9, "Lucas", "Martin"),
	}
	relationships := []models.FamilyRelationship{edge(7, 3, models.RelationParent)}

	root := Build(members, relationships, nil)
	require.NotNil(t, root)
	assert.Equal(t, uint(3), root.ID)
}

func TestBuildSkipsEdgesToUnknownMembers(t *testing.T) {
	members := []models.FamilyMember{member(1, "Jean", "Martin")}
	relationships := []models.FamilyRelationship{
		edge(1, 99, models.RelationParent),
		edge(99, 1, models.RelationChild),
	}

	root := Build(members, relationships, nil)
	require.NotNil(t, root)
	assert.Empty(t, root.Parents)
	assert.Empty(t, root.Children)
}
