package scoring

import (
	"testing"

	"familytree/backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func member(id uint, first, last string, gender models.Gender) models.FamilyMember {
	m := models.FamilyMember{
		FirstName: first,
		LastName:  last,
		Gender:    gender,
	}
	m.ID = id
	return m
}

// directory fixtures are always ordered by ascending id, as the directory
// package guarantees.
func testDirectory() []models.FamilyMember {
	return []models.FamilyMember{
		member(1, "Jean", "Martin", models.GenderMale),
		member(2, "Claire", "Martin", models.GenderFemale),
		member(3, "Pierre", "Dubois", models.GenderMale),
		member(4, "Marie", "Dubois", models.GenderFemale),
	}
}

func connectionTo(id uint, name string, rel models.RelationshipType) *models.FamilyConnection {
	return &models.FamilyConnection{
		ExistingMemberID: id,
		RelationshipType: rel,
		MemberName:       name,
	}
}

func TestScoreBlankNamesContributeNothing(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		result := Score(name, name, nil, testDirectory())
		assert.Equal(t, 0, result.Score)
		assert.Empty(t, result.Reasons)
	}
}

func TestScoreGenderGatingHolds(t *testing.T) {
	// "Claire Martin" exists but is female; as a father name it must not score.
	result := Score("Claire Martin", "", nil, testDirectory())
	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Reasons)

	// Symmetric: "Jean Martin" is male; as a mother name it must not score.
	result = Score("", "Jean Martin", nil, testDirectory())
	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Reasons)
}

func TestScoreAllChecksSumTo100(t *testing.T) {
	conn := connectionTo(3, "Pierre Dubois", models.RelationChild)
	result := Score("Jean Martin", "Claire Martin", conn, testDirectory())

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, []string{
		"Père trouvé: Jean Martin",
		"Mère trouvée: Claire Martin",
		"Connexion avec Pierre Dubois (enfant)",
	}, result.Reasons)
}

func TestScoreSubstringMatchTolerantOfPartialNames(t *testing.T) {
	result := Score("jean", "", nil, testDirectory())
	assert.Equal(t, FatherMatchPoints, result.Score)
	assert.Equal(t, []string{"Père trouvé: Jean Martin"}, result.Reasons)
}

func TestScoreTieBreaksToSmallestID(t *testing.T) {
	directory := []models.FamilyMember{
		member(2, "Paul", "Martin", models.GenderMale),
		member(5, "Jean", "Martin", models.GenderMale),
	}
	result := Score("Martin", "", nil, directory)
	assert.Equal(t, FatherMatchPoints, result.Score)
	assert.Equal(t, []string{"Père trouvé: Paul Martin"}, result.Reasons)
}

func TestScoreConnectionOnly(t *testing.T) {
	conn := connectionTo(2, "Claire Martin", models.RelationParent)
	result := Score("", "", conn, testDirectory())
	assert.Equal(t, ConnectionPoints, result.Score)
	assert.Equal(t, []string{"Connexion avec Claire Martin (parent)"}, result.Reasons)
}

func TestAutoApprovedBoundary(t *testing.T) {
	assert.False(t, AutoApproved(49))
	assert.True(t, AutoApproved(50))
	assert.True(t, AutoApproved(100))
	assert.False(t, AutoApproved(0))
}

// End-to-end scenario: Lucas registers naming a father the
// directory knows, no mother, and an explicit connection.
func TestScoreLucasMartinScenario(t *testing.T) {
	conn := connectionTo(2, "Claire Martin", models.RelationParent)
	result := Score("Jean Martin", "", conn, testDirectory())

	assert.Equal(t, 70, result.Score)
	assert.Equal(t, []string{
		"Père trouvé: Jean Martin",
		"Connexion avec Claire Martin (parent)",
	}, result.Reasons)
	assert.True(t, AutoApproved(result.Score))
}
