// Package scoring computes the confidence score for a claimed family
// connection at registration time. It is a cheap triage heuristic, not an
// identity check: three independent, additive signals over an in-memory
// snapshot of the member directory.
package scoring

import (
	"fmt"
	"strings"

	"familytree/backend/internal/models"
)

const (
	// Points per signal. All applicable signals contribute; the maximum
	// attainable score is 100.
	FatherMatchPoints = 30
	MotherMatchPoints = 30
	ConnectionPoints  = 40

	// AutoApproveThreshold is the sole approval cutoff: scores at or
	// above it auto-approve, everything below requires manual review.
	// This is a fixed policy constant, not configurable per request.
	AutoApproveThreshold = 50
)

// Result is the outcome of scoring one registration.
type Result struct {
	Score   int
	Reasons []string
}

// AutoApproved reports whether a score clears the approval cutoff.
// The boundary is inclusive: 50 approves, 49 does not.
func AutoApproved(score int) bool {
	return score >= AutoApproveThreshold
}

// Score evaluates a kinship claim against the member directory.
//
// The parent-name checks are case-insensitive substring matches against
// each member's "first last" full name, gated on the member's gender tag
// so a same-named member of the wrong sex cannot inflate confidence.
// Blank or whitespace-only names contribute nothing. The members slice
// must be ordered by ascending id: when several members match, the first
// (lowest id) wins, which keeps the choice deterministic.
func Score(fatherName, motherName string, connection *models.FamilyConnection, members []models.FamilyMember) Result {
	var res Result

	if father := matchParent(fatherName, models.GenderMale, members); father != nil {
		res.Score += FatherMatchPoints
		res.Reasons = append(res.Reasons, fmt.Sprintf("Père trouvé: %s", father.FullName()))
	}

	if mother := matchParent(motherName, models.GenderFemale, members); mother != nil {
		res.Score += MotherMatchPoints
		res.Reasons = append(res.Reasons, fmt.Sprintf("Mère trouvée: %s", mother.FullName()))
	}

	if connection != nil {
		res.Score += ConnectionPoints
		res.Reasons = append(res.Reasons, fmt.Sprintf("Connexion avec %s (%s)", connection.MemberName, connection.RelationshipType))
	}

	return res
}

func matchParent(name string, gender models.Gender, members []models.FamilyMember) *models.FamilyMember {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	needle := strings.ToLower(name)
	for i := range members {
		if members[i].Gender != gender {
			continue
		}
		if strings.Contains(strings.ToLower(members[i].FullName()), needle) {
			return &members[i]
		}
	}
	return nil
}
