package handler

import (
	"net/http"
	"testing"

	"familytree/backend/internal/database"
	"familytree/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMemberRequiresGrant(t *testing.T) {
	router := setupTest(t)
	_, token := createUser(t, "lucas.martin@example.com", "user")

	input := MemberInput{FirstName: "Paul", LastName: "Martin", Gender: "masculin"}
	w := doRequest(t, router, http.MethodPost, "/api/v1/members", input, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.EqualValues(t, 0, countRows(t, &models.FamilyMember{}))
}

func TestCreateMemberWithGrant(t *testing.T) {
	router := setupTest(t)
	user, token := createUser(t, "lucas.martin@example.com", "user")
	require.NoError(t, database.DB.Model(&user).Update("can_add_members", true).Error)

	input := MemberInput{FirstName: "Paul", LastName: "Martin", BirthDate: "1950-04-12", Gender: "masculin"}
	w := doRequest(t, router, http.MethodPost, "/api/v1/members", input, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp MemberResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "Paul", resp.FirstName)
	assert.False(t, resp.Verified)
	require.NotNil(t, resp.BirthDate)

	var member models.FamilyMember
	require.NoError(t, database.DB.First(&member, resp.ID).Error)
	require.NotNil(t, member.AddedByID)
	assert.Equal(t, user.ID, *member.AddedByID)
}

func TestCreateMemberRejectsBadDate(t *testing.T) {
	router := setupTest(t)
	_, token := createUser(t, "admin@example.com", "admin")

	input := MemberInput{FirstName: "Paul", LastName: "Martin", BirthDate: "12/04/1950"}
	w := doRequest(t, router, http.MethodPost, "/api/v1/members", input, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddAndListMemberMedia(t *testing.T) {
	router := setupTest(t)
	_, token := createUser(t, "lucas.martin@example.com", "user")
	claire := seedMember(t, "Claire", "Martin", models.GenderFemale)

	input := MediaInput{
		MediaType: models.MediaImage,
		MediaURL:  "https://media.example.com/claire.jpg",
		Title:     "Portrait",
		DateTaken: "1975-08-02",
	}
	w := doRequest(t, router, http.MethodPost, "/api/v1/members/1/media", input, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/members/1/media", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var media []models.FamilyMedia
	decodeBody(t, w, &media)
	require.Len(t, media, 1)
	assert.Equal(t, claire.ID, media[0].FamilyMemberID)
	assert.Equal(t, "Portrait", media[0].Title)
	assert.False(t, media[0].Verified)
}

func TestAddMemberMediaRejectsUnknownType(t *testing.T) {
	router := setupTest(t)
	_, token := createUser(t, "lucas.martin@example.com", "user")
	seedMember(t, "Claire", "Martin", models.GenderFemale)

	input := MediaInput{MediaType: "hologram", MediaURL: "https://media.example.com/x"}
	w := doRequest(t, router, http.MethodPost, "/api/v1/members/1/media", input, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMeIncludesFamilyLink(t *testing.T) {
	router := setupTest(t)
	user, token := createUser(t, "lucas.martin@example.com", "user")
	lucas := seedMember(t, "Lucas", "Martin", models.GenderMale)
	require.NoError(t, database.DB.Model(&user).Updates(map[string]interface{}{
		"family_member_id": lucas.ID,
		"can_add_members":  true,
	}).Error)

	w := doRequest(t, router, http.MethodGet, "/api/v1/users/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp PrivateUserResponse
	decodeBody(t, w, &resp)
	assert.True(t, resp.CanAddMembers)
	require.NotNil(t, resp.FamilyMember)
	assert.Equal(t, "Lucas", resp.FamilyMember.FirstName)
}

func TestGetFamilyTreeEndpoint(t *testing.T) {
	router := setupTest(t)
	jean := seedMember(t, "Jean", "Martin", models.GenderMale)
	lucas := seedMember(t, "Lucas", "Martin", models.GenderMale)
	require.NoError(t, database.DB.Create(&models.FamilyRelationship{
		PersonID:         lucas.ID,
		RelatedPersonID:  jean.ID,
		RelationshipType: models.RelationParent,
	}).Error)

	// No token needed: the tree is public behind optional auth.
	w := doRequest(t, router, http.MethodGet, "/api/v1/tree", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var root struct {
		ID      uint `json:"ID"`
		Parents []struct {
			ID uint `json:"ID"`
		} `json:"parents"`
	}
	decodeBody(t, w, &root)
	assert.Equal(t, jean.ID, root.ID)
	assert.Empty(t, root.Parents)
}

func TestGetFamilyTreeEmptyDirectory(t *testing.T) {
	router := setupTest(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/tree", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}
