package handler

import (
	"net/http"
	"strconv"
	"time"

	"familytree/backend/internal/database"
	"familytree/backend/internal/directory"
	"familytree/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// MemberInput defines the structure for creating or updating a family member.
type MemberInput struct {
	FirstName       string `json:"first_name" binding:"required" example:"Jean"`
	LastName        string `json:"last_name" binding:"required" example:"Martin"`
	BirthDate       string `json:"birth_date" example:"1950-04-12"`
	DeathDate       string `json:"death_date"`
	BirthPlace      string `json:"birth_place" example:"Lyon"`
	CurrentLocation string `json:"current_location"`
	Occupation      string `json:"occupation"`
	PhoneNumber     string `json:"phone_number"`
	Email           string `json:"email"`
	Bio             string `json:"bio"`
	ProfileImageURL string `json:"profile_image_url"`
	Gender          string `json:"gender" example:"masculin"`
}

// MemberResponse defines the structure for a family member.
type MemberResponse struct {
	ID              uint       `json:"id"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	BirthDate       *time.Time `json:"birth_date,omitempty"`
	DeathDate       *time.Time `json:"death_date,omitempty"`
	BirthPlace      string     `json:"birth_place,omitempty"`
	CurrentLocation string     `json:"current_location,omitempty"`
	Occupation      string     `json:"occupation,omitempty"`
	PhoneNumber     string     `json:"phone_number,omitempty"`
	Email           string     `json:"email,omitempty"`
	Bio             string     `json:"bio,omitempty"`
	ProfileImageURL string     `json:"profile_image_url,omitempty"`
	Gender          string     `json:"gender,omitempty"`
	Verified        bool       `json:"verified"`
}

// MediaInput defines the structure for attaching media to a member.
type MediaInput struct {
	MediaType   models.MediaType `json:"media_type" binding:"required" example:"image"`
	MediaURL    string           `json:"media_url" binding:"required" example:"https://media.example.com/photo.jpg"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	DateTaken   string           `json:"date_taken" example:"1975-08-02"`
	Location    string           `json:"location"`
}

// PrivateUserResponse defines the structure for the authenticated user's own profile.
type PrivateUserResponse struct {
	ID             uint            `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	Role           string          `json:"role"`
	CanAddMembers  bool            `json:"can_add_members"`
	FamilyMemberID *uint           `json:"family_member_id,omitempty"`
	FamilyMember   *MemberResponse `json:"family_member,omitempty"`
}

func newMemberResponse(m models.FamilyMember) MemberResponse {
	return MemberResponse{
		ID:              m.ID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		BirthDate:       m.BirthDate,
		DeathDate:       m.DeathDate,
		BirthPlace:      m.BirthPlace,
		CurrentLocation: m.CurrentLocation,
		Occupation:      m.Occupation,
		PhoneNumber:     m.PhoneNumber,
		Email:           m.Email,
		Bio:             m.Bio,
		ProfileImageURL: m.ProfileImageURL,
		Gender:          string(m.Gender),
		Verified:        m.Verified,
	}
}

// endregion

// region --- Member Handlers ---

// SearchMembers godoc
// @Summary      Search for family members
// @Description  Searches members by name with pagination. Used to pick the existing-member connection during registration.
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        q     query     string  false  "Search query for name"
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(10)
// @Success      200   {object}  PaginatedResponse[MemberResponse]
// @Failure      401   {object}  ErrorResponse
// @Router       /members [get]
func SearchMembers(c *gin.Context) {
	searchQuery := c.Query("q")
	page, limit := pageParams(c)

	query := database.DB.Model(&models.FamilyMember{}).Order("id asc")
	if searchQuery != "" {
		query = query.Where("first_name || ' ' || last_name ILIKE ?", "%"+searchQuery+"%")
	}

	result, err := Paginate[models.FamilyMember](query, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve members"})
		return
	}

	responses := make([]MemberResponse, 0, len(result.Data))
	for _, m := range result.Data {
		responses = append(responses, newMemberResponse(m))
	}
	c.JSON(http.StatusOK, PaginatedResponse[MemberResponse]{Data: responses, Meta: result.Meta})
}

// GetMemberByID godoc
// @Summary      Get member by ID
// @Description  Retrieves a single family member with attached media.
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Member ID"
// @Success      200  {object}  MemberResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /members/{id} [get]
func GetMemberByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	var member models.FamilyMember
	if err := database.DB.First(&member, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	c.JSON(http.StatusOK, newMemberResponse(member))
}

// CreateMember godoc
// @Summary      Add a family member
// @Description  Creates a new member. Requires the can_add_members grant (given on approval) or the admin role.
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body MemberInput true "Member Info"
// @Success      201  {object}  MemberResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Adding members not allowed"
// @Router       /members [post]
func CreateMember(c *gin.Context) {
	userID, _ := c.Get("userID")

	var user models.User
	if err := database.DB.First(&user, userID.(uint)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if !user.CanAddMembers && user.Role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Adding members requires an approved family link"})
		return
	}

	var input MemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := memberFromInput(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member.AddedByID = &user.ID

	if err := database.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	directory.Invalidate(c.Request.Context(), directory.MemberChanged)
	c.JSON(http.StatusCreated, newMemberResponse(member))
}

// UpdateMember godoc
// @Summary      Update a family member
// @Description  Updates an existing member's details. Admin only.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Member ID"
// @Param        input body MemberInput true "Member Info"
// @Success      200  {object}  MemberResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Member not found"
// @Router       /admin/members/{id} [put]
func UpdateMember(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	var member models.FamilyMember
	if err := database.DB.First(&member, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	var input MemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := memberFromInput(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated.ID = member.ID
	updated.CreatedAt = member.CreatedAt
	updated.Verified = member.Verified
	updated.AddedByID = member.AddedByID

	if err := database.DB.Save(&updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	directory.Invalidate(c.Request.Context(), directory.MemberChanged)
	c.JSON(http.StatusOK, newMemberResponse(updated))
}

// GetMemberMedia godoc
// @Summary      List a member's media
// @Description  Retrieves all media attached to a member, newest first.
// @Tags         media
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Member ID"
// @Success      200  {array}   models.FamilyMedia
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /members/{id}/media [get]
func GetMemberMedia(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	var member models.FamilyMember
	if err := database.DB.First(&member, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	var media []models.FamilyMedia
	if err := database.DB.Where("family_member_id = ?", member.ID).Order("created_at desc").Find(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch media"})
		return
	}

	c.JSON(http.StatusOK, media)
}

// AddMemberMedia godoc
// @Summary      Attach media to a member
// @Description  Attaches an image, video or document to a member.
// @Tags         media
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Member ID"
// @Param        input body MediaInput true "Media Info"
// @Success      201  {object}  models.FamilyMedia
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Member not found"
// @Router       /members/{id}/media [post]
func AddMemberMedia(c *gin.Context) {
	userID, _ := c.Get("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	var member models.FamilyMember
	if err := database.DB.First(&member, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	var input MediaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch input.MediaType {
	case models.MediaImage, models.MediaVideo, models.MediaDocument:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "media_type must be image, video or document"})
		return
	}

	dateTaken, err := parseDate(input.DateTaken)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID := userID.(uint)
	media := models.FamilyMedia{
		FamilyMemberID: member.ID,
		MediaType:      input.MediaType,
		MediaURL:       input.MediaURL,
		Title:          input.Title,
		Description:    input.Description,
		DateTaken:      dateTaken,
		Location:       input.Location,
		AddedByID:      &ownerID,
	}
	if err := database.DB.Create(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	directory.Invalidate(c.Request.Context(), directory.MediaChanged)
	c.JSON(http.StatusCreated, media)
}

// GetMe godoc
// @Summary      Get current user's profile
// @Description  Retrieves the authenticated user's profile, including the linked family member if approved.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PrivateUserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func GetMe(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var user models.User
	if err := database.DB.Preload("FamilyMember").First(&user, viewerID.(uint)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	response := PrivateUserResponse{
		ID:             user.ID,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email,
		Role:           user.Role,
		CanAddMembers:  user.CanAddMembers,
		FamilyMemberID: user.FamilyMemberID,
	}
	if user.FamilyMember != nil {
		memberResponse := newMemberResponse(*user.FamilyMember)
		response.FamilyMember = &memberResponse
	}
	c.JSON(http.StatusOK, response)
}

// endregion

// region --- Helpers ---

func memberFromInput(input MemberInput) (models.FamilyMember, error) {
	birthDate, err := parseDate(input.BirthDate)
	if err != nil {
		return models.FamilyMember{}, err
	}
	deathDate, err := parseDate(input.DeathDate)
	if err != nil {
		return models.FamilyMember{}, err
	}

	return models.FamilyMember{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		BirthDate:       birthDate,
		DeathDate:       deathDate,
		BirthPlace:      input.BirthPlace,
		CurrentLocation: input.CurrentLocation,
		Occupation:      input.Occupation,
		PhoneNumber:     input.PhoneNumber,
		Email:           input.Email,
		Bio:             input.Bio,
		ProfileImageURL: input.ProfileImageURL,
		Gender:          models.Gender(input.Gender),
	}, nil
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100 // Max limit
	}
	return page, limit
}

// endregion
