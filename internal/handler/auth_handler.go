package handler

import (
	"net/http"

	"familytree/backend/internal/database"
	"familytree/backend/internal/directory"
	"familytree/backend/internal/metrics"
	"familytree/backend/internal/models"
	"familytree/backend/internal/notify"
	"familytree/backend/internal/scoring"
	"familytree/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// region --- DTOs ---

// ConnectionInput is the explicitly selected link to an existing member.
type ConnectionInput struct {
	ExistingMemberID uint                    `json:"existing_member_id" binding:"required" example:"3"`
	RelationshipType models.RelationshipType `json:"relationship_type" binding:"required" example:"parent"`
}

// RegisterInput defines the structure for registration with family validation.
type RegisterInput struct {
	Email      string           `json:"email" binding:"required,email" example:"lucas.martin@example.com"`
	Password   string           `json:"password" binding:"required,min=8" example:"password123"`
	FirstName  string           `json:"first_name" binding:"required" example:"Lucas"`
	LastName   string           `json:"last_name" binding:"required" example:"Martin"`
	FatherName string           `json:"father_name" example:"Jean Martin"`
	MotherName string           `json:"mother_name" example:"Claire Martin"`
	Connection *ConnectionInput `json:"connection"`
}

// RegisterResponse reports the registration outcome, echoing the numeric
// score for transparency.
type RegisterResponse struct {
	Token            string   `json:"token"`
	RequestReference string   `json:"request_reference"`
	Status           string   `json:"status" example:"pending"`
	Score            int      `json:"score" example:"70"`
	Reasons          []string `json:"reasons"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"lucas.martin@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// endregion

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register with family validation
// @Description  Creates an account, scores the claimed family connection, and files a validation request. Scores of 50 or more are approved automatically; lower scores await admin review.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  RegisterResponse
// @Failure      400  {object}  ErrorResponse "Missing or invalid connection"
// @Failure      404  {object}  ErrorResponse "Selected member not found"
// @Failure      409  {object}  ErrorResponse "Email already exists"
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// A connection to at least one existing member is mandatory. Checked
	// before any side effect.
	if input.Connection == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "connection required"})
		return
	}
	if !input.Connection.RelationshipType.Known() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown relationship type"})
		return
	}

	var targetMember models.FamilyMember
	if err := database.DB.First(&targetMember, input.Connection.ExistingMemberID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Selected family member not found"})
		return
	}

	var existingUser models.User
	if err := database.DB.Where("email = ?", input.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	members, err := directory.Members(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	connection := &models.FamilyConnection{
		ExistingMemberID: targetMember.ID,
		RelationshipType: input.Connection.RelationshipType,
		MemberName:       targetMember.FullName(),
	}
	result := scoring.Score(input.FatherName, input.MotherName, connection, members)

	status := models.StatusPending
	if scoring.AutoApproved(result.Score) {
		status = models.StatusApproved
	}

	request := models.FamilyRequest{
		Reference:      uuid.NewString(),
		RequesterID:    user.ID,
		RequestType:    models.RequestTypeFamilyValidation,
		TargetMemberID: targetMember.ID,
		Status:         status,
		RequestData: models.RequestData{
			Version: models.RequestDataVersion,
			CandidateInfo: models.CandidateInfo{
				FirstName:  input.FirstName,
				LastName:   input.LastName,
				Email:      input.Email,
				FatherName: input.FatherName,
				MotherName: input.MotherName,
			},
			FamilyConnection:  connection,
			ValidationScore:   result.Score,
			ValidationReasons: result.Reasons,
		},
	}
	if err := database.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	metrics.ObserveScore(result.Score)
	metrics.RequestSubmitted(string(status))
	notify.Default.RequestSubmitted(c.Request.Context(), user.Email, user.Name(), result.Score, status == models.StatusApproved)

	c.JSON(http.StatusCreated, RegisterResponse{
		Token:            token,
		RequestReference: request.Reference,
		Status:           string(status),
		Score:            result.Score,
		Reasons:          result.Reasons,
	})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates a user with email and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Failure      500  {object}  ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// endregion
