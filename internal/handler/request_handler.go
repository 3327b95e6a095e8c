package handler

import (
	"net/http"
	"strconv"
	"time"

	"familytree/backend/internal/database"
	"familytree/backend/internal/directory"
	"familytree/backend/internal/metrics"
	"familytree/backend/internal/models"
	"familytree/backend/internal/notify"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

// DecisionInput carries an optional review comment with a decision.
type DecisionInput struct {
	Comment string `json:"comment" example:"incomplete info"`
}

// RequestResponse defines the structure for a family request in admin listings.
type RequestResponse struct {
	ID            uint               `json:"id"`
	Reference     string             `json:"reference"`
	CreatedAt     time.Time          `json:"created_at"`
	RequesterID   uint               `json:"requester_id"`
	RequestType   string             `json:"request_type"`
	Status        string             `json:"status"`
	RequestData   models.RequestData `json:"request_data"`
	ReviewComment *string            `json:"review_comment,omitempty"`
	ReviewedAt    *time.Time         `json:"reviewed_at,omitempty"`
	ReviewedByID  *uint              `json:"reviewed_by,omitempty"`
}

func newRequestResponse(r models.FamilyRequest) RequestResponse {
	return RequestResponse{
		ID:            r.ID,
		Reference:     r.Reference,
		CreatedAt:     r.CreatedAt,
		RequesterID:   r.RequesterID,
		RequestType:   r.RequestType,
		Status:        string(r.Status),
		RequestData:   r.RequestData,
		ReviewComment: r.ReviewComment,
		ReviewedAt:    r.ReviewedAt,
		ReviewedByID:  r.ReviewedByID,
	}
}

// endregion

// region --- Admin Review Handlers ---

// ListRequests godoc
// @Summary      List family requests
// @Description  Retrieves family validation requests, newest first, optionally filtered by status.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status query     string  false  "Filter by status (pending, approved, rejected)"
// @Param        page   query     int     false  "Page number" default(1)
// @Param        limit  query     int     false  "Items per page" default(10)
// @Success      200    {object}  PaginatedResponse[RequestResponse]
// @Failure      403    {object}  ErrorResponse "Admin access required"
// @Router       /admin/requests [get]
func ListRequests(c *gin.Context) {
	page, limit := pageParams(c)

	query := database.DB.Model(&models.FamilyRequest{}).Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	result, err := Paginate[models.FamilyRequest](query, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}

	responses := make([]RequestResponse, 0, len(result.Data))
	for _, r := range result.Data {
		responses = append(responses, newRequestResponse(r))
	}
	c.JSON(http.StatusOK, PaginatedResponse[RequestResponse]{Data: responses, Meta: result.Meta})
}

// ApproveRequest godoc
// @Summary      Approve a family request
// @Description  Approves a pending request: marks it approved, creates the verified member and its relationship edge, and grants the requester the right to add members. All effects run in one transaction; on failure the request stays pending.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true   "Request ID"
// @Param        input body      DecisionInput  false  "Optional review comment"
// @Success      200  {object}  RequestResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Failure      409  {object}  ErrorResponse "Request already reviewed"
// @Router       /admin/requests/{id}/approve [post]
func ApproveRequest(c *gin.Context) {
	decideRequest(c, models.StatusApproved)
}

// RejectRequest godoc
// @Summary      Reject a family request
// @Description  Rejects a pending request, storing the comment verbatim. No member or relationship is created.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true   "Request ID"
// @Param        input body      DecisionInput  false  "Optional review comment"
// @Success      200  {object}  RequestResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Failure      409  {object}  ErrorResponse "Request already reviewed"
// @Router       /admin/requests/{id}/reject [post]
func RejectRequest(c *gin.Context) {
	decideRequest(c, models.StatusRejected)
}

// decideRequest applies an admin decision to a pending request.
//
// The pending precondition is enforced inside the transaction, so a
// double-click or two admins racing on the same request leaves exactly one
// winner; the loser gets a conflict instead of duplicating the member.
func decideRequest(c *gin.Context, decision models.RequestStatus) {
	reviewerID, _ := c.Get("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	var input DecisionInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	var request models.FamilyRequest
	if err := database.DB.First(&request, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}
	if request.Status != models.StatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": models.ErrAlreadyReviewed.Error()})
		return
	}

	now := time.Now()
	reviewer := reviewerID.(uint)

	var comment *string
	if input.Comment != "" {
		comment = &input.Comment
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// Guarded update: matches zero rows if another reviewer got here
		// first, which fails the whole decision.
		res := tx.Model(&models.FamilyRequest{}).
			Where("id = ? AND status = ?", request.ID, models.StatusPending).
			Updates(map[string]interface{}{
				"status":         decision,
				"review_comment": comment,
				"reviewed_at":    now,
				"reviewed_by_id": reviewer,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrAlreadyReviewed
		}

		if decision != models.StatusApproved {
			return nil
		}

		candidate := request.RequestData.CandidateInfo
		newMember := models.FamilyMember{
			FirstName: candidate.FirstName,
			LastName:  candidate.LastName,
			Email:     candidate.Email,
			Verified:  true,
			AddedByID: &request.RequesterID,
		}
		if err := tx.Create(&newMember).Error; err != nil {
			return err
		}

		if connection := request.RequestData.FamilyConnection; connection != nil {
			relationship := models.FamilyRelationship{
				PersonID:         newMember.ID,
				RelatedPersonID:  connection.ExistingMemberID,
				RelationshipType: connection.RelationshipType,
				AddedByID:        &request.RequesterID,
			}
			if err := tx.Create(&relationship).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.User{}).
			Where("id = ?", request.RequesterID).
			Updates(map[string]interface{}{
				"family_member_id": newMember.ID,
				"can_add_members":  true,
			}).Error
	})
	if err != nil {
		if err == models.ErrAlreadyReviewed {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if decision == models.StatusApproved {
		directory.Invalidate(c.Request.Context(), directory.MemberChanged, directory.RelationshipChanged)
		metrics.ReviewDecided("approve")
	} else {
		metrics.ReviewDecided("reject")
	}

	database.DB.First(&request, request.ID)

	candidate := request.RequestData.CandidateInfo
	notify.Default.RequestReviewed(c.Request.Context(), candidate.Email, candidate.FirstName+" "+candidate.LastName, decision, input.Comment)

	c.JSON(http.StatusOK, newRequestResponse(request))
}

// endregion
