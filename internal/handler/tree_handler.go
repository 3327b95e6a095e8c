package handler

import (
	"net/http"

	"familytree/backend/internal/directory"
	"familytree/backend/internal/familytree"

	"github.com/gin-gonic/gin"
)

// GetFamilyTree godoc
// @Summary      Get the family tree
// @Description  Builds the parent/child tree from the member directory with media attached. Returns null when there are no members or no relationships yet.
// @Tags         tree
// @Produce      json
// @Success      200  {object}  familytree.Node
// @Failure      500  {object}  ErrorResponse
// @Router       /tree [get]
func GetFamilyTree(c *gin.Context) {
	ctx := c.Request.Context()

	members, err := directory.Members(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}
	relationships, err := directory.Relationships(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch relationships"})
		return
	}
	media, err := directory.Media(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch media"})
		return
	}

	c.JSON(http.StatusOK, familytree.Build(members, relationships, media))
}

// GetTimeline godoc
// @Summary      Get the family timeline
// @Description  Returns births, deaths and dated media as a chronological event list, oldest first.
// @Tags         tree
// @Produce      json
// @Success      200  {array}   familytree.Event
// @Failure      500  {object}  ErrorResponse
// @Router       /timeline [get]
func GetTimeline(c *gin.Context) {
	ctx := c.Request.Context()

	members, err := directory.Members(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}
	media, err := directory.Media(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch media"})
		return
	}

	c.JSON(http.StatusOK, familytree.Timeline(members, media))
}
