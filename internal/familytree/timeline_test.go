package familytree

import (
	"testing"
	"time"

	"familytree/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestTimelineOrdersEventsOldestFirst(t *testing.T) {
	jean := member(1, "Jean", "Martin")
	jean.BirthDate = date(1950, 4, 12)
	jean.DeathDate = date(2020, 1, 3)

	lucas := member(2, "Lucas", "Martin")
	lucas.BirthDate = date(1985, 7, 1)

	media := []models.FamilyMedia{
		{FamilyMemberID: 1, MediaType: models.MediaImage, MediaURL: "https://media.example.com/old.jpg", Title: "Mariage", DateTaken: date(1975, 8, 2)},
	}

	events := Timeline([]models.FamilyMember{jean, lucas}, media)
	require.Len(t, events, 4)

	assert.Equal(t, EventBirth, events[0].Type)
	assert.Equal(t, "Naissance de Jean Martin", events[0].Description)
	assert.Equal(t, EventMedia, events[1].Type)
	assert.Equal(t, "Mariage", events[1].Description)
	assert.Equal(t, EventBirth, events[2].Type)
	assert.Equal(t, "Naissance de Lucas Martin", events[2].Description)
	assert.Equal(t, EventDeath, events[3].Type)
	assert.Equal(t, "Décès de Jean Martin", events[3].Description)
}

func TestTimelineSkipsUndatedAndOrphanedItems(t *testing.T) {
	jean := member(1, "Jean", "Martin")

	media := []models.FamilyMedia{
		{FamilyMemberID: 1, MediaURL: "https://media.example.com/undated.jpg"},
		{FamilyMemberID: 42, MediaURL: "https://media.example.com/orphan.jpg", DateTaken: date(2000, 1, 1)},
	}

	events := Timeline([]models.FamilyMember{jean}, media)
	assert.Empty(t, events)
}
