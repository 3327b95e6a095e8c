package familytree

import (
	"fmt"
	"sort"
	"time"

	"familytree/backend/internal/models"
)

// EventType classifies a timeline entry.
type EventType string

const (
	EventBirth EventType = "birth"
	EventDeath EventType = "death"
	EventMedia EventType = "media"
)

// Event is one chronological entry in the family timeline.
type Event struct {
	Type        EventType           `json:"type"`
	Date        time.Time           `json:"date"`
	MemberID    uint                `json:"member_id"`
	MemberName  string              `json:"member_name"`
	Description string              `json:"description"`
	Media       *models.FamilyMedia `json:"media,omitempty"`
}

// Timeline flattens members and media into a chronological event list:
// one birth event per member with a birth date, one death event per death
// date, one media event per dated media item. Undated items are skipped.
// Events are sorted oldest first; ties keep a stable order.
func Timeline(members []models.FamilyMember, media []models.FamilyMedia) []Event {
	byID := make(map[uint]models.FamilyMember, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	var events []Event
	for _, m := range members {
		if m.BirthDate != nil {
			events = append(events, Event{
				Type:        EventBirth,
				Date:        *m.BirthDate,
				MemberID:    m.ID,
				MemberName:  m.FullName(),
				Description: fmt.Sprintf("Naissance de %s", m.FullName()),
			})
		}
		if m.DeathDate != nil {
			events = append(events, Event{
				Type:        EventDeath,
				Date:        *m.DeathDate,
				MemberID:    m.ID,
				MemberName:  m.FullName(),
				Description: fmt.Sprintf("Décès de %s", m.FullName()),
			})
		}
	}

	for i := range media {
		item := media[i]
		if item.DateTaken == nil {
			continue
		}
		owner, ok := byID[item.FamilyMemberID]
		if !ok {
			continue
		}
		description := item.Title
		if description == "" {
			description = fmt.Sprintf("Souvenir de %s", owner.FullName())
		}
		events = append(events, Event{
			Type:        EventMedia,
			Date:        *item.DateTaken,
			MemberID:    owner.ID,
			MemberName:  owner.FullName(),
			Description: description,
			Media:       &item,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events
}
