// Package notify is the user-facing notification sink. Notifications are
// fire-and-forget announcements: they are never awaited for correctness
// and a failed send never fails the operation that triggered it.
package notify

import (
	"context"
	"log"

	"familytree/backend/internal/models"
)

// Notifier announces workflow outcomes to a requester.
type Notifier interface {
	// RequestSubmitted announces the result of a registration: either
	// automatic approval or a pending manual review, echoing the score.
	RequestSubmitted(ctx context.Context, email, name string, score int, autoApproved bool)

	// RequestReviewed announces an admin decision on a pending request.
	RequestReviewed(ctx context.Context, email, name string, status models.RequestStatus, comment string)
}

// Default is the process-wide notifier. main replaces it with the SES
// implementation when email is configured.
var Default Notifier = LogNotifier{}

// LogNotifier writes notifications to the process log. It is the fallback
// when no email sink is configured, and keeps tests quiet and offline.
type LogNotifier struct{}

func (LogNotifier) RequestSubmitted(_ context.Context, email, name string, score int, autoApproved bool) {
	if autoApproved {
		log.Printf("notify %s <%s>: request auto-approved (score %d/100)", name, email, score)
		return
	}
	log.Printf("notify %s <%s>: request pending review (score %d/100)", name, email, score)
}

func (LogNotifier) RequestReviewed(_ context.Context, email, name string, status models.RequestStatus, comment string) {
	log.Printf("notify %s <%s>: request %s (comment: %q)", name, email, status, comment)
}
