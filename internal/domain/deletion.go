package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxDeletionReasonLength bounds the free-text reason on a deletion request.
const MaxDeletionReasonLength = 500

// DeletionRequest records a user's request to erase their account after a
// grace period.
type DeletionRequest struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Reason       string
	Status       DeletionStatus
	RequestedAt  time.Time
	ScheduledFor time.Time
	CompletedAt  *time.Time
}

// IsDue reports whether a pending request should be processed at now.
func (r DeletionRequest) IsDue(now time.Time) bool {
	return r.Status == DeletionStatusPending && !r.ScheduledFor.After(now)
}

// ErasureLogEntry documents the outcome of an account erasure. It is kept
// after the user's own data is gone.
type ErasureLogEntry struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	Status                DeletionStatus
	Reason                string
	DocumentsDeleted      int
	RequiresManualCleanup bool
	Error                 string
	CreatedAt             time.Time
}
