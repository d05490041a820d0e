package domain

import (
	"time"

	"github.com/google/uuid"
)

// Relationship is a person the user tracks.
type Relationship struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      RelationshipType
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interaction is a single logged contact with a relationship.
type Interaction struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	RelationshipID uuid.UUID
	Type           InteractionType
	Notes          string
	OccurredAt     time.Time
	CreatedAt      time.Time
}
