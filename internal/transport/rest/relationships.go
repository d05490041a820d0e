package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/internal/service/relationship"
)

type relationshipService interface {
	CreateRelationship(ctx context.Context, input relationship.CreateRelationshipInput) (*domain.Relationship, error)
	ListRelationships(ctx context.Context, limit int) ([]domain.Relationship, error)
	DeleteRelationship(ctx context.Context, id uuid.UUID) error
	LogInteraction(ctx context.Context, relationshipID uuid.UUID, input relationship.LogInteractionInput) (*domain.Interaction, error)
	ListInteractions(ctx context.Context, relationshipID uuid.UUID, limit int) ([]domain.Interaction, error)
}

// RelationshipHandler serves relationship and interaction endpoints.
type RelationshipHandler struct {
	svc relationshipService
	log *slog.Logger
}

// NewRelationshipHandler creates a RelationshipHandler.
func NewRelationshipHandler(svc relationshipService, logger *slog.Logger) *RelationshipHandler {
	return &RelationshipHandler{svc: svc, log: logger.With("handler", "relationship")}
}

type createRelationshipRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Notes string `json:"notes"`
}

type logInteractionRequest struct {
	Type       string     `json:"type"`
	Notes      string     `json:"notes"`
	OccurredAt *time.Time `json:"occurredAt"`
}

type relationshipResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type interactionResponse struct {
	ID             string    `json:"id"`
	RelationshipID string    `json:"relationshipId"`
	Type           string    `json:"type"`
	Notes          string    `json:"notes,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Create handles POST /v1/relationships.
func (h *RelationshipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRelationshipRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	rel, err := h.svc.CreateRelationship(r.Context(), relationship.CreateRelationshipInput{
		Name:  req.Name,
		Type:  domain.RelationshipType(req.Type),
		Notes: req.Notes,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRelationshipResponse(*rel))
}

// List handles GET /v1/relationships?limit=.
func (h *RelationshipHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	rels, err := h.svc.ListRelationships(r.Context(), limit)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := make([]relationshipResponse, len(rels))
	for i, rel := range rels {
		out[i] = toRelationshipResponse(rel)
	}
	writeJSON(w, http.StatusOK, map[string]any{"relationships": out})
}

// Delete handles DELETE /v1/relationships/{id}.
func (h *RelationshipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteRelationship(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// LogInteraction handles POST /v1/relationships/{id}/interactions.
func (h *RelationshipHandler) LogInteraction(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req logInteractionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	in, err := h.svc.LogInteraction(r.Context(), id, relationship.LogInteractionInput{
		Type:       domain.InteractionType(req.Type),
		Notes:      req.Notes,
		OccurredAt: req.OccurredAt,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toInteractionResponse(*in))
}

// ListInteractions handles GET /v1/relationships/{id}/interactions?limit=.
func (h *RelationshipHandler) ListInteractions(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	ins, err := h.svc.ListInteractions(r.Context(), id, limit)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := make([]interactionResponse, len(ins))
	for i, in := range ins {
		out[i] = toInteractionResponse(in)
	}
	writeJSON(w, http.StatusOK, map[string]any{"interactions": out})
}

func toRelationshipResponse(rel domain.Relationship) relationshipResponse {
	return relationshipResponse{
		ID:        rel.ID.String(),
		Name:      rel.Name,
		Type:      string(rel.Type),
		Notes:     rel.Notes,
		CreatedAt: rel.CreatedAt,
		UpdatedAt: rel.UpdatedAt,
	}
}

func toInteractionResponse(in domain.Interaction) interactionResponse {
	return interactionResponse{
		ID:             in.ID.String(),
		RelationshipID: in.RelationshipID.String(),
		Type:           string(in.Type),
		Notes:          in.Notes,
		OccurredAt:     in.OccurredAt,
		CreatedAt:      in.CreatedAt,
	}
}
