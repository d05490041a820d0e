package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/internal/service/privacy"
)

type privacyService interface {
	GetPrivacySettings(ctx context.Context, userID uuid.UUID) (*privacy.SettingsResult, error)
	UpdatePrivacySettings(ctx context.Context, userID uuid.UUID, patch domain.PrivacySettingsPatch) (*privacy.SettingsResult, error)
	RequestDataDeletion(ctx context.Context, userID uuid.UUID, reason string) (*domain.DeletionRequest, error)
	ExportUserData(ctx context.Context, userID uuid.UUID, format domain.ExportFormat) (*privacy.Export, error)
}

// PrivacyHandler serves consent, deletion request and export endpoints.
type PrivacyHandler struct {
	svc privacyService
	log *slog.Logger
}

// NewPrivacyHandler creates a PrivacyHandler.
func NewPrivacyHandler(svc privacyService, logger *slog.Logger) *PrivacyHandler {
	return &PrivacyHandler{svc: svc, log: logger.With("handler", "privacy")}
}

type privacyPatchRequest struct {
	DataCollection *bool `json:"dataCollection"`
	AIProcessing   *bool `json:"aiProcessing"`
	Analytics      *bool `json:"analytics"`
	CrashReporting *bool `json:"crashReporting"`
	Marketing      *bool `json:"marketing"`

	// Server-stamped on every update. Accepted so clients may echo a full
	// settings object back, then discarded.
	ConsentVersion json.RawMessage `json:"consentVersion"`
	LastUpdated    json.RawMessage `json:"lastUpdated"`
}

type privacySettingsResponse struct {
	DataCollection bool      `json:"dataCollection"`
	AIProcessing   bool      `json:"aiProcessing"`
	Analytics      bool      `json:"analytics"`
	CrashReporting bool      `json:"crashReporting"`
	Marketing      bool      `json:"marketing"`
	LastUpdated    time.Time `json:"lastUpdated"`
	ConsentVersion string    `json:"consentVersion"`
	ConsentCurrent bool      `json:"consentCurrent"`
}

type deletionRequestBody struct {
	Reason string `json:"reason"`
}

type deletionResponse struct {
	RequestID    string    `json:"requestId"`
	Status       string    `json:"status"`
	RequestedAt  time.Time `json:"requestedAt"`
	ScheduledFor time.Time `json:"scheduledFor"`
}

// GetSettings handles GET /v1/users/{userID}/privacy.
func (h *PrivacyHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.svc.GetPrivacySettings(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPrivacyResponse(res))
}

// UpdateSettings handles PATCH /v1/users/{userID}/privacy. lastUpdated and
// consentVersion in the body are ignored; the service stamps both.
func (h *PrivacyHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req privacyPatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.svc.UpdatePrivacySettings(r.Context(), userID, domain.PrivacySettingsPatch{
		DataCollection: req.DataCollection,
		AIProcessing:   req.AIProcessing,
		Analytics:      req.Analytics,
		CrashReporting: req.CrashReporting,
		Marketing:      req.Marketing,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPrivacyResponse(res))
}

// RequestDeletion handles POST /v1/users/{userID}/privacy/deletion-request.
func (h *PrivacyHandler) RequestDeletion(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req deletionRequestBody
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	dr, err := h.svc.RequestDataDeletion(r.Context(), userID, req.Reason)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusAccepted, deletionResponse{
		RequestID:    dr.ID.String(),
		Status:       string(dr.Status),
		RequestedAt:  dr.RequestedAt,
		ScheduledFor: dr.ScheduledFor,
	})
}

// Export handles GET /v1/users/{userID}/privacy/export?format=json|yaml.
func (h *PrivacyHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	format := domain.ExportFormat(r.URL.Query().Get("format"))
	exp, err := h.svc.ExportUserData(r.Context(), userID, format)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", exp.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exp.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(exp.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(exp.Data) //nolint:errcheck
}

func toPrivacyResponse(res *privacy.SettingsResult) privacySettingsResponse {
	s := res.Settings
	return privacySettingsResponse{
		DataCollection: s.DataCollection,
		AIProcessing:   s.AIProcessing,
		Analytics:      s.Analytics,
		CrashReporting: s.CrashReporting,
		Marketing:      s.Marketing,
		LastUpdated:    s.LastUpdated,
		ConsentVersion: s.ConsentVersion,
		ConsentCurrent: res.ConsentCurrent,
	}
}
