package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, input user.CreateProfileInput) (*domain.UserProfile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input user.UpdateProfileInput) (*domain.UserProfile, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) (int, error)
}

// UserHandler serves account and profile endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type createAccountRequest struct {
	Email       string  `json:"email"`
	DisplayName string  `json:"displayName"`
	PhotoURL    *string `json:"photoURL"`
}

type notificationsRequest struct {
	Push      *bool `json:"push"`
	Email     *bool `json:"email"`
	Reminders *bool `json:"reminders"`
}

type preferencesRequest struct {
	Theme         *domain.Theme         `json:"theme"`
	Notifications *notificationsRequest `json:"notifications"`
}

type updateProfileRequest struct {
	DisplayName *string             `json:"displayName"`
	PhotoURL    *string             `json:"photoURL"`
	Preferences *preferencesRequest `json:"preferences"`
}

type profileResponse struct {
	UID          string               `json:"uid"`
	Email        string               `json:"email"`
	DisplayName  string               `json:"displayName"`
	PhotoURL     *string              `json:"photoURL,omitempty"`
	Preferences  preferencesResponse  `json:"preferences"`
	Subscription subscriptionResponse `json:"subscription"`
	Stats        statsResponse        `json:"stats"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

type preferencesResponse struct {
	Theme         string `json:"theme"`
	Notifications struct {
		Push      bool `json:"push"`
		Email     bool `json:"email"`
		Reminders bool `json:"reminders"`
	} `json:"notifications"`
	Privacy struct {
		DataCollection bool `json:"dataCollection"`
		AIProcessing   bool `json:"aiProcessing"`
		Analytics      bool `json:"analytics"`
	} `json:"privacy"`
}

type subscriptionResponse struct {
	Tier     string   `json:"tier"`
	Features []string `json:"features"`
}

type statsResponse struct {
	TotalRelationships int       `json:"totalRelationships"`
	TotalInteractions  int       `json:"totalInteractions"`
	LastActiveAt       time.Time `json:"lastActiveAt"`
}

type deleteAccountResponse struct {
	Success          bool `json:"success"`
	DocumentsDeleted int  `json:"documentsDeleted"`
}

// CreateAccount handles POST /v1/users/{userID}/account.
func (h *UserHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req createAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	p, err := h.svc.CreateProfile(r.Context(), userID, user.CreateProfileInput{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProfileResponse(p))
}

// GetProfile handles GET /v1/users/{userID}/profile.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	p, err := h.svc.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// UpdateProfile handles PATCH /v1/users/{userID}/profile.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	p, err := h.svc.UpdateProfile(r.Context(), userID, req.toInput())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// DeleteAccount handles DELETE /v1/users/{userID}/account.
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	n, err := h.svc.DeleteAccount(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteAccountResponse{Success: true, DocumentsDeleted: n})
}

func (req updateProfileRequest) toInput() user.UpdateProfileInput {
	in := user.UpdateProfileInput{
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	}
	if req.Preferences != nil {
		in.Preferences = &user.PreferencesInput{Theme: req.Preferences.Theme}
		if n := req.Preferences.Notifications; n != nil {
			in.Preferences.Notifications = &user.NotificationsInput{
				Push:      n.Push,
				Email:     n.Email,
				Reminders: n.Reminders,
			}
		}
	}
	return in
}

func toProfileResponse(p *domain.UserProfile) profileResponse {
	resp := profileResponse{
		UID:         p.UID.String(),
		Email:       p.Email,
		DisplayName: p.DisplayName,
		PhotoURL:    p.PhotoURL,
		Subscription: subscriptionResponse{
			Tier:     string(p.Subscription.Tier),
			Features: p.Subscription.Features,
		},
		Stats: statsResponse{
			TotalRelationships: p.Stats.TotalRelationships,
			TotalInteractions:  p.Stats.TotalInteractions,
			LastActiveAt:       p.Stats.LastActiveAt,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if resp.Subscription.Features == nil {
		resp.Subscription.Features = []string{}
	}

	prefs := p.Preferences
	resp.Preferences.Theme = string(prefs.Theme)
	resp.Preferences.Notifications.Push = prefs.Notifications.Push
	resp.Preferences.Notifications.Email = prefs.Notifications.Email
	resp.Preferences.Notifications.Reminders = prefs.Notifications.Reminders
	resp.Preferences.Privacy.DataCollection = prefs.Privacy.DataCollection
	resp.Preferences.Privacy.AIProcessing = prefs.Privacy.AIProcessing
	resp.Preferences.Privacy.Analytics = prefs.Privacy.Analytics
	return resp
}
