package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/config"
	"github.com/heartmarshall/ecomind-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health        *HealthHandler
	Users         *UserHandler
	Privacy       *PrivacyHandler
	AI            *AIHandler
	Relationships *RelationshipHandler
}

// TokenValidator resolves a bearer token to the caller's user id.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps are the cross-cutting dependencies of the middleware stack.
type RouterDeps struct {
	Logger    *slog.Logger
	CORS      config.CORSConfig
	Validator TokenValidator
	Limiter   middleware.Limiter
}

// NewRouter mounts all routes. Probes are served without middleware. The
// API stack runs Recovery, RequestID, Logger, CORS, ClientInfo and Auth in
// that order. Auth reports the caller back to Logger, so access lines carry
// user_id. AI routes are additionally rate limited per user.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("POST /v1/users/{userID}/account", h.Users.CreateAccount)
	api.HandleFunc("DELETE /v1/users/{userID}/account", h.Users.DeleteAccount)
	api.HandleFunc("GET /v1/users/{userID}/profile", h.Users.GetProfile)
	api.HandleFunc("PATCH /v1/users/{userID}/profile", h.Users.UpdateProfile)

	api.HandleFunc("GET /v1/users/{userID}/privacy", h.Privacy.GetSettings)
	api.HandleFunc("PATCH /v1/users/{userID}/privacy", h.Privacy.UpdateSettings)
	api.HandleFunc("POST /v1/users/{userID}/privacy/deletion-request", h.Privacy.RequestDeletion)
	api.HandleFunc("GET /v1/users/{userID}/privacy/export", h.Privacy.Export)

	limited := middleware.Stack{middleware.RateLimit(deps.Limiter, deps.Logger)}
	api.Handle("POST /v1/ai/context", limited.ThenFunc(h.AI.ExtractContext))
	api.Handle("POST /v1/ai/sentiment", limited.ThenFunc(h.AI.AnalyzeSentiment))
	api.Handle("POST /v1/ai/insights", limited.ThenFunc(h.AI.GenerateInsights))
	api.Handle("POST /v1/ai/embedding", limited.ThenFunc(h.AI.GenerateEmbedding))
	api.Handle("POST /v1/ai/embeddings", limited.ThenFunc(h.AI.GenerateBatchEmbeddings))

	api.HandleFunc("POST /v1/relationships", h.Relationships.Create)
	api.HandleFunc("GET /v1/relationships", h.Relationships.List)
	api.HandleFunc("DELETE /v1/relationships/{id}", h.Relationships.Delete)
	api.HandleFunc("POST /v1/relationships/{id}/interactions", h.Relationships.LogInteraction)
	api.HandleFunc("GET /v1/relationships/{id}/interactions", h.Relationships.ListInteractions)

	stack := middleware.Stack{
		middleware.Recovery(deps.Logger),
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
		middleware.ClientInfo,
		middleware.Auth(deps.Validator),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("/v1/", stack.Then(api))
	return mux
}
