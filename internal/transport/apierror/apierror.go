// Package apierror maps domain errors to HTTP status codes and writes the
// JSON error envelope shared by handlers and middleware.
package apierror

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/pkg/ctxutil"
)

// Machine-readable error kinds.
const (
	CodeUnauthenticated    = "unauthenticated"
	CodePermissionDenied   = "permission-denied"
	CodeInvalidArgument    = "invalid-argument"
	CodeNotFound           = "not-found"
	CodeAlreadyExists      = "already-exists"
	CodeFailedPrecondition = "failed-precondition"
	CodeResourceExhausted  = "resource-exhausted"
	CodeInternal           = "internal"
)

// InternalMessage is the only text a caller ever sees for an internal error.
const InternalMessage = "internal error"

// Field is a single field-level validation failure.
type Field struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Body is the error payload.
type Body struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Fields  []Field `json:"fields,omitempty"`
}

type envelope struct {
	Error Body `json:"error"`
}

// Write sends {"error":{...}} with status.
func Write(w http.ResponseWriter, status int, body Body) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Error: body}) //nolint:errcheck
}

// Classify maps err to an HTTP status and error body. Unknown errors become
// internal with a fixed message.
func Classify(err error) (int, Body) {
	var ve *domain.ValidationError
	var ce *domain.ConsentError
	var pe *domain.PreconditionError

	switch {
	case errors.As(err, &ve):
		fields := make([]Field, len(ve.Errors))
		for i, fe := range ve.Errors {
			fields[i] = Field{Field: fe.Field, Message: fe.Message}
		}
		return http.StatusBadRequest, Body{Code: CodeInvalidArgument, Message: ve.Error(), Fields: fields}
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, Body{Code: CodeInvalidArgument, Message: "invalid argument"}

	case errors.As(err, &ce):
		return http.StatusForbidden, Body{Code: CodePermissionDenied, Message: ce.Error()}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, Body{Code: CodePermissionDenied, Message: "permission denied"}

	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, Body{Code: CodeUnauthenticated, Message: "authentication required"}

	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, Body{Code: CodeNotFound, Message: "not found"}

	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, Body{Code: CodeAlreadyExists, Message: "already exists"}

	case errors.As(err, &pe):
		return http.StatusPreconditionFailed, Body{Code: CodeFailedPrecondition, Message: pe.Error()}
	case errors.Is(err, domain.ErrFailedPrecondition):
		return http.StatusPreconditionFailed, Body{Code: CodeFailedPrecondition, Message: "failed precondition"}

	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, Body{Code: CodeResourceExhausted, Message: "rate limit exceeded"}
	}

	return http.StatusInternalServerError, Body{Code: CodeInternal, Message: InternalMessage}
}

// WriteErr classifies err and writes it. Internal errors are logged with the
// request id; their text never reaches the caller.
func WriteErr(ctx context.Context, w http.ResponseWriter, log *slog.Logger, err error) {
	status, body := Classify(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(ctx, "internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		)
	}
	Write(w, status, body)
}
