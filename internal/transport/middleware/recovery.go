package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/ecomind-backend/internal/transport/apierror"
	"github.com/heartmarshall/ecomind-backend/pkg/ctxutil"
)

// Recovery turns a handler panic into a logged stack trace and the generic
// internal error envelope. The panic value never reaches the client.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				attrs := []slog.Attr{
					slog.Any("panic", v),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				}
				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)

				apierror.Write(w, http.StatusInternalServerError, apierror.Body{
					Code:    apierror.CodeInternal,
					Message: apierror.InternalMessage,
				})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
