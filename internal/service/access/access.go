// Package access resolves the authenticated caller and enforces that a user
// may only act on their own data.
package access

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/pkg/ctxutil"
)

// Caller returns the authenticated user id or ErrUnauthorized.
func Caller(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

// RequireSelf returns ErrUnauthorized when there is no caller and
// ErrForbidden when the caller is not userID.
func RequireSelf(ctx context.Context, userID uuid.UUID) error {
	caller, err := Caller(ctx)
	if err != nil {
		return err
	}
	if caller != userID {
		return domain.ErrForbidden
	}
	return nil
}
