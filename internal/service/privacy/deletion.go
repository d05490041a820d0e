package privacy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/internal/service/access"
)

// RequestDataDeletion schedules erasure of the user's account after the
// grace period. A second request while one is pending returns the pending one.
func (s *Service) RequestDataDeletion(ctx context.Context, userID uuid.UUID, reason string) (*domain.DeletionRequest, error) {
	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) > domain.MaxDeletionReasonLength {
		return nil, domain.NewValidationError("reason", fmt.Sprintf("must be at most %d characters", domain.MaxDeletionReasonLength))
	}

	if err := access.RequireSelf(ctx, userID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	req, created, err := s.deletions.CreateRequest(ctx, domain.DeletionRequest{
		ID:           uuid.New(),
		UserID:       userID,
		Reason:       reason,
		Status:       domain.DeletionStatusPending,
		RequestedAt:  now,
		ScheduledFor: now.Add(s.consent.DeletionGracePeriod),
	})
	if err != nil {
		return nil, fmt.Errorf("privacy.RequestDataDeletion: %w", err)
	}

	if created {
		s.audit.Record(ctx, userID, domain.AuditRecord{
			Operation: domain.OpDataDeletionRequest,
			DataTypes: []string{domain.DataTypeAll},
			Purposes:  []string{domain.PurposeRightToErasure},
			Details: map[string]any{
				"requestId":    req.ID.String(),
				"scheduledFor": req.ScheduledFor.Format(time.RFC3339),
				"hasReason":    reason != "",
			},
			GDPRCompliant: true,
		})
		s.log.InfoContext(ctx, "data deletion requested",
			slog.String("user_id", userID.String()),
			slog.Time("scheduled_for", req.ScheduledFor),
		)
	}

	return req, nil
}

// DeletionReport summarises one ProcessDueDeletions run.
type DeletionReport struct {
	Processed        int
	Completed        int
	Failed           int
	DocumentsDeleted int
}

// ProcessDueDeletions erases every account whose pending request is due at
// now, up to limit requests, and marks each request completed or failed.
// A failure on one account does not stop the others.
func (s *Service) ProcessDueDeletions(ctx context.Context, now time.Time, limit int) (DeletionReport, error) {
	var report DeletionReport

	due, err := s.deletions.ListDue(ctx, now, limit)
	if err != nil {
		return report, fmt.Errorf("privacy.ProcessDueDeletions: %w", err)
	}

	for _, req := range due {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("privacy.ProcessDueDeletions: %w", err)
		}
		report.Processed++

		n, eraseErr := s.eraser.Erase(ctx, req.UserID, req.Reason)
		report.DocumentsDeleted += n

		status := domain.DeletionStatusCompleted
		var completedAt *time.Time
		if eraseErr != nil {
			status = domain.DeletionStatusFailed
			report.Failed++
			s.log.ErrorContext(ctx, "account erasure failed",
				slog.String("user_id", req.UserID.String()),
				slog.String("request_id", req.ID.String()),
				slog.String("error", eraseErr.Error()),
			)
		} else {
			done := s.now().UTC()
			completedAt = &done
			report.Completed++
		}

		if err := s.deletions.MarkStatus(ctx, req.ID, status, completedAt); err != nil {
			s.log.ErrorContext(ctx, "deletion request status not updated",
				slog.String("request_id", req.ID.String()),
				slog.String("status", status.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "due deletions processed",
		slog.Int("processed", report.Processed),
		slog.Int("completed", report.Completed),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}
