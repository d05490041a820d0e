package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

// erasureOrder lists the per-user collections in the order they are
// deleted. Children come before their parents so that cascades never remove
// rows a later chunk still expects to count.
var erasureOrder = []string{
	"context_history",
	"sentiment_history",
	"insight_history",
	"interactions",
	"relationships",
	"audit_records",
}

type erasureRepo interface {
	ListDocumentIDs(ctx context.Context, collection string, userID uuid.UUID) ([]uuid.UUID, error)
	DeleteDocuments(ctx context.Context, collection string, ids []uuid.UUID) (int, error)
	DeleteRoot(ctx context.Context, userID uuid.UUID) (int, error)
	WriteLog(ctx context.Context, e domain.ErasureLogEntry) error
}

// docRef points at one document to delete. An empty collection is the root
// user document (profile and privacy settings).
type docRef struct {
	collection string
	id         uuid.UUID
}

// Eraser deletes every document owned by a user in bounded atomic chunks
// and records the outcome in the erasure log.
type Eraser struct {
	log      *slog.Logger
	repo     erasureRepo
	tx       txManager
	maxBatch int
	now      func() time.Time
}

// NewEraser creates an Eraser. maxBatch below 1 is treated as 1.
func NewEraser(logger *slog.Logger, repo erasureRepo, tx txManager, maxBatch int) *Eraser {
	if maxBatch < 1 {
		maxBatch = 1
	}
	return &Eraser{
		log:      logger.With("service", "erasure"),
		repo:     repo,
		tx:       tx,
		maxBatch: maxBatch,
		now:      time.Now,
	}
}

// Erase removes all of userID's data and returns the number of documents
// deleted. Chunks committed before a failure stay deleted; the log entry
// then flags the account for manual cleanup.
func (e *Eraser) Erase(ctx context.Context, userID uuid.UUID, reason string) (int, error) {
	start := time.Now()

	deleted, err := e.erase(ctx, userID)

	entry := domain.ErasureLogEntry{
		ID:               uuid.New(),
		UserID:           userID,
		Status:           domain.DeletionStatusCompleted,
		Reason:           reason,
		DocumentsDeleted: deleted,
		CreatedAt:        e.now().UTC(),
	}
	if err != nil {
		entry.Status = domain.DeletionStatusFailed
		entry.RequiresManualCleanup = true
		entry.Error = err.Error()
	}

	if logErr := e.repo.WriteLog(ctx, entry); logErr != nil {
		e.log.ErrorContext(ctx, "erasure log not written",
			slog.String("user_id", userID.String()),
			slog.String("error", logErr.Error()),
		)
	}

	if err != nil {
		e.log.ErrorContext(ctx, "account erasure failed",
			slog.String("user_id", userID.String()),
			slog.Int("documents_deleted", deleted),
			slog.String("error", err.Error()),
		)
		return deleted, fmt.Errorf("user.Erase: %w", err)
	}

	e.log.InfoContext(ctx, "account erased",
		slog.String("user_id", userID.String()),
		slog.Int("documents_deleted", deleted),
		slog.Duration("duration", time.Since(start)),
	)
	return deleted, nil
}

func (e *Eraser) erase(ctx context.Context, userID uuid.UUID) (int, error) {
	var refs []docRef
	for _, c := range erasureOrder {
		ids, err := e.repo.ListDocumentIDs(ctx, c, userID)
		if err != nil {
			return 0, fmt.Errorf("enumerate %s: %w", c, err)
		}
		for _, id := range ids {
			refs = append(refs, docRef{collection: c, id: id})
		}
	}
	refs = append(refs, docRef{id: userID})

	deleted := 0
	for _, chunk := range chunkRefs(refs, e.maxBatch) {
		n := 0
		err := e.tx.RunInTx(ctx, func(ctx context.Context) error {
			var err error
			n, err = e.deleteChunk(ctx, userID, chunk)
			return err
		})
		if err != nil {
			return deleted, err
		}
		deleted += n
	}
	return deleted, nil
}

// deleteChunk deletes one chunk, grouping consecutive refs of the same
// collection into one statement.
func (e *Eraser) deleteChunk(ctx context.Context, userID uuid.UUID, chunk []docRef) (int, error) {
	total := 0
	for i := 0; i < len(chunk); {
		c := chunk[i].collection

		if c == "" {
			n, err := e.repo.DeleteRoot(ctx, userID)
			if err != nil {
				return total, fmt.Errorf("delete user root: %w", err)
			}
			total += n
			i++
			continue
		}

		var ids []uuid.UUID
		for ; i < len(chunk) && chunk[i].collection == c; i++ {
			ids = append(ids, chunk[i].id)
		}
		n, err := e.repo.DeleteDocuments(ctx, c, ids)
		if err != nil {
			return total, fmt.Errorf("delete %s: %w", c, err)
		}
		total += n
	}
	return total, nil
}

func chunkRefs(refs []docRef, size int) [][]docRef {
	chunks := make([][]docRef, 0, (len(refs)+size-1)/size)
	for size < len(refs) {
		refs, chunks = refs[size:], append(chunks, refs[:size])
	}
	return append(chunks, refs)
}
