package ai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/internal/service/consent"
)

// GenerateEmbedding returns the embedding vector for one text.
func (s *Service) GenerateEmbedding(ctx context.Context, text string) (*domain.Embedding, error) {
	if fe := validateText("text", text, s.cfg.MaxInputChars); fe != nil {
		return nil, domain.NewValidationErrors([]domain.FieldError{*fe})
	}
	userID, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}

	out, err := consent.Run(ctx, s.gate, domain.OpGenerateEmbedding, userID, func(ctx context.Context) (*domain.Embedding, error) {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()

		start := time.Now()
		e, err := s.embed(ctx, text)
		if err != nil {
			s.logProviderError(ctx, userID, domain.OpGenerateEmbedding, start, len(text), err)
			return nil, err
		}
		return &e, nil
	})
	if err != nil {
		return nil, fmt.Errorf("ai.GenerateEmbedding: %w", err)
	}
	return out, nil
}

// GenerateBatchEmbeddings embeds texts in order. Sub-batches run one after
// another; the calls inside a sub-batch run in parallel. The first failure
// fails the whole batch.
func (s *Service) GenerateBatchEmbeddings(ctx context.Context, texts []string) ([]domain.Embedding, error) {
	if err := validateBatch(texts, s.cfg.MaxBatchTexts, s.cfg.MaxInputChars); err != nil {
		return nil, err
	}
	userID, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}

	out, err := consent.Run(ctx, s.gate, domain.OpGenerateBatchEmbeddings, userID, func(ctx context.Context) ([]domain.Embedding, error) {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.BatchTimeout)
		defer cancel()

		start := time.Now()
		result, err := s.embedBatch(ctx, texts)
		if err != nil {
			s.logProviderError(ctx, userID, domain.OpGenerateBatchEmbeddings, start, totalLength(texts), err)
			return nil, err
		}

		s.log.InfoContext(ctx, "batch embeddings generated",
			slog.String("user_id", userID.String()),
			slog.Int("count", len(result)),
			slog.Duration("latency", time.Since(start)),
		)
		return result, nil
	})
	if err != nil {
		return nil, fmt.Errorf("ai.GenerateBatchEmbeddings: %w", err)
	}
	return out, nil
}

func (s *Service) embedBatch(ctx context.Context, texts []string) ([]domain.Embedding, error) {
	size := s.cfg.EmbeddingSubBatchSize
	if size < 1 {
		size = 1
	}

	result := make([]domain.Embedding, len(texts))
	for lo := 0; lo < len(texts); lo += size {
		hi := min(lo+size, len(texts))

		g, gctx := errgroup.WithContext(ctx)
		for i := lo; i < hi; i++ {
			g.Go(func() error {
				e, err := s.embed(gctx, texts[i])
				if err != nil {
					return fmt.Errorf("text %d: %w", i, err)
				}
				result[i] = e
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *Service) embed(ctx context.Context, text string) (domain.Embedding, error) {
	values, err := s.provider.Embed(ctx, text)
	if err != nil {
		return domain.Embedding{}, err
	}
	return domain.Embedding{
		Values:     values,
		Model:      s.provider.EmbeddingModel(),
		Dimensions: len(values),
	}, nil
}

func totalLength(texts []string) int {
	n := 0
	for _, t := range texts {
		n += len(t)
	}
	return n
}

