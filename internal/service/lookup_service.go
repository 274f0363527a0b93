package service

import (
	"context"
	"log/slog"
	"time"

	"bank_lookup/internal/repository"

	"github.com/google/uuid"
)

// LookupRecorder receives the outcome of every lookup.
type LookupRecorder interface {
	RecordLookup(duration time.Duration, err error)
}

// LookupService fetches a record and renders it through a converter.
type LookupService[T any] struct {
	repo      repository.Repository[T]
	converter repository.Converter[T]
	recorder  LookupRecorder
	logger    *slog.Logger
}

func NewLookupService[T any](
	repo repository.Repository[T],
	converter repository.Converter[T],
	recorder LookupRecorder,
	logger *slog.Logger,
) *LookupService[T] {
	if logger == nil {
		logger = slog.Default()
	}

	return &LookupService[T]{
		repo:      repo,
		converter: converter,
		recorder:  recorder,
		logger:    logger,
	}
}

// GetAsRenderedString returns the converter's output for the record stored
// under id. Collaborator errors are returned as-is.
func (s *LookupService[T]) GetAsRenderedString(ctx context.Context, id uuid.UUID) (rendered string, err error) {
	startTime := time.Now()
	defer func() {
		if s.recorder != nil {
			s.recorder.RecordLookup(time.Since(startTime), err)
		}
	}()

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WarnContext(ctx, "Record lookup failed",
			slog.String("id", id.String()),
			slog.String("error", err.Error()))
		return "", err
	}

	rendered, err = s.converter.ToJSON(record)
	if err != nil {
		s.logger.WarnContext(ctx, "Record conversion failed",
			slog.String("id", id.String()),
			slog.String("error", err.Error()))
		return "", err
	}

	s.logger.DebugContext(ctx, "Record rendered",
		slog.String("id", id.String()),
		slog.Int("length", len(rendered)))
	return rendered, nil
}
