package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwalczyk/stencil"
)

// Ensure LoggingSnapshotService implements stencil.SnapshotService.
var _ stencil.SnapshotService = (*LoggingSnapshotService)(nil)

// LoggingSnapshotService wraps a SnapshotService with debug logging.
type LoggingSnapshotService struct {
	next   stencil.SnapshotService
	logger *slog.Logger
}

// NewLoggingSnapshotService creates a new LoggingSnapshotService.
func NewLoggingSnapshotService(next stencil.SnapshotService, logger *slog.Logger) *LoggingSnapshotService {
	return &LoggingSnapshotService{next: next, logger: logger}
}

// CreateSnapshot delegates to the wrapped service and logs the operation.
func (s *LoggingSnapshotService) CreateSnapshot(ctx context.Context, snap *stencil.Snapshot) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("snapshot create",
			"name", snap.Name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateSnapshot(ctx, snap)
}

// FindSnapshotByID delegates to the wrapped service.
func (s *LoggingSnapshotService) FindSnapshotByID(ctx context.Context, id string) (*stencil.Snapshot, error) {
	return s.next.FindSnapshotByID(ctx, id)
}

// FindSnapshotByName delegates to the wrapped service.
func (s *LoggingSnapshotService) FindSnapshotByName(ctx context.Context, name string) (*stencil.Snapshot, error) {
	return s.next.FindSnapshotByName(ctx, name)
}

// FindSnapshots delegates to the wrapped service.
func (s *LoggingSnapshotService) FindSnapshots(ctx context.Context, filter stencil.SnapshotFilter) ([]*stencil.Snapshot, error) {
	return s.next.FindSnapshots(ctx, filter)
}

// UpdateSnapshot delegates to the wrapped service and logs the operation.
func (s *LoggingSnapshotService) UpdateSnapshot(ctx context.Context, id string, upd stencil.SnapshotUpdate) (snap *stencil.Snapshot, err error) {
	defer func(begin time.Time) {
		s.logger.Info("snapshot update",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateSnapshot(ctx, id, upd)
}

// DeleteSnapshot delegates to the wrapped service and logs the operation.
func (s *LoggingSnapshotService) DeleteSnapshot(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("snapshot delete",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteSnapshot(ctx, id)
}
