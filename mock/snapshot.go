package mock

import (
	"context"

	"github.com/mwalczyk/stencil"
)

var _ stencil.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of stencil.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn     func(ctx context.Context, snap *stencil.Snapshot) error
	FindSnapshotByIDFn   func(ctx context.Context, id string) (*stencil.Snapshot, error)
	FindSnapshotByNameFn func(ctx context.Context, name string) (*stencil.Snapshot, error)
	FindSnapshotsFn      func(ctx context.Context, filter stencil.SnapshotFilter) ([]*stencil.Snapshot, error)
	UpdateSnapshotFn     func(ctx context.Context, id string, upd stencil.SnapshotUpdate) (*stencil.Snapshot, error)
	DeleteSnapshotFn     func(ctx context.Context, id string) error
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *stencil.Snapshot) error {
	return s.CreateSnapshotFn(ctx, snap)
}

func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*stencil.Snapshot, error) {
	return s.FindSnapshotByIDFn(ctx, id)
}

func (s *SnapshotService) FindSnapshotByName(ctx context.Context, name string) (*stencil.Snapshot, error) {
	return s.FindSnapshotByNameFn(ctx, name)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter stencil.SnapshotFilter) ([]*stencil.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) UpdateSnapshot(ctx context.Context, id string, upd stencil.SnapshotUpdate) (*stencil.Snapshot, error) {
	return s.UpdateSnapshotFn(ctx, id, upd)
}

func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	return s.DeleteSnapshotFn(ctx, id)
}
