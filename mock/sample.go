package mock

import (
	"context"

	"github.com/mwalczyk/stencil"
)

var _ stencil.SampleService = (*SampleService)(nil)

// SampleService is a mock implementation of stencil.SampleService.
type SampleService struct {
	RecordSampleFn            func(ctx context.Context, rec *stencil.SampleRecord) error
	FindSamplesFn             func(ctx context.Context, snapshotID string) ([]*stencil.SampleRecord, error)
	DeleteSamplesBySnapshotFn func(ctx context.Context, snapshotID string) error
}

func (s *SampleService) RecordSample(ctx context.Context, rec *stencil.SampleRecord) error {
	return s.RecordSampleFn(ctx, rec)
}

func (s *SampleService) FindSamples(ctx context.Context, snapshotID string) ([]*stencil.SampleRecord, error) {
	return s.FindSamplesFn(ctx, snapshotID)
}

func (s *SampleService) DeleteSamplesBySnapshot(ctx context.Context, snapshotID string) error {
	return s.DeleteSamplesBySnapshotFn(ctx, snapshotID)
}
