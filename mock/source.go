package mock

import (
	"context"

	"github.com/mwalczyk/stencil"
)

var _ stencil.SampleSource = (*SampleSource)(nil)

// SampleSource is a mock implementation of stencil.SampleSource.
type SampleSource struct {
	ListFn func(ctx context.Context) ([]string, error)
	ReadFn func(ctx context.Context, name string) (string, error)
}

func (s *SampleSource) List(ctx context.Context) ([]string, error) {
	return s.ListFn(ctx)
}

func (s *SampleSource) Read(ctx context.Context, name string) (string, error) {
	return s.ReadFn(ctx, name)
}
