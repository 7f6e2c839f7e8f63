// Package slog provides logging decorators for stencil services, built
// on the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwalczyk/stencil"
)

// Ensure LoggingSampleSource implements stencil.SampleSource.
var _ stencil.SampleSource = (*LoggingSampleSource)(nil)

// LoggingSampleSource wraps a SampleSource with debug logging.
type LoggingSampleSource struct {
	next   stencil.SampleSource
	logger *slog.Logger
}

// NewLoggingSampleSource creates a new LoggingSampleSource.
func NewLoggingSampleSource(next stencil.SampleSource, logger *slog.Logger) *LoggingSampleSource {
	return &LoggingSampleSource{next: next, logger: logger}
}

// List delegates to the wrapped source and logs the operation.
func (s *LoggingSampleSource) List(ctx context.Context) (names []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sample listing",
			"count", len(names),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.List(ctx)
}

// Read delegates to the wrapped source and logs the operation.
func (s *LoggingSampleSource) Read(ctx context.Context, name string) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("sample read",
			"name", name,
			"size", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Read(ctx, name)
}
