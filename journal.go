package stencil

import (
	"context"
	"time"
)

// SampleRecord is one entry in a snapshot's learn journal: which sample
// was absorbed, in what order, and what it did to the template.
type SampleRecord struct {
	ID          string    `json:"id"`
	SnapshotID  string    `json:"snapshotId"`
	Name        string    `json:"name"`
	ContentHash string    `json:"contentHash"`
	Size        int       `json:"size"`
	Result      string    `json:"result"`
	Position    int       `json:"position"`
	LearnedAt   time.Time `json:"learnedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *SampleRecord) Validate() error {
	if r.SnapshotID == "" {
		return Errorf(EINVALID, "sample snapshot ID required")
	}
	if r.ContentHash == "" {
		return Errorf(EINVALID, "sample content hash required")
	}
	return nil
}

// SampleService represents a service for the learn journal.
type SampleService interface {
	// RecordSample appends a record to the journal.
	RecordSample(ctx context.Context, rec *SampleRecord) error

	// FindSamples retrieves a snapshot's journal in learn order.
	FindSamples(ctx context.Context, snapshotID string) ([]*SampleRecord, error)

	// DeleteSamplesBySnapshot removes all records for a snapshot.
	DeleteSamplesBySnapshot(ctx context.Context, snapshotID string) error
}
