package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mwalczyk/stencil"
)

// Compile-time interface verification.
var _ stencil.SampleService = (*SampleService)(nil)

// SampleService implements stencil.SampleService using SQLite.
type SampleService struct {
	db *DB
}

// NewSampleService creates a new SampleService.
func NewSampleService(db *DB) *SampleService {
	return &SampleService{db: db}
}

// RecordSample appends a record to the journal.
func (s *SampleService) RecordSample(ctx context.Context, rec *stencil.SampleRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.LearnedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO samples (id, snapshot_id, name, content_hash, size, result, position, learned_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.SnapshotID, rec.Name, rec.ContentHash, rec.Size, rec.Result,
		rec.Position, rec.LearnedAt.Format(time.RFC3339))

	return err
}

// FindSamples retrieves a snapshot's journal in learn order.
func (s *SampleService) FindSamples(ctx context.Context, snapshotID string) ([]*stencil.SampleRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, snapshot_id, name, content_hash, size, result, position, learned_at
		FROM samples
		WHERE snapshot_id = ?
		ORDER BY learned_at ASC, position ASC
	`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*stencil.SampleRecord
	for rows.Next() {
		var rec stencil.SampleRecord
		var learnedAt string

		if err := rows.Scan(&rec.ID, &rec.SnapshotID, &rec.Name, &rec.ContentHash,
			&rec.Size, &rec.Result, &rec.Position, &learnedAt); err != nil {
			return nil, err
		}

		if rec.LearnedAt, err = parseRFC3339(learnedAt, "learned_at"); err != nil {
			return nil, err
		}

		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}

// DeleteSamplesBySnapshot removes all records for a snapshot.
func (s *SampleService) DeleteSamplesBySnapshot(ctx context.Context, snapshotID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM samples WHERE snapshot_id = ?`, snapshotID)
	return err
}
