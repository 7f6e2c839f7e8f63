package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mwalczyk/stencil"
)

// Compile-time interface verification.
var _ stencil.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements stencil.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// CreateSnapshot creates a new snapshot.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *stencil.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	if _, err := s.FindSnapshotByName(ctx, snap.Name); err == nil {
		return stencil.Errorf(stencil.ECONFLICT, "snapshot %q already exists", snap.Name)
	} else if stencil.ErrorCode(err) != stencil.ENOTFOUND {
		return err
	}

	snap.ID = uuid.New().String()
	snap.CreatedAt = time.Now().UTC()
	snap.UpdatedAt = snap.CreatedAt

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, name, brain, tolerance, version, num_holes, learned, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, snap.ID, snap.Name, snap.Brain, snap.Tolerance, snap.Version, snap.NumHoles,
		boolToInt(snap.Learned), snap.CreatedAt.Format(time.RFC3339), snap.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindSnapshotByID retrieves a snapshot by ID.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*stencil.Snapshot, error) {
	return s.findSnapshot(ctx, "id = ?", id)
}

// FindSnapshotByName retrieves a snapshot by its unique name.
func (s *SnapshotService) FindSnapshotByName(ctx context.Context, name string) (*stencil.Snapshot, error) {
	return s.findSnapshot(ctx, "name = ?", name)
}

func (s *SnapshotService) findSnapshot(ctx context.Context, where string, arg any) (*stencil.Snapshot, error) {
	var snap stencil.Snapshot
	var learned int
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, brain, tolerance, version, num_holes, learned, created_at, updated_at
		FROM snapshots
		WHERE `+where, arg,
	).Scan(&snap.ID, &snap.Name, &snap.Brain, &snap.Tolerance, &snap.Version,
		&snap.NumHoles, &learned, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, stencil.Errorf(stencil.ENOTFOUND, "snapshot not found")
	}
	if err != nil {
		return nil, err
	}

	snap.Learned = learned != 0
	if snap.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if snap.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &snap, nil
}

// FindSnapshots retrieves snapshots matching the filter, sorted by name.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter stencil.SnapshotFilter) ([]*stencil.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT id, name, brain, tolerance, version, num_holes, learned, created_at, updated_at
		FROM snapshots
		WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*stencil.Snapshot
	for rows.Next() {
		var snap stencil.Snapshot
		var learned int
		var createdAt, updatedAt string

		if err := rows.Scan(&snap.ID, &snap.Name, &snap.Brain, &snap.Tolerance, &snap.Version,
			&snap.NumHoles, &learned, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		snap.Learned = learned != 0
		if snap.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if snap.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		snaps = append(snaps, &snap)
	}

	return snaps, rows.Err()
}

// UpdateSnapshot updates an existing snapshot.
func (s *SnapshotService) UpdateSnapshot(ctx context.Context, id string, upd stencil.SnapshotUpdate) (*stencil.Snapshot, error) {
	snap, err := s.FindSnapshotByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Brain != nil {
		snap.Brain = *upd.Brain
	}
	if upd.Version != nil {
		snap.Version = *upd.Version
	}
	if upd.NumHoles != nil {
		snap.NumHoles = *upd.NumHoles
	}
	if upd.Learned != nil {
		snap.Learned = *upd.Learned
	}
	snap.UpdatedAt = time.Now().UTC()

	if err := snap.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE snapshots
		SET brain = ?, version = ?, num_holes = ?, learned = ?, updated_at = ?
		WHERE id = ?
	`, snap.Brain, snap.Version, snap.NumHoles, boolToInt(snap.Learned),
		snap.UpdatedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// DeleteSnapshot permanently removes a snapshot and its sample journal.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	if _, err := s.FindSnapshotByID(ctx, id); err != nil {
		return err
	}

	// Journal rows go with the snapshot via ON DELETE CASCADE.
	_, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
