package stencil

import (
	"context"
	"time"
)

// Snapshot is a persisted template: the canonical serialized brain
// (literal runs with one sentinel byte per hole) plus the settings and
// counters needed to resume learning where it left off.
type Snapshot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brain     string    `json:"brain"`
	Tolerance int       `json:"tolerance"`
	Version   int       `json:"version"`
	NumHoles  int       `json:"numHoles"`
	Learned   bool      `json:"learned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "snapshot name required")
	}
	if s.Tolerance < 0 {
		return Errorf(EINVALID, "snapshot tolerance must be non-negative")
	}
	return nil
}

// Snapshot captures the template's current state under the given name.
func (t *Template) Snapshot(name string) *Snapshot {
	return &Snapshot{
		Name:      name,
		Brain:     t.brain,
		Tolerance: t.tolerance,
		Version:   t.version,
		NumHoles:  t.NumHoles(),
		Learned:   t.learned,
	}
}

// Restore rebuilds a template from a snapshot. Options are applied
// first, then the snapshot's brain, tolerance, and version take effect,
// so WithCleaner composes with a restored snapshot but WithTolerance
// and WithBrain are overridden by it.
func Restore(snap *Snapshot, opts ...Option) *Template {
	t := NewTemplate(opts...)
	t.brain = snap.Brain
	t.learned = snap.Learned
	t.tolerance = snap.Tolerance
	t.version = snap.Version
	return t
}

// SnapshotService represents a service for persisting templates.
type SnapshotService interface {
	// CreateSnapshot creates a new snapshot.
	// Returns ECONFLICT if the name is already taken.
	CreateSnapshot(ctx context.Context, snap *Snapshot) error

	// FindSnapshotByID retrieves a snapshot by ID.
	// Returns ENOTFOUND if the snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindSnapshotByName retrieves a snapshot by its unique name.
	// Returns ENOTFOUND if the snapshot does not exist.
	FindSnapshotByName(ctx context.Context, name string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// UpdateSnapshot updates an existing snapshot.
	// Returns ENOTFOUND if the snapshot does not exist.
	UpdateSnapshot(ctx context.Context, id string, upd SnapshotUpdate) (*Snapshot, error)

	// DeleteSnapshot permanently removes a snapshot and its sample
	// journal. Returns ENOTFOUND if the snapshot does not exist.
	DeleteSnapshot(ctx context.Context, id string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SnapshotUpdate represents a set of fields to update on a snapshot.
type SnapshotUpdate struct {
	Brain    *string `json:"brain"`
	Version  *int    `json:"version"`
	NumHoles *int    `json:"numHoles"`
	Learned  *bool   `json:"learned"`
}
