package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mwalczyk/stencil"
	main "github.com/mwalczyk/stencil/cmd/stencil"
	"github.com/mwalczyk/stencil/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// learnHarness wires mocks that accept any snapshot/sample activity and
// capture what the command persists.
type learnHarness struct {
	mu       sync.Mutex
	existing *stencil.Snapshot
	created  *stencil.Snapshot
	update   *stencil.SnapshotUpdate
	records  []*stencil.SampleRecord

	deps   *main.Dependencies
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newLearnHarness(t *testing.T, existing *stencil.Snapshot) *learnHarness {
	t.Helper()

	h := &learnHarness{
		existing: existing,
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
	}

	snapshots := &mock.SnapshotService{
		FindSnapshotByNameFn: func(_ context.Context, name string) (*stencil.Snapshot, error) {
			if h.existing != nil {
				return h.existing, nil
			}
			return nil, stencil.Errorf(stencil.ENOTFOUND, "snapshot %q not found", name)
		},
		CreateSnapshotFn: func(_ context.Context, snap *stencil.Snapshot) error {
			snap.ID = "snap-1"
			h.created = snap
			return nil
		},
		UpdateSnapshotFn: func(_ context.Context, id string, upd stencil.SnapshotUpdate) (*stencil.Snapshot, error) {
			h.update = &upd
			return &stencil.Snapshot{ID: id}, nil
		},
	}

	samples := &mock.SampleService{
		RecordSampleFn: func(_ context.Context, rec *stencil.SampleRecord) error {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.records = append(h.records, rec)
			return nil
		},
		FindSamplesFn: func(_ context.Context, _ string) ([]*stencil.SampleRecord, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			return h.records, nil
		},
	}

	h.deps = &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    h.stdout,
		Stderr:    h.stderr,
		Config:    main.DefaultConfig(),
		Logger:    slog.New(slog.DiscardHandler),
		Snapshots: snapshots,
		Samples:   samples,
	}
	return h
}

func writeSamples(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestLearnCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("creates template and learns a directory of samples", func(t *testing.T) {
		t.Parallel()

		dir := writeSamples(t, map[string]string{
			"a.html": "<b>this and that</b>",
			"b.html": "<b>alex and sue</b>",
		})

		h := newLearnHarness(t, nil)
		cmd := &main.LearnCmd{Name: "pair", Paths: []string{dir}, Tolerance: -1}

		err := cmd.Run(h.deps)

		require.NoError(t, err)
		require.NotNil(t, h.created)
		assert.Equal(t, "pair", h.created.Name)

		require.NotNil(t, h.update)
		assert.Equal(t, "<b>\x1f and \x1f</b>", *h.update.Brain)
		assert.Equal(t, 2, *h.update.Version)
		assert.Equal(t, 2, *h.update.NumHoles)
		assert.True(t, *h.update.Learned)

		require.Len(t, h.records, 2)
		assert.Equal(t, "a.html", h.records[0].Name)
		assert.Equal(t, "b.html", h.records[1].Name)

		output := h.stdout.String()
		assert.Contains(t, output, `Created template "pair"`)
		assert.Contains(t, output, "Learned 2 sample(s)")
		assert.Contains(t, output, "2 hole(s)")
	})

	t.Run("resumes an existing template", func(t *testing.T) {
		t.Parallel()

		dir := writeSamples(t, map[string]string{
			"c.html": "<b>moe and shemp</b>",
		})

		h := newLearnHarness(t, &stencil.Snapshot{
			ID:      "snap-9",
			Name:    "pair",
			Brain:   "<b>\x1f and \x1f</b>",
			Version: 2,
			Learned: true,
		})
		cmd := &main.LearnCmd{Name: "pair", Paths: []string{dir}, Tolerance: -1}

		err := cmd.Run(h.deps)

		require.NoError(t, err)
		assert.Nil(t, h.created)
		require.NotNil(t, h.update)
		assert.Equal(t, "<b>\x1f and \x1f</b>", *h.update.Brain)
		assert.Equal(t, 3, *h.update.Version)
		assert.NotContains(t, h.stdout.String(), "Created template")
	})

	t.Run("warns when tolerance flag conflicts with existing template", func(t *testing.T) {
		t.Parallel()

		dir := writeSamples(t, map[string]string{"a.html": "<b>abc</b>"})

		h := newLearnHarness(t, &stencil.Snapshot{
			ID:        "snap-9",
			Name:      "pair",
			Brain:     "<b>xyz</b>",
			Tolerance: 1,
			Version:   1,
			Learned:   true,
		})
		cmd := &main.LearnCmd{Name: "pair", Paths: []string{dir}, Tolerance: 3}

		err := cmd.Run(h.deps)

		require.NoError(t, err)
		assert.Contains(t, h.stderr.String(), "--tolerance ignored")
	})

	t.Run("learns snippets selected by CSS selector", func(t *testing.T) {
		t.Parallel()

		dir := writeSamples(t, map[string]string{
			"page.html": `<html><body>` +
				`<div class="result"><b>abc</b></div>` +
				`<div class="result"><b>xyz</b></div>` +
				`</body></html>`,
		})

		h := newLearnHarness(t, nil)
		cmd := &main.LearnCmd{
			Name:      "results",
			Paths:     []string{filepath.Join(dir, "page.html")},
			Selector:  "div.result",
			Tolerance: -1,
		}

		err := cmd.Run(h.deps)

		require.NoError(t, err)
		require.NotNil(t, h.update)
		assert.Equal(t, `<div class="result"><b>`+"\x1f"+`</b></div>`, *h.update.Brain)
	})

	t.Run("selector requires a single input file", func(t *testing.T) {
		t.Parallel()

		h := newLearnHarness(t, nil)
		cmd := &main.LearnCmd{
			Name:      "results",
			Paths:     []string{"a.html", "b.html"},
			Selector:  "div",
			Tolerance: -1,
		}

		err := cmd.Run(h.deps)

		require.Error(t, err)
		assert.Equal(t, stencil.EINVALID, stencil.ErrorCode(err))
	})

	t.Run("skips samples recorded in earlier runs", func(t *testing.T) {
		t.Parallel()

		dir := writeSamples(t, map[string]string{"a.html": "<b>abc</b>"})

		h := newLearnHarness(t, nil)
		cmd := &main.LearnCmd{Name: "pair", Paths: []string{dir}, Tolerance: -1}

		require.NoError(t, cmd.Run(h.deps))
		require.Len(t, h.records, 1)

		// Second run resumes the snapshot created by the first.
		h.existing = h.created
		require.NoError(t, cmd.Run(h.deps))

		assert.Len(t, h.records, 1)
		assert.Contains(t, h.stdout.String(), "skipped (duplicate)")
	})

	t.Run("strips scripts before learning with --html", func(t *testing.T) {
		t.Parallel()

		dir := writeSamples(t, map[string]string{
			"a.html": "<script>var a;</script><h1>abc</h1>",
			"b.html": "<script>var b;</script><h1>xyz</h1>",
		})

		h := newLearnHarness(t, nil)
		cmd := &main.LearnCmd{Name: "heads", Paths: []string{dir}, Tolerance: -1, HTML: true}

		err := cmd.Run(h.deps)

		require.NoError(t, err)
		require.NotNil(t, h.update)
		assert.Equal(t, "<h1>\x1f</h1>", *h.update.Brain)
	})
}
