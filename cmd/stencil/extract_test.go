package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mwalczyk/stencil"
	main "github.com/mwalczyk/stencil/cmd/stencil"
	"github.com/mwalczyk/stencil/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func snapshotsWithBrain(brain string) *mock.SnapshotService {
	return &mock.SnapshotService{
		FindSnapshotByNameFn: func(_ context.Context, name string) (*stencil.Snapshot, error) {
			return &stencil.Snapshot{
				ID:      "snap-123",
				Name:    name,
				Brain:   brain,
				Learned: true,
			}, nil
		},
	}
}

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints values in hole order", func(t *testing.T) {
		t.Parallel()

		file := writeFile(t, "doc.html", "<b>larry and curly</b>")
		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshotsWithBrain("<b>\x1f and \x1f</b>"),
		}

		cmd := &main.ExtractCmd{Name: "pair", File: file}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "larry\ncurly\n", stdout.String())
	})

	t.Run("pairs values with field names", func(t *testing.T) {
		t.Parallel()

		file := writeFile(t, "doc.html", "<b>larry and curly</b>")
		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshotsWithBrain("<b>\x1f and \x1f</b>"),
		}

		cmd := &main.ExtractCmd{Name: "pair", File: file, Fields: []string{"first", "second"}}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "first: larry\nsecond: curly\n", stdout.String())
	})

	t.Run("empty field name skips its hole", func(t *testing.T) {
		t.Parallel()

		file := writeFile(t, "doc.html", "<b>larry and curly</b>")
		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshotsWithBrain("<b>\x1f and \x1f</b>"),
		}

		cmd := &main.ExtractCmd{Name: "pair", File: file, Fields: []string{"", "second"}}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "second: curly\n", stdout.String())
	})

	t.Run("returns error when document does not match", func(t *testing.T) {
		t.Parallel()

		file := writeFile(t, "doc.html", "<i>totally different</i>")
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Snapshots: snapshotsWithBrain("<b>\x1f and \x1f</b>"),
		}

		cmd := &main.ExtractCmd{Name: "pair", File: file}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, stencil.ENOMATCH, stencil.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("strips scripts before matching with --html", func(t *testing.T) {
		t.Parallel()

		file := writeFile(t, "doc.html", "<script>var x;</script><b>larry and curly</b>")
		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshotsWithBrain("<b>\x1f and \x1f</b>"),
		}

		cmd := &main.ExtractCmd{Name: "pair", File: file, HTML: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "larry\ncurly\n", stdout.String())
	})

	t.Run("returns error when file is missing", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Snapshots: snapshotsWithBrain("<b>\x1f</b>"),
		}

		cmd := &main.ExtractCmd{Name: "pair", File: filepath.Join(t.TempDir(), "missing.html")}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "cannot read")
	})
}
