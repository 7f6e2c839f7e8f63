package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mwalczyk/stencil"
	"github.com/mwalczyk/stencil/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectorySource(t *testing.T) {
	t.Parallel()

	t.Run("lists regular files in sorted order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.html"), []byte("two"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.html"), []byte("one"), 0644))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

		src := fs.NewDirectorySource(dir)

		names, err := src.List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"a.html", "b.html"}, names)
	})

	t.Run("reads file content by name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.html"), []byte("<b>hi</b>"), 0644))

		src := fs.NewDirectorySource(dir)

		content, err := src.Read(context.Background(), "a.html")

		require.NoError(t, err)
		assert.Equal(t, "<b>hi</b>", content)
	})

	t.Run("returns not found for missing directory", func(t *testing.T) {
		t.Parallel()

		src := fs.NewDirectorySource(filepath.Join(t.TempDir(), "missing"))

		_, err := src.List(context.Background())

		require.Error(t, err)
		assert.Equal(t, stencil.ENOTFOUND, stencil.ErrorCode(err))
	})

	t.Run("returns not found for missing file", func(t *testing.T) {
		t.Parallel()

		src := fs.NewDirectorySource(t.TempDir())

		_, err := src.Read(context.Background(), "nope.html")

		require.Error(t, err)
		assert.Equal(t, stencil.ENOTFOUND, stencil.ErrorCode(err))
	})
}

func TestFileSource(t *testing.T) {
	t.Parallel()

	t.Run("preserves the given order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		b := filepath.Join(dir, "b.html")
		a := filepath.Join(dir, "a.html")
		require.NoError(t, os.WriteFile(b, []byte("two"), 0644))
		require.NoError(t, os.WriteFile(a, []byte("one"), 0644))

		src := fs.NewFileSource(b, a)

		names, err := src.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{b, a}, names)

		content, err := src.Read(context.Background(), a)
		require.NoError(t, err)
		assert.Equal(t, "one", content)
	})

	t.Run("returns not found for missing file", func(t *testing.T) {
		t.Parallel()

		src := fs.NewFileSource()

		_, err := src.Read(context.Background(), filepath.Join(t.TempDir(), "gone"))

		require.Error(t, err)
		assert.Equal(t, stencil.ENOTFOUND, stencil.ErrorCode(err))
	})
}
