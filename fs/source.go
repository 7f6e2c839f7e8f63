// Package fs provides file-based sample sources.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mwalczyk/stencil"
)

// Ensure DirectorySource implements stencil.SampleSource at compile time.
var _ stencil.SampleSource = (*DirectorySource)(nil)

// DirectorySource yields every regular file in a directory as a sample.
// Files are listed in sorted name order so learning is deterministic
// across platforms; merge results depend on sample order.
type DirectorySource struct {
	dir string
}

// NewDirectorySource creates a source for the given directory.
func NewDirectorySource(dir string) *DirectorySource {
	return &DirectorySource{dir: dir}
}

// List returns the names of the regular files in the directory, sorted.
func (s *DirectorySource) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, stencil.Errorf(stencil.ENOTFOUND, "directory %q not found", s.dir)
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Read returns the content of a named file in the directory.
func (s *DirectorySource) Read(ctx context.Context, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", stencil.Errorf(stencil.ENOTFOUND, "sample %q not found", name)
		}
		return "", err
	}
	return string(data), nil
}

// Ensure FileSource implements stencil.SampleSource at compile time.
var _ stencil.SampleSource = (*FileSource)(nil)

// FileSource yields an explicit list of files as samples, in the order
// given.
type FileSource struct {
	paths []string
}

// NewFileSource creates a source for the given file paths.
func NewFileSource(paths ...string) *FileSource {
	return &FileSource{paths: paths}
}

// List returns the configured paths in their original order.
func (s *FileSource) List(ctx context.Context) ([]string, error) {
	return append([]string(nil), s.paths...), nil
}

// Read returns the content of one of the configured files.
func (s *FileSource) Read(ctx context.Context, name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			return "", stencil.Errorf(stencil.ENOTFOUND, "sample %q not found", name)
		}
		return "", err
	}
	return string(data), nil
}
