package stencil

import "context"

// Sample is one example text, identified by the name its source uses.
type Sample struct {
	Name     string
	Content  string
	Position int
}

// SampleSource discovers and reads example texts. Implementations hide
// the underlying storage: a directory of files, repeated elements
// selected out of an HTML page, and so on.
type SampleSource interface {
	// List returns the names of available samples in learn order.
	List(ctx context.Context) ([]string, error)

	// Read returns the content of a named sample.
	// Returns ENOTFOUND if the sample does not exist.
	Read(ctx context.Context, name string) (string, error)
}
