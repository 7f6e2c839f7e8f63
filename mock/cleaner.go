package mock

import "github.com/mwalczyk/stencil"

var _ stencil.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of stencil.Cleaner.
type Cleaner struct {
	CleanFn func(text string) string
}

func (c *Cleaner) Clean(text string) string {
	return c.CleanFn(text)
}
