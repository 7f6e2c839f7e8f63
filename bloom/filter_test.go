package bloom_test

import (
	"testing"

	"github.com/mwalczyk/stencil/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Seen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Seen("hash-a"))
	assert.True(t, f.Seen("hash-a"))
	assert.False(t, f.Seen("hash-b"))
}

func TestFilter_Test(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("hash-a"))

	f.Seen("hash-a")

	assert.True(t, f.Test("hash-a"))
	// Test does not record.
	assert.False(t, f.Test("hash-c"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	f.Seen("a")
	f.Seen("b")
	f.Seen("c")

	count := f.EstimatedCount()
	assert.InDelta(t, 3, float64(count), 1)
}
