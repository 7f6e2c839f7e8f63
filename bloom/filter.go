// Package bloom provides sample deduplication using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks content hashes of samples that have already been
// learned, so duplicate samples can be skipped cheaply during training.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected samples
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen records a content hash and reports whether it had been recorded
// before. False positives are possible; false negatives are not, so a
// false result always means a genuinely new sample.
func (f *Filter) Seen(hash string) bool {
	return f.f.TestOrAddString(hash)
}

// Test reports whether the hash might have been recorded, without
// recording it.
func (f *Filter) Test(hash string) bool {
	return f.f.TestString(hash)
}

// EstimatedCount returns the approximate number of recorded hashes.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
