package stencil

// Cleaner strips unwanted content from a sample before it reaches the
// learning or matching engine. Cleaners are pluggable strategies: the
// HTML pre-filter in the html package is one implementation, and
// domain-specific filters can be added without touching the engine.
type Cleaner interface {
	Clean(text string) string
}

// CleanerFunc adapts a plain function to the Cleaner interface.
type CleanerFunc func(text string) string

// Clean calls f(text).
func (f CleanerFunc) Clean(text string) string {
	return f(text)
}

// ChainCleaner combines several cleaners into one, applied in order.
func ChainCleaner(cleaners ...Cleaner) Cleaner {
	return CleanerFunc(func(text string) string {
		for _, c := range cleaners {
			text = c.Clean(text)
		}
		return text
	})
}
