// Package html provides pre-filter cleaners for HTML samples, built on
// the golang.org/x/net/html tokenizer. The cleaners emit the raw bytes
// of every token they keep, so untouched input survives verbatim.
package html

import (
	"strings"

	"github.com/mwalczyk/stencil"
	"golang.org/x/net/html"
)

// Ensure Cleaner implements stencil.Cleaner.
var _ stencil.Cleaner = (*Cleaner)(nil)

// DefaultTags are the elements removed by default. Their payloads vary
// across samples in ways unrelated to the data of interest and would
// poison the alignment with spurious matches or unnecessary holes.
var DefaultTags = []string{"script", "style", "noscript"}

// Cleaner removes complete elements with the configured tag names,
// including their content and closing tag. Tag names are matched
// case-insensitively. An element left unclosed at end of input is kept
// as-is; only complete elements are removed.
type Cleaner struct {
	tags map[string]bool
}

// NewCleaner creates a Cleaner for the given tag names.
// With no arguments it removes the DefaultTags.
func NewCleaner(tags ...string) *Cleaner {
	if len(tags) == 0 {
		tags = DefaultTags
	}
	m := make(map[string]bool, len(tags))
	for _, tag := range tags {
		m[strings.ToLower(tag)] = true
	}
	return &Cleaner{tags: m}
}

// Clean returns text with every complete unwanted element removed.
func (c *Cleaner) Clean(text string) string {
	z := html.NewTokenizer(strings.NewReader(text))

	var b strings.Builder
	b.Grow(len(text))

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			b.Write(z.Raw())
			return b.String()
		}

		if tt == html.StartTagToken {
			name, _ := z.TagName()
			if c.tags[string(name)] {
				if skipElement(z, string(name), &b) {
					continue
				}
				// End of input inside the element; the buffered
				// text has been written back out unchanged.
				return b.String()
			}
		}

		b.Write(z.Raw())
	}
}

// skipElement consumes tokens through the first matching end tag and
// reports whether the element was complete and dropped. On end of input
// before the closing tag it writes the element's raw text to b
// unchanged and returns false.
func skipElement(z *html.Tokenizer, name string, b *strings.Builder) bool {
	// Raw token bytes are invalidated by the next call to Next, so the
	// element is buffered until its fate is known.
	buf := append([]byte(nil), z.Raw()...)

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			buf = append(buf, z.Raw()...)
			b.Write(buf)
			return false
		}

		if tt == html.EndTagToken {
			end, _ := z.TagName()
			if string(end) == name {
				return true
			}
		}

		buf = append(buf, z.Raw()...)
	}
}

// Ensure CommentCleaner implements stencil.Cleaner.
var _ stencil.Cleaner = (*CommentCleaner)(nil)

// CommentCleaner removes HTML comments.
type CommentCleaner struct{}

// NewCommentCleaner creates a new CommentCleaner.
func NewCommentCleaner() *CommentCleaner {
	return &CommentCleaner{}
}

// Clean returns text with every comment removed.
func (c *CommentCleaner) Clean(text string) string {
	z := html.NewTokenizer(strings.NewReader(text))

	var b strings.Builder
	b.Grow(len(text))

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			b.Write(z.Raw())
			return b.String()
		}
		if tt == html.CommentToken {
			continue
		}
		b.Write(z.Raw())
	}
}
