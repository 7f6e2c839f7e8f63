// Package goquery provides a sample source that selects repeated
// snippets out of an HTML page with a CSS selector.
package goquery

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/mwalczyk/stencil"
)

// Ensure SelectorSource implements stencil.SampleSource at compile time.
var _ stencil.SampleSource = (*SelectorSource)(nil)

// SelectorSource yields the outer HTML of every node matching a CSS
// selector as a sample. Repeated page fragments (search results, table
// rows, product cards) learned this way converge on a template whose
// holes are the fragment's variable fields.
//
// Note that samples are the re-rendered markup of the parsed nodes, not
// raw input bytes, so extraction should run against snippets obtained
// the same way.
type SelectorSource struct {
	html     string
	selector string

	snippets map[string]string
	names    []string
	loaded   bool
}

// NewSelectorSource creates a source that selects snippets from the
// given HTML document.
func NewSelectorSource(html, selector string) *SelectorSource {
	return &SelectorSource{html: html, selector: selector}
}

func (s *SelectorSource) load() error {
	if s.loaded {
		return nil
	}

	matcher, err := cascadia.Compile(s.selector)
	if err != nil {
		return stencil.Errorf(stencil.EINVALID, "invalid selector %q: %v", s.selector, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s.html))
	if err != nil {
		return stencil.Errorf(stencil.EINVALID, "failed to parse HTML: %v", err)
	}

	s.snippets = make(map[string]string)
	doc.FindMatcher(matcher).Each(func(i int, sel *goquery.Selection) {
		outer, err := goquery.OuterHtml(sel)
		if err != nil {
			return
		}
		name := fmt.Sprintf("%s[%d]", s.selector, i)
		s.names = append(s.names, name)
		s.snippets[name] = outer
	})
	s.loaded = true
	return nil
}

// List returns one name per matching node, in document order.
func (s *SelectorSource) List(ctx context.Context) ([]string, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	return append([]string(nil), s.names...), nil
}

// Read returns the outer HTML of the named snippet.
func (s *SelectorSource) Read(ctx context.Context, name string) (string, error) {
	if err := s.load(); err != nil {
		return "", err
	}
	snippet, ok := s.snippets[name]
	if !ok {
		return "", stencil.Errorf(stencil.ENOTFOUND, "sample %q not found", name)
	}
	return snippet, nil
}
