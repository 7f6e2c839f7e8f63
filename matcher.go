package stencil

import (
	"regexp"
	"strings"
)

// matcher is a compiled brain: literal runs anchored verbatim, holes as
// lazily-sized dot-all gaps. It stays valid for one brain version.
type matcher struct {
	re      *regexp.Regexp
	version int
}

// compileBrain converts a brain into an anchored matching procedure.
// Every literal run is quoted; every sentinel becomes a non-greedy gap
// that may span newlines. The whole input must decompose into the
// brain's literal/hole segments with nothing left over at either end.
func compileBrain(brain string) (*regexp.Regexp, error) {
	pattern := strings.ReplaceAll(regexp.QuoteMeta(brain), markerString, "(.*?)")
	return regexp.Compile(`(?s)^` + pattern + `$`)
}

// Extract matches text against the template and returns the hole
// contents in left-to-right order. Texts that were absorbed into a
// hole-free template yield an empty sequence. Returns ENOMATCH if the
// template is uninitialized or the text cannot be fully aligned; a
// failed extraction leaves the template untouched.
func (t *Template) Extract(text string) ([]string, error) {
	if !t.learned {
		return nil, Errorf(ENOMATCH, "template has not learned any samples yet")
	}

	if t.matcher == nil || t.matcher.version != t.version {
		re, err := compileBrain(t.brain)
		if err != nil {
			return nil, Errorf(EINTERNAL, "failed to compile template: %v", err)
		}
		t.matcher = &matcher{re: re, version: t.version}
	}

	text = t.clean(text)

	m := t.matcher.re.FindStringSubmatch(text)
	if m == nil {
		return nil, Errorf(ENOMATCH, "text does not match template")
	}
	return m[1:], nil
}

// ExtractDict extracts hole contents and pairs them with fieldNames by
// position. An empty field name skips its hole. If the two sequences
// differ in length, only the overlapping prefix is paired; extra values
// or extra names are dropped silently.
func (t *Template) ExtractDict(text string, fieldNames []string) (map[string]string, error) {
	values, err := t.Extract(text)
	if err != nil {
		return nil, err
	}

	n := len(values)
	if len(fieldNames) < n {
		n = len(fieldNames)
	}

	out := make(map[string]string, n)
	for i := 0; i < n; i++ {
		if fieldNames[i] == "" {
			continue
		}
		out[fieldNames[i]] = values[i]
	}
	return out, nil
}
