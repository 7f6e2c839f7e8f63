package stencil

import "strings"

// Marker is the reserved sentinel byte that denotes a hole in a brain.
// It is outside the normal input alphabet; any occurrence in input text
// is stripped before learning or matching so it can never be mistaken
// for literal content.
const Marker byte = 0x1f

const markerString = "\x1f"

// DefaultHoleMarker is the conventional display marker for holes.
const DefaultHoleMarker = "{{ HOLE }}"

// LearnResult reports the effect of a single Learn call.
type LearnResult int

// LearnResult values.
const (
	// LearnInitial means the sample was the first one and became the
	// brain verbatim.
	LearnInitial LearnResult = iota

	// LearnHolesIncreased means merging the sample added holes.
	LearnHolesIncreased

	// LearnHolesUnchanged means merging the sample added no holes.
	LearnHolesUnchanged
)

// String returns a display name for the result.
func (r LearnResult) String() string {
	switch r {
	case LearnInitial:
		return "initial"
	case LearnHolesIncreased:
		return "holes_increased"
	case LearnHolesUnchanged:
		return "holes_unchanged"
	default:
		return "unknown"
	}
}

// Template learns the shared structure of a growing set of sample texts.
// Its brain is a buffer of literal runs and hole sentinels, refined by
// each Learn call. A Template is not safe for concurrent use; Learn
// mutates the brain in place.
type Template struct {
	brain     string
	learned   bool
	tolerance int
	version   int
	cleaner   Cleaner

	// matcher is compiled lazily from the brain and discarded whenever
	// the brain changes.
	matcher *matcher
}

// Option configures a Template.
type Option func(*Template)

// WithTolerance sets the minimum common-substring length required for
// text to be kept as shared literal content during merging. Matches of
// length <= tolerance are forced into holes, suppressing spurious short
// coincidental matches. Negative values are treated as zero.
func WithTolerance(n int) Option {
	return func(t *Template) {
		if n < 0 {
			n = 0
		}
		t.tolerance = n
	}
}

// WithBrain seeds the template with a previously serialized brain.
func WithBrain(brain string) Option {
	return func(t *Template) {
		t.brain = brain
		t.learned = true
	}
}

// WithCleaner sets a pre-filter applied to every sample before the
// built-in normalization (line endings, sentinel stripping) runs.
func WithCleaner(c Cleaner) Option {
	return func(t *Template) {
		t.cleaner = c
	}
}

// NewTemplate returns a new Template with no learned samples unless
// seeded via WithBrain.
func NewTemplate(opts ...Option) *Template {
	t := &Template{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// clean applies the pluggable pre-filter, normalizes line endings, and
// strips any sentinel bytes from the input.
func (t *Template) clean(text string) string {
	if t.cleaner != nil {
		text = t.cleaner.Clean(text)
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, markerString, "")
}

// Learn absorbs a sample text. The first sample becomes the brain
// verbatim; every later sample is merged into the brain, which can only
// preserve or grow the hole count. Learn never fails.
func (t *Template) Learn(text string) LearnResult {
	text = t.clean(text)
	t.version++
	t.matcher = nil

	if !t.learned {
		t.brain = text
		t.learned = true
		return LearnInitial
	}

	before := t.NumHoles()
	t.brain = makeTemplate(t.brain, text, t.tolerance)
	if t.NumHoles() > before {
		return LearnHolesIncreased
	}
	return LearnHolesUnchanged
}

// AsText renders the brain with every hole sentinel replaced by marker.
// It returns an empty string if nothing has been learned.
func (t *Template) AsText(marker string) string {
	if !t.learned {
		return ""
	}
	return strings.ReplaceAll(t.brain, markerString, marker)
}

// NumHoles returns the number of holes in the brain.
func (t *Template) NumHoles() int {
	if !t.learned {
		return 0
	}
	return strings.Count(t.brain, markerString)
}

// Version returns the number of Learn calls made so far. It is
// monotonic and used only for observability.
func (t *Template) Version() int {
	return t.version
}

// Tolerance returns the configured tolerance.
func (t *Template) Tolerance() int {
	return t.tolerance
}

// Learned reports whether the template has absorbed at least one sample.
func (t *Template) Learned() bool {
	return t.learned
}

// Brain returns the canonical serialized form of the template: literal
// runs with one sentinel byte per hole.
func (t *Template) Brain() string {
	return t.brain
}
