package stencil

import "strings"

// mergeFrame is a unit of pending work for makeTemplate. A resolved
// frame carries text to emit verbatim; an unresolved frame carries a
// pair of spans still to be aligned.
type mergeFrame struct {
	lit      string
	tpl      string
	smp      string
	resolved bool
}

// makeTemplate combines the current template with a new sample, turning
// everything that is not provably shared literal text into a hole.
//
// The divide and conquer is driven by an explicit work stack rather than
// call-stack recursion, so stack usage stays bounded on pathological
// inputs (many short alternating matches). Frames are pushed right
// side first so output is produced strictly left to right.
//
// A common substring of length <= tolerance is treated as no match and
// collapses the whole span into a single hole.
func makeTemplate(tpl, smp string, tolerance int) string {
	var b strings.Builder
	b.Grow(len(tpl))

	stack := []mergeFrame{{tpl: tpl, smp: smp}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.resolved {
			b.WriteString(f.lit)
			continue
		}

		if f.tpl == "" && f.smp == "" {
			continue
		}
		if f.tpl == "" || f.smp == "" {
			b.WriteByte(Marker)
			continue
		}

		m := longestCommonSubstring(f.tpl, f.smp)
		if m.n <= tolerance {
			b.WriteByte(Marker)
			continue
		}

		aEnd := m.aOff + m.n
		bEnd := m.bOff + m.n

		// Push in reverse order: right, matched literal, left.
		switch {
		case aEnd < len(f.tpl) && bEnd < len(f.smp):
			stack = append(stack, mergeFrame{tpl: f.tpl[aEnd:], smp: f.smp[bEnd:]})
		case aEnd < len(f.tpl) || bEnd < len(f.smp):
			stack = append(stack, mergeFrame{lit: markerString, resolved: true})
		}

		stack = append(stack, mergeFrame{lit: f.tpl[m.aOff:aEnd], resolved: true})

		switch {
		case m.aOff > 0 && m.bOff > 0:
			stack = append(stack, mergeFrame{tpl: f.tpl[:m.aOff], smp: f.smp[:m.bOff]})
		case m.aOff > 0 || m.bOff > 0:
			stack = append(stack, mergeFrame{lit: markerString, resolved: true})
		}
	}

	return b.String()
}
