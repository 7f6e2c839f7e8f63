package stencil

import "strings"

// match describes the longest substring common to two strings: its
// length and the byte offsets at which it starts in each string.
type match struct {
	n    int
	aOff int
	bOff int
}

// noMatch is returned when the two strings share no character at all.
var noMatch = match{n: 0, aOff: -1, bOff: -1}

// longestCommonSubstring finds the longest substring common to a and b
// using the classic dynamic-programming alignment. Cell (i, j) holds the
// length of the common suffix ending at a[i-1] and b[j-1]; only the
// previous row is retained.
//
// The running maximum is replaced only when strictly exceeded, so the
// result is the first maximal-length match in row-major scan order over
// a then b. This positional bias toward earlier characters of a is part
// of the merge contract and must not change. The offset in b is the
// first occurrence of the winning substring in b.
func longestCommonSubstring(a, b string) match {
	if len(a) == 0 || len(b) == 0 {
		return noMatch
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)

	best := 0
	aEnd := 0

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > best {
					best = cur[j]
					aEnd = i
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}

	if best == 0 {
		return noMatch
	}

	aOff := aEnd - best
	bOff := strings.Index(b, a[aOff:aEnd])

	return match{n: best, aOff: aOff, bOff: bOff}
}
