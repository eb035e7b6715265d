// Package codes implements the human-readable identifier scheme used for
// vendors (VDR001), users (USR001), notes (DBN001/CRN001) and line items
// (ITM001): a short prefix followed by a zero-padded decimal sequence.
package codes

import (
	"fmt"
	"strconv"
)

// prefixLen is the fixed length of every code prefix.
const prefixLen = 3

// padWidth is the minimum width of the numeric suffix. Sequences beyond 999
// widen naturally rather than erroring.
const padWidth = 3

// Format renders a sequence number under the given prefix.
func Format(prefix string, seq int64) string {
	return fmt.Sprintf("%s%0*d", prefix, padWidth, seq)
}

// NextCode computes the successor of the last allocated code. The prefix of
// the new code is supplied by the caller and need not match the prefix of the
// last code: note numbers share one sequence across DBN and CRN, so the last
// code's prefix merely reflects whichever note type was created most recently.
// An empty last code starts the sequence at 1. A suffix that does not parse
// as a number is treated as 0.
func NextCode(prefix, last string) string {
	return Format(prefix, SuffixOf(last)+1)
}

// SuffixOf extracts the numeric suffix of a code, returning 0 for codes that
// are empty, too short, or carry a non-numeric suffix.
func SuffixOf(code string) int64 {
	if len(code) <= prefixLen {
		return 0
	}
	n, err := strconv.ParseInt(code[prefixLen:], 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
