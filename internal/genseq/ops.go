package genseq

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is the set of operations every record variant supports.
// DNARecord embeds SeqRecord, so a variant only implements the
// operations it changes and the rest promote from the base record
type Record interface {
	// Length is the number of symbols in the sequence
	Length() int

	// Reverse returns a record of the same variant with the sequence
	// reversed and the ID annotated
	Reverse() Record

	// Index returns a record of the same variant with the symbols in
	// [start, end) (0-indexed, end exclusive)
	Index(start, end int) (Record, error)

	// Render returns a multi-line summary of the record
	Render() string
}

// Sequence returns the sequence of any known record variant. Anything
// else falls through to what the name meant before records: whole
// numbers become the counting sequence "1 2 ... n", strings pass
// through unchanged, and other values are printed with fmt
func Sequence(v interface{}) string {
	switch v := v.(type) {
	case DNARecord:
		return v.Seq
	case *DNARecord:
		return v.Seq
	case SeqRecord:
		return v.Seq
	case *SeqRecord:
		return v.Seq
	default:
		return fallbackSequence(v)
	}
}

// fallbackSequence is the pre-record behavior of Sequence
func fallbackSequence(v interface{}) string {
	switch n := v.(type) {
	case int:
		return countingSequence(n)
	case int64:
		return countingSequence(int(n))
	case float64:
		if n == float64(int(n)) {
			return countingSequence(int(n))
		}
	case string:
		return n
	}
	return fmt.Sprint(v)
}

// countingSequence returns "1 2 ... n", or "" when n < 1
func countingSequence(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		if i > 1 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}
