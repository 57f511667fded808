package genseq

import "fmt"

// ValidationError is returned when a record's sequence holds a symbol
// outside its alphabet. The record the caller held before the failed
// construction or update is unchanged
type ValidationError struct {
	// ID of the offending record
	ID string

	// Symbol that's missing from the alphabet
	Symbol rune

	// Position of the symbol in the sequence, counted in symbols (0-indexed)
	Position int

	// Alphabet name the sequence was checked against
	Alphabet string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(
		"invalid record %s: symbol %q at position %d is not in the %s alphabet",
		e.ID, e.Symbol, e.Position, e.Alphabet,
	)
}

// IndexError is returned when a subsequence range falls outside a
// record's sequence
type IndexError struct {
	// the requested range, counted in symbols (0-indexed, end exclusive)
	Start int
	End   int

	// Length of the sequence the range was applied to, in symbols
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf(
		"index [%d,%d) out of range for a sequence of length %d",
		e.Start, e.End, e.Length,
	)
}
