package genseq

import (
	"fmt"
	"strings"
)

// Render returns the record as four labeled lines: its name, computed
// length, space-joined alphabet, and sequence. No truncation, callers
// listing many records should slice the sequence themselves
func (r SeqRecord) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", r.ID)
	fmt.Fprintf(&b, "Length: %d\n", r.Length())
	fmt.Fprintf(&b, "Alphabet: %s\n", r.Alphabet.Symbols())
	fmt.Fprintf(&b, "Sequence: %s\n", r.Seq)
	return b.String()
}

// Render adds the adapter beneath the base record's lines
func (r DNARecord) Render() string {
	return r.SeqRecord.Render() + fmt.Sprintf("Adapter: %s\n", r.Adapter)
}
