// Package genseq is for the models and operations of sequence records.
// A record's sequence is checked against its alphabet on every construction
// and update, so an invalid record is never observable
package genseq

import (
	"strings"
	"unicode/utf8"
)

// Alphabet is a named set of single-rune symbols that a record's
// sequence is drawn from
type Alphabet struct {
	// Name of the alphabet, eg "dna". Matches its entry in the
	// alphabets database when it came from there
	Name string

	// symbols in first-seen order, for rendering
	symbols []rune

	members map[rune]bool
}

// NewAlphabet creates an Alphabet from a run of symbols, eg "ACGT".
// Duplicate symbols are kept once
func NewAlphabet(name, symbols string) Alphabet {
	a := Alphabet{
		Name:    name,
		members: make(map[rune]bool),
	}
	for _, s := range symbols {
		if a.members[s] {
			continue
		}
		a.members[s] = true
		a.symbols = append(a.symbols, s)
	}
	return a
}

// built-in alphabets, same entries the alphabets database is seeded with
var (
	DNA     = NewAlphabet("dna", "ACGT")
	RNA     = NewAlphabet("rna", "ACGU")
	Protein = NewAlphabet("protein", "ACDEFGHIKLMNPQRSTVWY*")
)

// Contains returns whether the symbol is in the alphabet
func (a Alphabet) Contains(s rune) bool {
	return a.members[s]
}

// Symbols returns the alphabet's symbols space-joined, eg "A C G T"
func (a Alphabet) Symbols() string {
	var b strings.Builder
	for i, s := range a.symbols {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(s)
	}
	return b.String()
}

// SeqRecord is a named sequence over an alphabet
type SeqRecord struct {
	// ID is a unique identifier for this record
	//
	// IDs from FASTA files are the header lines (minus ">")
	ID string

	// Alphabet the record's symbols are drawn from
	Alphabet Alphabet

	// the record's sequence
	Seq string
}

// NewSeqRecord validates and returns a new record. The zero record and
// a *ValidationError are returned if any symbol of seq is outside the
// alphabet, so a half-built record is never handed back
func NewSeqRecord(id string, alphabet Alphabet, seq string) (SeqRecord, error) {
	r := SeqRecord{ID: id, Alphabet: alphabet, Seq: seq}
	if err := r.validate(); err != nil {
		return SeqRecord{}, err
	}
	return r, nil
}

// validate checks every symbol of the sequence against the alphabet
func (r SeqRecord) validate() error {
	position := 0
	for _, s := range r.Seq {
		if !r.Alphabet.Contains(s) {
			return &ValidationError{
				ID:       r.ID,
				Symbol:   s,
				Position: position,
				Alphabet: r.Alphabet.Name,
			}
		}
		position++
	}
	return nil
}

// WithSeq returns a copy of the record with its sequence replaced.
// The new sequence is re-validated against the record's alphabet.
// The receiver is left as it was if validation fails
func (r SeqRecord) WithSeq(seq string) (SeqRecord, error) {
	return NewSeqRecord(r.ID, r.Alphabet, seq)
}

// Length returns the number of symbols in the record's sequence
func (r SeqRecord) Length() int {
	return utf8.RuneCountInString(r.Seq)
}

// Reverse returns a copy of the record with its sequence reversed and
// "--reversed" appended to its ID. Reversing twice restores the
// sequence but stacks the ID suffix. Reversing keeps every symbol of a
// valid record in its alphabet, so the invariant holds without a re-check
func (r SeqRecord) Reverse() Record {
	rev := r
	rev.ID += "--reversed"
	rev.Seq = reverse(r.Seq)
	return rev
}

// Index returns a new record with only the symbols in [start, end).
// Positions count symbols, are 0-indexed, and the end is exclusive. A
// *IndexError is returned, and the receiver untouched, if the range
// falls outside the sequence
func (r SeqRecord) Index(start, end int) (Record, error) {
	symbols := []rune(r.Seq)
	if start < 0 || end > len(symbols) || start > end {
		return nil, &IndexError{Start: start, End: end, Length: len(symbols)}
	}
	return NewSeqRecord(r.ID, r.Alphabet, string(symbols[start:end]))
}

// reverse a sequence's symbols
func reverse(seq string) string {
	s := []rune(seq)
	for i := 0; i < len(s)/2; i++ {
		j := len(s) - i - 1
		s[i], s[j] = s[j], s[i]
	}
	return string(s)
}
