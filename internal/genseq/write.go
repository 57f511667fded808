package genseq

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Fasta formats the records as multi-FASTA, sequence lines wrapped
// after wrap symbols (no wrapping when wrap < 1)
func Fasta(records []SeqRecord, wrap int) string {
	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, ">%s\n", r.ID)

		seq := []rune(r.Seq)
		w := wrap
		if w < 1 {
			w = len(seq)
		}
		for len(seq) > w && w > 0 {
			b.WriteString(string(seq[:w]))
			b.WriteByte('\n')
			seq = seq[w:]
		}
		b.WriteString(string(seq))
		b.WriteByte('\n')
	}
	return b.String()
}

// Write the records to a FASTA file at path
func Write(path string, records []SeqRecord, wrap int) error {
	if err := os.WriteFile(path, []byte(Fasta(records, wrap)), 0644); err != nil {
		return fmt.Errorf("failed to write records to %s: %w", path, err)
	}
	return nil
}

// RecordJSON is a single record in a JSON results file
type RecordJSON struct {
	// ID of the record
	ID string `json:"id"`

	// Alphabet name the record is over
	Alphabet string `json:"alphabet"`

	// the record's sequence
	Seq string `json:"seq"`

	// Length of the sequence
	Length int `json:"length"`
}

// Output is the result written after a genseq command
type Output struct {
	// Time, ex:
	// "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// Records produced by the command
	Records []RecordJSON `json:"records"`
}

// WriteJSON writes the records and timing meta to a JSON file at path
func WriteJSON(path string, records []SeqRecord, start time.Time) error {
	out := Output{
		Time:      start.Format("2006-01-02 15:04:05"),
		Execution: time.Since(start).Seconds(),
	}
	for _, r := range records {
		out.Records = append(out.Records, RecordJSON{
			ID:       r.ID,
			Alphabet: r.Alphabet.Name,
			Seq:      r.Seq,
			Length:   r.Length(),
		})
	}

	output, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize the output: %w", err)
	}

	if err := os.WriteFile(path, output, 0644); err != nil {
		return fmt.Errorf("failed to write the results to %s: %w", path, err)
	}
	return nil
}
