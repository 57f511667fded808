package genseq

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Read parses the FASTA file at path into records over the alphabet.
// Sequence lines between headers are joined and upper-cased before
// they're validated, so an invalid file surfaces a *ValidationError
// naming the record and symbol. Records with an empty header get a
// generated ID
func Read(path string, alphabet Alphabet) ([]SeqRecord, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	lines := strings.Split(string(dat), "\n")

	// find the header lines, the IDs
	var headerIndices []int
	var ids []string
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)
			ids = append(ids, strings.TrimSpace(line[1:]))
		}
	}

	if len(headerIndices) < 1 {
		return nil, fmt.Errorf("failed to parse %s: no FASTA headers", path)
	}

	// accumulate the sequences from between the headers
	var seqs []string
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}
		seqLines := lines[headerIndex+1 : nextLine]
		seq := strings.Join(seqLines, "")
		seq = strings.Join(strings.Fields(seq), "") // strip whitespace
		seqs = append(seqs, strings.ToUpper(seq))
	}

	// build the records, validating each
	var records []SeqRecord
	for i, id := range ids {
		if id == "" {
			id = "genseq-" + uuid.NewString()[:8]
		}

		record, err := NewSeqRecord(id, alphabet, seqs[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// ReadDNA parses the FASTA file at path into DNA records that all
// carry the passed adapter sequence
func ReadDNA(path, adapter string) ([]DNARecord, error) {
	base, err := Read(path, DNA)
	if err != nil {
		return nil, err
	}

	var records []DNARecord
	for _, r := range base {
		record, err := NewDNARecord(r.ID, r.Seq, adapter)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
