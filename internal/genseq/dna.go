package genseq

import "strings"

// DNARecord is a SeqRecord over the DNA alphabet with the sequencing
// adapter that was (or still is) on the 5' end of the read
type DNARecord struct {
	SeqRecord

	// Adapter sequence, validated against the DNA alphabet like Seq
	Adapter string
}

// NewDNARecord validates and returns a new DNA record. Both the
// sequence and the adapter must be made of DNA alphabet symbols
func NewDNARecord(id, seq, adapter string) (DNARecord, error) {
	base, err := NewSeqRecord(id, DNA, seq)
	if err != nil {
		return DNARecord{}, err
	}

	position := 0
	for _, s := range adapter {
		if !DNA.Contains(s) {
			return DNARecord{}, &ValidationError{
				ID:       id,
				Symbol:   s,
				Position: position,
				Alphabet: DNA.Name,
			}
		}
		position++
	}

	return DNARecord{SeqRecord: base, Adapter: adapter}, nil
}

// Reverse returns a copy with the sequence reversed and the ID
// annotated, keeping the adapter as is
func (r DNARecord) Reverse() Record {
	rev := r.SeqRecord.Reverse().(SeqRecord)
	return DNARecord{SeqRecord: rev, Adapter: r.Adapter}
}

// Index returns a new DNA record with only the symbols in [start, end).
// Same range convention and *IndexError conditions as SeqRecord.Index
func (r DNARecord) Index(start, end int) (Record, error) {
	sub, err := r.SeqRecord.Index(start, end)
	if err != nil {
		return nil, err
	}
	return DNARecord{SeqRecord: sub.(SeqRecord), Adapter: r.Adapter}, nil
}

var dnaComplement = map[byte]byte{
	'A': 'T',
	'T': 'A',
	'G': 'C',
	'C': 'G',
}

// Complement returns a copy with each base complemented
func (r DNARecord) Complement() DNARecord {
	comp := make([]byte, len(r.Seq))
	for i := 0; i < len(r.Seq); i++ {
		comp[i] = dnaComplement[r.Seq[i]]
	}

	c := r
	c.Seq = string(comp)
	return c
}

// ReverseComplement returns a copy with the sequence's reverse
// complement and the ID annotated like Reverse
func (r DNARecord) ReverseComplement() DNARecord {
	rc := r.Complement()
	rc.Seq = reverse(rc.Seq)
	rc.ID += "--reversed"
	return rc
}

// GC returns the record's GC fraction, 0 for an empty sequence
func (r DNARecord) GC() float64 {
	if len(r.Seq) == 0 {
		return 0
	}

	gc := 0
	for i := 0; i < len(r.Seq); i++ {
		if r.Seq[i] == 'G' || r.Seq[i] == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(r.Seq))
}

// TrimAdapter removes the record's adapter from the start of its
// sequence. The second return is false, and the record returned as is,
// when the sequence doesn't begin with the adapter or no adapter is set
func (r DNARecord) TrimAdapter() (DNARecord, bool) {
	if r.Adapter == "" || !strings.HasPrefix(r.Seq, r.Adapter) {
		return r, false
	}

	trimmed := r
	trimmed.Seq = r.Seq[len(r.Adapter):]
	return trimmed, true
}

// Transcribe returns the record's RNA transcript: same sequence with
// thymine swapped for uracil, over the RNA alphabet
func (r DNARecord) Transcribe() (SeqRecord, error) {
	return NewSeqRecord(r.ID, RNA, strings.ReplaceAll(r.Seq, "T", "U"))
}
