package genseq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDNARecord(t *testing.T) {
	r, err := NewDNARecord("read-1", "ATGATTACA", "ATGA")
	require.NoError(t, err)
	assert.Equal(t, "ATGATTACA", r.Seq)
	assert.Equal(t, "ATGA", r.Adapter)
	assert.Equal(t, "dna", r.Alphabet.Name)

	_, err = NewDNARecord("read-2", "ATGAUUACA", "ATGA")
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "sequence validated against the DNA alphabet")
	assert.Equal(t, 'U', vErr.Symbol)

	_, err = NewDNARecord("read-3", "ATGATTACA", "AXGA")
	require.True(t, errors.As(err, &vErr), "adapter validated like the sequence")
	assert.Equal(t, 'X', vErr.Symbol)
	assert.Equal(t, 1, vErr.Position)
}

// a DNA record exposes the base record's operations with the same contract
func TestDNARecord_inheritedOps(t *testing.T) {
	r, err := NewDNARecord("read-1", "ATGATTACA", "ATGA")
	require.NoError(t, err)

	assert.Equal(t, 9, r.Length())

	rev, ok := r.Reverse().(DNARecord)
	require.True(t, ok, "Reverse keeps the DNA variant")
	assert.Equal(t, "ACATTAGTA", rev.Seq)
	assert.Equal(t, "read-1--reversed", rev.ID)
	assert.Equal(t, "ATGA", rev.Adapter, "adapter survives a reversal")
	assert.Equal(t, r.Seq, rev.Reverse().(DNARecord).Seq)

	sub, err := r.Index(0, 4)
	require.NoError(t, err)
	subRecord, ok := sub.(DNARecord)
	require.True(t, ok, "Index keeps the DNA variant")
	assert.Equal(t, "ATGA", subRecord.Seq)
	assert.Equal(t, "ATGA", subRecord.Adapter)

	_, err = r.Index(0, 100)
	var iErr *IndexError
	require.True(t, errors.As(err, &iErr))
}

func TestDNARecord_Complement(t *testing.T) {
	r, err := NewDNARecord("read-1", "ATGC", "")
	require.NoError(t, err)

	assert.Equal(t, "TACG", r.Complement().Seq)

	rc := r.ReverseComplement()
	assert.Equal(t, "GCAT", rc.Seq)
	assert.Equal(t, "read-1--reversed", rc.ID)

	// the reverse complement of the reverse complement is the sequence
	assert.Equal(t, r.Seq, rc.ReverseComplement().Seq)
}

func TestDNARecord_GC(t *testing.T) {
	tests := []struct {
		seq  string
		want float64
	}{
		{"", 0},
		{"ATAT", 0},
		{"GGCC", 1},
		{"ATGC", 0.5},
	}
	for _, tt := range tests {
		r, err := NewDNARecord("test", tt.seq, "")
		require.NoError(t, err)
		assert.Equal(t, tt.want, r.GC(), "GC of %s", tt.seq)
	}
}

func TestDNARecord_TrimAdapter(t *testing.T) {
	r, err := NewDNARecord("read-1", "ATGATTACA", "ATGA")
	require.NoError(t, err)

	trimmed, ok := r.TrimAdapter()
	assert.True(t, ok)
	assert.Equal(t, "TTACA", trimmed.Seq)
	assert.Equal(t, "ATGATTACA", r.Seq, "receiver unchanged by a trim")

	// the trimmed sequence no longer starts with the adapter
	_, ok = trimmed.TrimAdapter()
	assert.False(t, ok)

	noAdapter, err := NewDNARecord("read-2", "ATGATTACA", "")
	require.NoError(t, err)
	same, ok := noAdapter.TrimAdapter()
	assert.False(t, ok)
	assert.Equal(t, noAdapter.Seq, same.Seq)
}

func TestDNARecord_Transcribe(t *testing.T) {
	r, err := NewDNARecord("read-1", "ATGATTACA", "")
	require.NoError(t, err)

	rna, err := r.Transcribe()
	require.NoError(t, err)
	assert.Equal(t, "AUGAUUACA", rna.Seq)
	assert.Equal(t, "rna", rna.Alphabet.Name)
}
