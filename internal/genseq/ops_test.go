package genseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	seq, err := NewSeqRecord("seq-1", DNA, "ATTACA")
	require.NoError(t, err)
	dna, err := NewDNARecord("read-1", "ATGATTACA", "ATGA")
	require.NoError(t, err)

	tests := []struct {
		name string
		v    interface{}
		want string
	}{
		{"sequence record", seq, "ATTACA"},
		{"sequence record pointer", &seq, "ATTACA"},
		{"dna record", dna, "ATGATTACA"},
		{"dna record pointer", &dna, "ATGATTACA"},

		// everything below falls through to the pre-record behavior
		{"int", 5, "1 2 3 4 5"},
		{"int one", 1, "1"},
		{"int zero", 0, ""},
		{"negative int", -3, ""},
		{"whole float", 3.0, "1 2 3"},
		{"string passes through", "ATTACA", "ATTACA"},
		{"bool prints", true, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sequence(tt.v))
		})
	}
}
