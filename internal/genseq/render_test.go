package genseq

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeqRecord_Render(t *testing.T) {
	r, err := NewSeqRecord("BBa_B0034", DNA, "AAAGAGGAGAAA")
	require.NoError(t, err)

	out := r.Render()

	// labeled lines in a fixed order
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Name: "))
	assert.True(t, strings.HasPrefix(lines[1], "Length: "))
	assert.True(t, strings.HasPrefix(lines[2], "Alphabet: "))
	assert.True(t, strings.HasPrefix(lines[3], "Sequence: "))

	g := goldie.New(t)
	g.Assert(t, "render_seq", []byte(out))
}

func TestDNARecord_Render(t *testing.T) {
	r, err := NewDNARecord("read-1", "ATGATTACA", "ATGA")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "render_dna", []byte(r.Render()))
}
