package genseq

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func Test_Fasta(t *testing.T) {
	long, err := NewSeqRecord("long", DNA, strings.Repeat("ACGT", 20))
	if err != nil {
		t.Fatal(err)
	}
	short, err := NewSeqRecord("short", DNA, "ATT")
	if err != nil {
		t.Fatal(err)
	}

	got := Fasta([]SeqRecord{long, short}, 60)

	want := ">long\n" +
		strings.Repeat("ACGT", 15) + "\n" +
		strings.Repeat("ACGT", 5) + "\n" +
		">short\nATT\n"
	if got != want {
		t.Errorf("Fasta() = %q, want %q", got, want)
	}

	// no wrapping when wrap < 1
	if got := Fasta([]SeqRecord{long}, 0); strings.Count(got, "\n") != 2 {
		t.Errorf("Fasta() with wrap=0 should not wrap, got %q", got)
	}

	// wrapping counts symbols, never splitting a multi-byte symbol
	greek, err := NewSeqRecord("greek", NewAlphabet("greek", "ΑΤ"), "ΑΤΑΤ")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Fasta([]SeqRecord{greek}, 2), ">greek\nΑΤ\nΑΤ\n"; got != want {
		t.Errorf("Fasta() = %q, want %q", got, want)
	}
}

func Test_Write_roundtrip(t *testing.T) {
	records, err := Read(filepath.Join("..", "..", "test", "input", "records.fa"), DNA)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "records.fa")
	if err := Write(out, records, 60); err != nil {
		t.Fatal(err)
	}

	reread, err := Read(out, DNA)
	if err != nil {
		t.Fatal(err)
	}

	if len(reread) != len(records) {
		t.Fatalf("reread %d records, want %d", len(reread), len(records))
	}
	for i := range records {
		if reread[i].Seq != records[i].Seq {
			t.Errorf("sequence of %s changed over a write/read", records[i].ID)
		}
	}
}

func Test_WriteJSON(t *testing.T) {
	r, err := NewSeqRecord("seq-1", DNA, "ATTACA")
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "result.json")
	if err := WriteJSON(out, []SeqRecord{r}, time.Now()); err != nil {
		t.Fatal(err)
	}

	dat, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	var result Output
	if err := json.Unmarshal(dat, &result); err != nil {
		t.Fatal(err)
	}

	if len(result.Records) != 1 {
		t.Fatalf("wrote %d records, want 1", len(result.Records))
	}
	if result.Records[0].ID != "seq-1" || result.Records[0].Length != 6 {
		t.Errorf("wrong record in the results file: %+v", result.Records[0])
	}
	if result.Time == "" {
		t.Error("missing time in the results file")
	}
}
