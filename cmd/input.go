package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/SathiskumarD/genseq/config"
	"github.com/SathiskumarD/genseq/internal/genseq"
	"github.com/spf13/cobra"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// readRecords parses the input records from the file behind the "in"
// flag or, if a bare sequence was passed, from the first argument.
// The alphabet comes from the "alphabet" flag or the settings default
func readRecords(cmd *cobra.Command, args []string) []genseq.SeqRecord {
	c := config.New()

	name, _ := cmd.Flags().GetString("alphabet")
	if name == "" {
		name = c.Alphabet
	}
	alphabet, err := alphabetDB.Find(name)
	if err != nil {
		stderr.Fatalln(err)
	}

	if len(args) > 0 {
		record, err := genseq.NewSeqRecord("arg", alphabet, strings.ToUpper(args[0]))
		if err != nil {
			stderr.Fatalln(err)
		}
		return []genseq.SeqRecord{record}
	}

	in, err := cmd.Flags().GetString("in")
	if in == "" || err != nil {
		cmd.Help()
		stderr.Fatalln("must pass a FASTA file or a sequence as an argument.")
	}

	records, err := genseq.Read(in, alphabet)
	if err != nil {
		stderr.Fatalln(err)
	}
	return records
}

// writeRecords writes the records to the file behind the "out" flag:
// JSON for a .json path, FASTA otherwise. Without the flag the records
// are printed to stdout as FASTA
func writeRecords(cmd *cobra.Command, records []genseq.SeqRecord, start time.Time) {
	c := config.New()

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		fmt.Print(genseq.Fasta(records, c.FastaWrap))
		return
	}

	if strings.HasSuffix(out, ".json") {
		if err := genseq.WriteJSON(out, records, start); err != nil {
			stderr.Fatalln(err)
		}
		return
	}

	if err := genseq.Write(out, records, c.FastaWrap); err != nil {
		stderr.Fatalln(err)
	}
}
