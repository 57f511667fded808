package cmd

import (
	"time"

	"github.com/SathiskumarD/genseq/internal/genseq"
	"github.com/spf13/cobra"
)

// indexCmd is for subsetting records to a range of their symbols
var indexCmd = &cobra.Command{
	Use:                        "index [seq]",
	Short:                      "Subset records to the symbols in [start, end)",
	Run:                        indexExec,
	SuggestionsMinimumDistance: 2,
	Long: `
Subset each input record to the symbols in [start, end). Positions are
0-indexed and the end is exclusive: '-s 0 -e 3' keeps the first three symbols.
A range past the end of a record's sequence fails and leaves it unchanged.`,
	Example: `  genseq index -s 0 -e 3 ATTACA
  genseq index -i records.fa -s 2 -e 10 -o subset.fa`,
	Aliases: []string{"subset", "sub"},
}

// indexExec subsets each input record to the requested range
func indexExec(cmd *cobra.Command, args []string) {
	start := time.Now()
	records := readRecords(cmd, args)

	rangeStart, _ := cmd.Flags().GetInt("start")
	rangeEnd, _ := cmd.Flags().GetInt("end")

	subset := []genseq.SeqRecord{}
	for _, r := range records {
		sub, err := r.Index(rangeStart, rangeEnd)
		if err != nil {
			stderr.Fatalln(err)
		}
		subset = append(subset, sub.(genseq.SeqRecord))
	}

	writeRecords(cmd, subset, start)
}

// set flags
func init() {
	indexCmd.Flags().StringP("in", "i", "", "input file name with records <FASTA>")
	indexCmd.Flags().StringP("out", "o", "", "output file name (.json for a results file)")
	indexCmd.Flags().StringP("alphabet", "a", "", "name of the records' alphabet in the db")
	indexCmd.Flags().IntP("start", "s", 0, "first symbol of the range (0-indexed)")
	indexCmd.Flags().IntP("end", "e", 0, "end of the range (exclusive)")

	RootCmd.AddCommand(indexCmd)
}
