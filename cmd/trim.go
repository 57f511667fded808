package cmd

import (
	"strings"
	"time"

	"github.com/SathiskumarD/genseq/internal/genseq"
	"github.com/spf13/cobra"
)

// trimCmd is for trimming a sequencing adapter off DNA records
var trimCmd = &cobra.Command{
	Use:                        "trim",
	Short:                      "Trim an adapter off the start of DNA records",
	Run:                        trimExec,
	SuggestionsMinimumDistance: 2,
	Long: `
Remove the adapter sequence from the start of each DNA record that begins
with it. Records without the adapter are passed through unchanged and logged.`,
	Example: "  genseq trim -i reads.fa --adapter ATGA -o trimmed.fa",
}

// trimExec trims the adapter off each input DNA record
func trimExec(cmd *cobra.Command, args []string) {
	start := time.Now()

	adapter, _ := cmd.Flags().GetString("adapter")
	if adapter == "" {
		cmd.Help()
		stderr.Fatalln("must pass an adapter sequence.")
	}

	in, _ := cmd.Flags().GetString("in")
	if in == "" {
		cmd.Help()
		stderr.Fatalln("must pass a FASTA file of DNA records.")
	}

	records, err := genseq.ReadDNA(in, strings.ToUpper(adapter))
	if err != nil {
		stderr.Fatalln(err)
	}

	trimmed := []genseq.SeqRecord{}
	for _, r := range records {
		t, ok := r.TrimAdapter()
		if !ok {
			stderr.Printf("no adapter found at the start of %s\n", r.ID)
		}
		trimmed = append(trimmed, t.SeqRecord)
	}

	writeRecords(cmd, trimmed, start)
}

// set flags
func init() {
	trimCmd.Flags().StringP("in", "i", "", "input file name with DNA records <FASTA>")
	trimCmd.Flags().StringP("out", "o", "", "output file name (.json for a results file)")
	trimCmd.Flags().StringP("adapter", "d", "", "adapter sequence to trim, eg ATGA")

	RootCmd.AddCommand(trimCmd)
}
