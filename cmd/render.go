package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// renderCmd is for printing a human readable summary of each input record
var renderCmd = &cobra.Command{
	Use:                        "render [seq]",
	Short:                      "Render a summary of records from a FASTA file or a sequence",
	Run:                        renderExec,
	SuggestionsMinimumDistance: 2,
	Long: `
Print each input record as labeled lines: its name, length, alphabet and
sequence. Every record is validated against its alphabet before it's rendered,
so a sequence with symbols outside the alphabet fails with the offending
symbol and position.`,
	Example: `  genseq render -i records.fa
  genseq render ATTACA
  genseq render -a protein MGSSHHHH`,
}

// renderExec reads the input records and prints each record's summary
func renderExec(cmd *cobra.Command, args []string) {
	records := readRecords(cmd, args)

	for i, r := range records {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(r.Render())
	}
}

// set flags
func init() {
	renderCmd.Flags().StringP("in", "i", "", "input file name with records <FASTA>")
	renderCmd.Flags().StringP("alphabet", "a", "", "name of the records' alphabet in the db")

	RootCmd.AddCommand(renderCmd)
}
