package cmd

import (
	"time"

	"github.com/SathiskumarD/genseq/internal/genseq"
	"github.com/spf13/cobra"
)

// reverseCmd is for reversing records, or reverse complementing DNA records
var reverseCmd = &cobra.Command{
	Use:                        "reverse [seq]",
	Short:                      "Reverse records from a FASTA file or a sequence",
	Run:                        reverseExec,
	SuggestionsMinimumDistance: 2,
	Long: `
Reverse each input record's sequence and annotate its name with "--reversed".
With --complement the reverse complement is taken instead; the records must
then be over the DNA alphabet.`,
	Example: `  genseq reverse -i records.fa -o reversed.fa
  genseq reverse --complement ATTACA`,
	Aliases: []string{"rev"},
}

// reverseExec reverses (or reverse complements) the input records
func reverseExec(cmd *cobra.Command, args []string) {
	start := time.Now()
	records := readRecords(cmd, args)
	complement, _ := cmd.Flags().GetBool("complement")

	reversed := []genseq.SeqRecord{}
	for _, r := range records {
		if complement {
			dna, err := genseq.NewDNARecord(r.ID, r.Seq, "")
			if err != nil {
				stderr.Fatalln(err)
			}
			reversed = append(reversed, dna.ReverseComplement().SeqRecord)
			continue
		}
		reversed = append(reversed, r.Reverse().(genseq.SeqRecord))
	}

	writeRecords(cmd, reversed, start)
}

// set flags
func init() {
	reverseCmd.Flags().StringP("in", "i", "", "input file name with records <FASTA>")
	reverseCmd.Flags().StringP("out", "o", "", "output file name (.json for a results file)")
	reverseCmd.Flags().StringP("alphabet", "a", "", "name of the records' alphabet in the db")
	reverseCmd.Flags().BoolP("complement", "c", false, "reverse complement (DNA records only)")

	RootCmd.AddCommand(reverseCmd)
}
