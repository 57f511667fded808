package cmd

import (
	"github.com/spf13/cobra"
)

// setCmd is for creating or updating entries in the alphabets database
var setCmd = &cobra.Command{
	Use:                        "set [alphabet]",
	Short:                      "Set an alphabet",
	SuggestionsMinimumDistance: 1,
	Long: `
Create/update an alphabet with its name and its run of symbols.
Set alphabets can be passed to the --alphabet flag of every record command`,
	Aliases: []string{"add", "update"},
}

// alphabetSetCmd is for adding a new alphabet to the alphabets db
var alphabetSetCmd = &cobra.Command{
	Use:                        "alphabet [name] [symbols]",
	Short:                      "Add or update an alphabet in the alphabets database",
	Run:                        alphabetDB.SetCmd,
	SuggestionsMinimumDistance: 2,
	Long:                       "\nSet an alphabet in the database so records can be validated against it",
	Aliases:                    []string{"add", "update"},
	Example:                    "  genseq set alphabet iupac-dna ACGTRYSWKMBDHVN",
}

// set flags
func init() {
	setCmd.AddCommand(alphabetSetCmd)

	RootCmd.AddCommand(setCmd)
}
