package cmd

import (
	"github.com/spf13/cobra"
)

// deleteCmd is for removing entries from the alphabets database
var deleteCmd = &cobra.Command{
	Use:                        "delete [alphabet]",
	Short:                      "Delete an alphabet",
	SuggestionsMinimumDistance: 2,
	Long:                       `Delete an alphabet from the database by name.`,
	Aliases:                    []string{"rm", "remove"},
}

// alphabetDeleteCmd is for deleting alphabets from the alphabets db
var alphabetDeleteCmd = &cobra.Command{
	Use:                        "alphabet [name]",
	Short:                      "Delete an alphabet from the alphabets database",
	Run:                        alphabetDB.DeleteCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"remove"},
	Example:                    "  genseq delete alphabet iupac-dna",
	Long: `Delete an alphabet from the database by its name.
If no such alphabet exists in the database, that's logged to stdout.`,
}

// set flags
func init() {
	deleteCmd.AddCommand(alphabetDeleteCmd)

	RootCmd.AddCommand(deleteCmd)
}
