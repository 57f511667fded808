package cmd

import (
	"github.com/spf13/cobra"
)

// findCmd is for finding alphabets in the db by their name.
var findCmd = &cobra.Command{
	Use:                        "find",
	Short:                      "Find alphabets in the alphabets database",
	SuggestionsMinimumDistance: 2,
	Long: `Find alphabets by name.
If there is no exact match, similar entries are returned`,
	Aliases: []string{"ls", "list"},
}

// alphabetFindCmd is for reading alphabets (close to the one requested) from the db.
var alphabetFindCmd = &cobra.Command{
	Use:                        "alphabet [name]",
	Short:                      "Find alphabets in the alphabets database",
	Run:                        alphabetDB.ReadCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  genseq find alphabet dna",
	Long: `Find alphabets in the database that are similar to [name].
Writes each alphabet to the stdout with its name and symbols.

'genseq find alphabet' without any arguments logs all alphabets available.`,
	Aliases: []string{"alphabets"},
}

// set flags
func init() {
	findCmd.AddCommand(alphabetFindCmd)

	RootCmd.AddCommand(findCmd)
}
