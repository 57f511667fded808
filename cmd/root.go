// Package cmd is for command line interactions with the genseq application
package cmd

import (
	"log"

	"github.com/SathiskumarD/genseq/config"
	"github.com/SathiskumarD/genseq/internal/genseq"
	"github.com/spf13/cobra"
)

var alphabetDB = genseq.NewAlphabetDB()

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "genseq",
	Short: `Validate, transform and render sequence records.
Records are checked against their alphabet on every construction and change`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(config.Setup)
}
