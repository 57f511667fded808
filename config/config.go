// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// AlphabetDB is the path to the alphabets database. One alphabet per
// line: its name and its symbols, tab separated
var AlphabetDB = filepath.Join(Root(), "alphabets.tsv")

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml and those available from the command line
type Config struct {
	// name of the alphabet records are validated against when the
	// --alphabet flag isn't passed
	Alphabet string `mapstructure:"alphabet"`

	// column that FASTA sequence lines are wrapped at
	FastaWrap int `mapstructure:"fasta-wrap"`

	// number of symbols shown per entry when listing the alphabets db
	ListWidth int `mapstructure:"list-width"`
}

// Setup reads settings in from the settings file, if there is one, and
// the environment. Called by cobra before any command runs
func Setup() {
	viper.SetConfigName("settings")
	viper.AddConfigPath(Root())
	viper.SetEnvPrefix("GENSEQ")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("failed to read settings file: %v", err)
		}
	}
}

// New returns a new Config struct populated by Viper settings (either
// from the local settings.yaml) and/or command line arguments
func New() Config {
	viper.SetDefault("alphabet", "dna")
	viper.SetDefault("fasta-wrap", 60)
	viper.SetDefault("list-width", 20)

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}
	return c
}

// Root is the directory holding genseq's settings and databases
func Root() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatal(err)
	}

	dir := filepath.Join(home, ".genseq")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatal(err)
	}
	return dir
}
