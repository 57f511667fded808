package genseq

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/SathiskumarD/genseq/config"
	"github.com/spf13/cobra"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// seedAlphabets are written to a new alphabets database
var seedAlphabets = [][2]string{
	{"dna", "ACGT"},
	{"rna", "ACGU"},
	{"protein", "ACDEFGHIKLMNPQRSTVWY*"},
}

// AlphabetDB is a struct for accessing genseq's alphabets db
type AlphabetDB struct {
	// alphabets is a map between an alphabet's name and its symbols
	alphabets map[string]string
}

// NewAlphabetDB returns a new copy of the alphabets db. The db file is
// created and seeded with the built-in alphabets if it doesn't exist
func NewAlphabetDB() *AlphabetDB {
	if _, err := os.Stat(config.AlphabetDB); os.IsNotExist(err) {
		var seed strings.Builder
		for _, a := range seedAlphabets {
			seed.WriteString(a[0] + "\t" + a[1] + "\n")
		}
		if err := os.WriteFile(config.AlphabetDB, []byte(seed.String()), 0644); err != nil {
			stderr.Fatal(err)
		}
	}

	alphabetFile, err := os.Open(config.AlphabetDB)
	if err != nil {
		stderr.Fatal(err)
	}

	alphabets := make(map[string]string)
	scanner := bufio.NewScanner(alphabetFile)
	for scanner.Scan() {
		columns := strings.Split(scanner.Text(), "\t")
		if len(columns) < 2 {
			continue
		}
		alphabets[columns[0]] = columns[1] // alphabet name = symbols
	}

	if err := alphabetFile.Close(); err != nil {
		stderr.Fatal(err)
	}

	return &AlphabetDB{alphabets: alphabets}
}

// Find returns the named alphabet from the db
func (d *AlphabetDB) Find(name string) (Alphabet, error) {
	symbols, contained := d.alphabets[name]
	if !contained {
		return Alphabet{}, fmt.Errorf(
			"failed to find %s in the alphabets database (%s), check 'genseq find alphabet'",
			name, config.AlphabetDB,
		)
	}
	return NewAlphabet(name, symbols), nil
}

// ReadCmd returns alphabets that are similar in name to the alphabet requested.
// Without an argument, every alphabet in the db is listed
func (d *AlphabetDB) ReadCmd(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)

	if len(args) < 1 {
		// no alphabet name passed, log all of them
		names := []string{}
		for name := range d.alphabets {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			return strings.ToLower(names[i]) < strings.ToLower(names[j])
		})

		// print their names and the first few symbols
		c := config.New()
		for _, name := range names {
			symbols := d.alphabets[name]
			if runes := []rune(symbols); len(runes) > c.ListWidth {
				symbols = string(runes[:c.ListWidth]) + "..."
			}
			fmt.Fprintf(w, "%s\t%s\n", name, symbols)
		}

		w.Flush()
		return
	}

	name := strings.Join(args, " ")

	// check for an exact match first
	if symbols, exactMatch := d.alphabets[name]; exactMatch {
		fmt.Fprintf(w, "%s\t%s\n", name, symbols)
		w.Flush()
		return
	}

	ldCutoff := len(name) / 3
	if 2 > ldCutoff {
		ldCutoff = 2
	}

	matches := []string{}
	for aName, aSymbols := range d.alphabets {
		if strings.Contains(aName, name) || ld(name, aName, true) <= ldCutoff {
			matches = append(matches, aName+"\t"+aSymbols)
		}
	}
	sort.Strings(matches)

	if len(matches) < 1 {
		fmt.Fprintf(w, "failed to find any alphabets for %s\n", name)
	} else {
		fmt.Fprintf(w, "%s\n", strings.Join(matches, "\n"))
	}
	w.Flush()
}

// SetCmd sets the alphabet's symbols in the database (or creates it if
// it isn't in the alphabets db)
func (d *AlphabetDB) SetCmd(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		stderr.Fatalf("expecting two args: an alphabet name and its symbols. %d passed\n", len(args))
	}

	name := args[0]
	symbols := args[len(args)-1]
	if len(args) > 2 {
		name = strings.Join(args[:len(args)-1], " ")
	}

	alphabetFile, err := os.Open(config.AlphabetDB)
	if err != nil {
		stderr.Fatal(err)
	}

	var output strings.Builder
	updated := false
	scanner := bufio.NewScanner(alphabetFile)
	for scanner.Scan() {
		columns := strings.Split(scanner.Text(), "\t")
		if columns[0] == name {
			output.WriteString(fmt.Sprintf("%s\t%s\n", name, symbols))
			updated = true
		} else {
			output.WriteString(scanner.Text() + "\n")
		}
	}

	// create from nothing
	if !updated {
		output.WriteString(fmt.Sprintf("%s\t%s\n", name, symbols))
	}

	if err := alphabetFile.Close(); err != nil {
		stderr.Fatal(err)
	}

	if err := os.WriteFile(config.AlphabetDB, []byte(output.String()), 0644); err != nil {
		stderr.Fatal(err)
	}

	if updated {
		fmt.Printf("updated %s in the alphabets database\n", name)
	} else {
		fmt.Printf("added %s to the alphabets database\n", name)
	}

	// update in memory
	d.alphabets[name] = symbols
}

// DeleteCmd removes the alphabet from the database
func (d *AlphabetDB) DeleteCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		stderr.Fatalf("expecting one arg: an alphabet name. %d passed\n", len(args))
	}

	name := strings.Join(args, " ")

	alphabetFile, err := os.Open(config.AlphabetDB)
	if err != nil {
		stderr.Fatal(err)
	}

	var output strings.Builder
	deleted := false
	scanner := bufio.NewScanner(alphabetFile)
	for scanner.Scan() {
		columns := strings.Split(scanner.Text(), "\t")
		if columns[0] != name {
			output.WriteString(scanner.Text() + "\n")
		} else {
			deleted = true
		}
	}

	if err := alphabetFile.Close(); err != nil {
		stderr.Fatal(err)
	}

	if err := os.WriteFile(config.AlphabetDB, []byte(output.String()), 0644); err != nil {
		stderr.Fatal(err)
	}

	delete(d.alphabets, name)

	if deleted {
		fmt.Printf("deleted %s from the alphabets database\n", name)
	} else {
		fmt.Printf("failed to find %s in the alphabets database\n", name)
	}
}

// ld compares two strings and returns the levenshtein distance between them.
// This was copied verbatim from https://github.com/spf13/cobra
func ld(s, t string, ignoreCase bool) int {
	if ignoreCase {
		s = strings.ToUpper(s)
		t = strings.ToUpper(t)
	}
	d := make([][]int, len(s)+1)
	for i := range d {
		d[i] = make([]int, len(t)+1)
	}
	for i := range d {
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}
	for j := 1; j <= len(t); j++ {
		for i := 1; i <= len(s); i++ {
			if s[i-1] == t[j-1] {
				d[i][j] = d[i-1][j-1]
			} else {
				min := d[i-1][j]
				if d[i][j-1] < min {
					min = d[i][j-1]
				}
				if d[i-1][j-1] < min {
					min = d[i-1][j-1]
				}
				d[i][j] = min + 1
			}
		}
	}
	return d[len(s)][len(t)]
}
