package main

import (
	"os"

	"github.com/SathiskumarD/genseq/cmd"
)

func main() {
	// "genseq docs" regenerates the Markdown command docs in ./docs
	if len(os.Args) > 1 && os.Args[1] == "docs" {
		makeDocs()
		return
	}

	cmd.Execute() // initialize cobra commands
}
