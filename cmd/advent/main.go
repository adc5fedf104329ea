package main

import (
	"os"

	"github.com/dyluth/advent/cmd/advent/commands"
)

// Version information - set during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	// Errors are printed by the printer package; the exit status encodes their kind.
	os.Exit(commands.Execute())
}
