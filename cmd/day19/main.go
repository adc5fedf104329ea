// Command day19 solves Advent of Code 2024 day 19.
package main

import (
	"os"

	"github.com/dyluth/advent/cmd/advent/commands"
)

func main() {
	os.Exit(commands.ExecuteDay(19))
}
