// Command day4 solves Advent of Code 2024 day 4.
package main

import (
	"os"

	"github.com/dyluth/advent/cmd/advent/commands"
)

func main() {
	os.Exit(commands.ExecuteDay(4))
}
