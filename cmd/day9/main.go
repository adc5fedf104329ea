// Command day9 solves Advent of Code 2024 day 9.
package main

import (
	"os"

	"github.com/dyluth/advent/cmd/advent/commands"
)

func main() {
	os.Exit(commands.ExecuteDay(9))
}
