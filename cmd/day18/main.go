// Command day18 solves Advent of Code 2024 day 18.
package main

import (
	"os"

	"github.com/dyluth/advent/cmd/advent/commands"
)

func main() {
	os.Exit(commands.ExecuteDay(18))
}
