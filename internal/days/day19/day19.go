// Package day19 solves "Linen Layout": arranging towel patterns into designs.
package day19

import (
	"fmt"
	"strings"

	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Linen Layout"

// Onsen holds the available towel patterns and the requested designs.
type Onsen struct {
	Patterns []string
	Designs  []string
}

type Solver struct{}

func Module() puzzle.Module {
	return puzzle.New[Onsen](19, Title, Solver{})
}

func (Solver) Parse(input string) (Onsen, error) {
	var o Onsen
	for _, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
		case o.Patterns == nil:
			for _, p := range strings.Split(line, ",") {
				if p = strings.TrimSpace(p); p != "" {
					o.Patterns = append(o.Patterns, p)
				}
			}
			if o.Patterns == nil {
				return Onsen{}, fmt.Errorf("no towel patterns")
			}
		default:
			o.Designs = append(o.Designs, line)
		}
	}
	if o.Patterns == nil {
		return Onsen{}, fmt.Errorf("no towel patterns")
	}
	return o, nil
}

// PartOne counts designs that can be made at all.
func (Solver) PartOne(o Onsen) (puzzle.Answer, error) {
	possible := 0
	for _, d := range o.Designs {
		if Arrangements(o.Patterns, d) > 0 {
			possible++
		}
	}
	return puzzle.Int(possible), nil
}

// PartTwo sums the number of arrangements of every design.
func (Solver) PartTwo(o Onsen) (puzzle.Answer, error) {
	total := 0
	for _, d := range o.Designs {
		total += Arrangements(o.Patterns, d)
	}
	return puzzle.Int(total), nil
}

// Arrangements counts the ways design can be split into patterns.
func Arrangements(patterns []string, design string) int {
	// ways[i] is the number of arrangements of design[i:].
	ways := make([]int, len(design)+1)
	ways[len(design)] = 1
	for i := len(design) - 1; i >= 0; i-- {
		for _, p := range patterns {
			if strings.HasPrefix(design[i:], p) {
				ways[i] += ways[i+len(p)]
			}
		}
	}
	return ways[0]
}
