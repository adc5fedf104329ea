// Package day05 solves "Print Queue": validating and repairing page orderings.
package day05

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Print Queue"

// Input holds the ordering rules and the updates to check.
type Input struct {
	// Before[a][b] means page a must be printed before page b.
	Before  map[int]map[int]bool
	Updates [][]int
}

type Solver struct{}

func Module() puzzle.Module {
	return puzzle.New[Input](5, Title, Solver{})
}

func (Solver) Parse(input string) (Input, error) {
	in := Input{Before: make(map[int]map[int]bool)}
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			continue
		case strings.Contains(line, "|"):
			a, b, _ := strings.Cut(line, "|")
			before, err := strconv.Atoi(a)
			if err != nil {
				return Input{}, fmt.Errorf("line %d: invalid rule: %w", i+1, err)
			}
			after, err := strconv.Atoi(b)
			if err != nil {
				return Input{}, fmt.Errorf("line %d: invalid rule: %w", i+1, err)
			}
			if in.Before[before] == nil {
				in.Before[before] = make(map[int]bool)
			}
			in.Before[before][after] = true
		default:
			var update []int
			for _, field := range strings.Split(line, ",") {
				page, err := strconv.Atoi(strings.TrimSpace(field))
				if err != nil {
					return Input{}, fmt.Errorf("line %d: invalid page: %w", i+1, err)
				}
				update = append(update, page)
			}
			in.Updates = append(in.Updates, update)
		}
	}
	return in, nil
}

// PartOne sums the middle pages of correctly ordered updates.
func (Solver) PartOne(in Input) (puzzle.Answer, error) {
	total := 0
	for _, update := range in.Updates {
		if in.ordered(update) {
			total += update[len(update)/2]
		}
	}
	return puzzle.Int(total), nil
}

// PartTwo reorders the incorrect updates and sums their middle pages.
func (Solver) PartTwo(in Input) (puzzle.Answer, error) {
	total := 0
	for _, update := range in.Updates {
		if in.ordered(update) {
			continue
		}
		fixed := make([]int, len(update))
		copy(fixed, update)
		sort.SliceStable(fixed, func(i, j int) bool {
			return in.Before[fixed[i]][fixed[j]]
		})
		if !in.ordered(fixed) {
			return "", puzzle.Unsolvable("rules give no consistent order for update %v", update)
		}
		total += fixed[len(fixed)/2]
	}
	return puzzle.Int(total), nil
}

func (in Input) ordered(update []int) bool {
	for i := 0; i < len(update); i++ {
		for j := i + 1; j < len(update); j++ {
			if in.Before[update[j]][update[i]] {
				return false
			}
		}
	}
	return true
}
