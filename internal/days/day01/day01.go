// Package day01 solves "Historian Hysteria": comparing two location lists.
package day01

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Historian Hysteria"

// Input holds the two columns of location IDs.
type Input struct {
	Left  []int
	Right []int
}

type Solver struct{}

func Module() puzzle.Module {
	return puzzle.New[Input](1, Title, Solver{})
}

func (Solver) Parse(input string) (Input, error) {
	var in Input
	for i, line := range strings.Split(input, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return Input{}, fmt.Errorf("line %d: expected two values, got %d", i+1, len(fields))
		}
		left, err := strconv.Atoi(fields[0])
		if err != nil {
			return Input{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		right, err := strconv.Atoi(fields[1])
		if err != nil {
			return Input{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		in.Left = append(in.Left, left)
		in.Right = append(in.Right, right)
	}
	return in, nil
}

// PartOne pairs the lists smallest to smallest and sums the distances.
func (Solver) PartOne(in Input) (puzzle.Answer, error) {
	left := sorted(in.Left)
	right := sorted(in.Right)

	total := 0
	for i := range left {
		diff := left[i] - right[i]
		if diff < 0 {
			diff = -diff
		}
		total += diff
	}
	return puzzle.Int(total), nil
}

// PartTwo sums each left value weighted by its count in the right list.
func (Solver) PartTwo(in Input) (puzzle.Answer, error) {
	counts := make(map[int]int, len(in.Right))
	for _, v := range in.Right {
		counts[v]++
	}

	total := 0
	for _, v := range in.Left {
		total += v * counts[v]
	}
	return puzzle.Int(total), nil
}

func sorted(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)
	sort.Ints(out)
	return out
}
