// Package day02 solves "Red-Nosed Reports": counting safe level reports.
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Red-Nosed Reports"

type Solver struct{}

func Module() puzzle.Module {
	return puzzle.New[[][]int](2, Title, Solver{})
}

func (Solver) Parse(input string) ([][]int, error) {
	var reports [][]int
	for row, line := range strings.Split(input, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		report := make([]int, len(fields))
		for col, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("failed to parse number %d in row %d: %w", col+1, row+1, err)
			}
			report[col] = v
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (Solver) PartOne(reports [][]int) (puzzle.Answer, error) {
	count := 0
	for _, report := range reports {
		if safe(report, -1) {
			count++
		}
	}
	return puzzle.Int(count), nil
}

// PartTwo tolerates a single bad level per report.
func (Solver) PartTwo(reports [][]int) (puzzle.Answer, error) {
	count := 0
	for _, report := range reports {
		if tolerable(report) {
			count++
		}
	}
	return puzzle.Int(count), nil
}

func tolerable(report []int) bool {
	if safe(report, -1) {
		return true
	}
	for skip := range report {
		if safe(report, skip) {
			return true
		}
	}
	return false
}

// safe reports whether levels strictly increase or decrease by 1..3,
// ignoring the level at index skip (-1 skips nothing).
func safe(report []int, skip int) bool {
	sign := 0
	prev, havePrev := 0, false
	for i, level := range report {
		if i == skip {
			continue
		}
		if !havePrev {
			prev, havePrev = level, true
			continue
		}
		diff := level - prev
		prev = level
		step := 1
		if diff < 0 {
			step, diff = -1, -diff
		}
		if diff < 1 || diff > 3 {
			return false
		}
		if sign == 0 {
			sign = step
		} else if sign != step {
			return false
		}
	}
	return true
}
