// Package day18 solves "RAM Run": escaping a memory space as bytes fall into it.
package day18

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dyluth/advent/internal/grid"
	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "RAM Run"

const (
	defaultSize   = 71
	defaultFallen = 1024
)

// Solver walks a Size x Size memory space from the top-left to the
// bottom-right corner. Zero fields use the puzzle's real dimensions.
type Solver struct {
	Size   int
	Fallen int
}

func Module() puzzle.Module {
	return puzzle.New[[]grid.Point](18, Title, Solver{})
}

func (s Solver) dims() (size, fallen int) {
	size, fallen = s.Size, s.Fallen
	if size == 0 {
		size = defaultSize
	}
	if fallen == 0 {
		fallen = defaultFallen
	}
	return size, fallen
}

func (Solver) Parse(input string) ([]grid.Point, error) {
	var bytes []grid.Point
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("line %d: expected x,y", i+1)
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		bytes = append(bytes, grid.Point{X: x, Y: y})
	}
	return bytes, nil
}

// PartOne is the shortest path once the first Fallen bytes have landed.
func (s Solver) PartOne(bytes []grid.Point) (puzzle.Answer, error) {
	size, fallen := s.dims()
	if fallen > len(bytes) {
		fallen = len(bytes)
	}
	steps, err := shortest(size, bytes[:fallen])
	if err != nil {
		return "", err
	}
	if steps < 0 {
		return "", puzzle.Unsolvable("exit is blocked after %d bytes", fallen)
	}
	return puzzle.Int(steps), nil
}

// PartTwo is the first byte that cuts the exit off.
func (s Solver) PartTwo(bytes []grid.Point) (puzzle.Answer, error) {
	size, _ := s.dims()
	var failure error
	n := sort.Search(len(bytes)+1, func(n int) bool {
		steps, err := shortest(size, bytes[:n])
		if err != nil {
			failure = err
			return true
		}
		return steps < 0
	})
	if failure != nil {
		return "", failure
	}
	if n > len(bytes) {
		return "", puzzle.Unsolvable("exit stays reachable after all %d bytes", len(bytes))
	}
	if n == 0 {
		return "", puzzle.Unsolvable("exit is unreachable before any byte falls")
	}
	return puzzle.Text(bytes[n-1].String()), nil
}

// shortest returns the step count from corner to corner, or -1 if blocked.
func shortest(size int, corrupted []grid.Point) (int, error) {
	memory := grid.New(size, size, '.')
	for _, p := range corrupted {
		if !memory.In(p) {
			return 0, puzzle.Unsolvable("byte %s falls outside the %dx%d memory space", p, size, size)
		}
		memory.Set(p, '#')
	}
	start, exit := grid.Point{}, grid.Point{X: size - 1, Y: size - 1}
	if memory.At(start) == '#' {
		return -1, nil
	}
	dist := memory.Distances(start, func(c byte) bool { return c == '#' })
	return dist[memory.Index(exit)], nil
}
