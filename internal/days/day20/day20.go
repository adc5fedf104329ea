// Package day20 solves "Race Condition": counting shortcuts through racetrack walls.
package day20

import (
	"fmt"

	"github.com/dyluth/advent/internal/grid"
	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Race Condition"

const defaultMinSaving = 100

// Track holds each cell's distance from the start along the single
// racetrack, or -1 for walls.
type Track struct {
	Map  *grid.Grid
	Dist []int
}

// Solver counts cheats saving at least MinSaving picoseconds. Zero uses
// the puzzle's threshold of 100.
type Solver struct {
	MinSaving int
}

func Module() puzzle.Module {
	return puzzle.New[Track](20, Title, Solver{})
}

func (Solver) Parse(input string) (Track, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return Track{}, err
	}
	start, ok := g.Find('S')
	if !ok {
		return Track{}, fmt.Errorf("racetrack has no start")
	}
	end, ok := g.Find('E')
	if !ok {
		return Track{}, fmt.Errorf("racetrack has no end")
	}
	dist := g.Distances(start, func(c byte) bool { return c == '#' })
	if dist[g.Index(end)] < 0 {
		return Track{}, fmt.Errorf("end is not reachable from start")
	}
	return Track{Map: g, Dist: dist}, nil
}

// PartOne allows cheats of up to 2 picoseconds.
func (s Solver) PartOne(t Track) (puzzle.Answer, error) {
	return puzzle.Int(t.Cheats(2, s.minSaving())), nil
}

// PartTwo allows cheats of up to 20 picoseconds.
func (s Solver) PartTwo(t Track) (puzzle.Answer, error) {
	return puzzle.Int(t.Cheats(20, s.minSaving())), nil
}

func (s Solver) minSaving() int {
	if s.MinSaving == 0 {
		return defaultMinSaving
	}
	return s.MinSaving
}

// Cheats counts distinct (start, end) cheats of at most length steps that
// save at least minSaving.
func (t Track) Cheats(length, minSaving int) int {
	count := 0
	for i, from := range t.Dist {
		if from < 0 {
			continue
		}
		p := t.Map.Point(i)
		for dy := -length; dy <= length; dy++ {
			reach := length - abs(dy)
			for dx := -reach; dx <= reach; dx++ {
				q := p.Add(grid.Point{X: dx, Y: dy})
				if !t.Map.In(q) {
					continue
				}
				to := t.Dist[t.Map.Index(q)]
				if to >= 0 && to-from-abs(dx)-abs(dy) >= minSaving {
					count++
				}
			}
		}
	}
	return count
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
