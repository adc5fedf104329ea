// Package day10 solves "Hoof It": scoring hiking trails on a topographic map.
package day10

import (
	"github.com/dyluth/advent/internal/grid"
	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Hoof It"

// impassable marks cells that are not a height digit.
const impassable = -1

// Map holds heights, with impassable for anything that is not 0-9.
type Map struct {
	*grid.Grid
}

func (m Map) height(p grid.Point) int {
	c := m.At(p)
	if c < '0' || c > '9' {
		return impassable
	}
	return int(c - '0')
}

type Solver struct{}

func Module() puzzle.Module {
	return puzzle.New[Map](10, Title, Solver{})
}

func (Solver) Parse(input string) (Map, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return Map{}, err
	}
	return Map{g}, nil
}

// PartOne counts the distinct peaks reachable from each trailhead.
func (Solver) PartOne(m Map) (puzzle.Answer, error) {
	total := 0
	for _, head := range m.trailheads() {
		peaks := make(map[grid.Point]bool)
		var walk func(p grid.Point)
		walk = func(p grid.Point) {
			h := m.height(p)
			if h == 9 {
				peaks[p] = true
				return
			}
			for _, next := range m.uphill(p, h) {
				walk(next)
			}
		}
		walk(head)
		total += len(peaks)
	}
	return puzzle.Int(total), nil
}

// PartTwo counts distinct trails, memoising the number of trails from each cell.
func (Solver) PartTwo(m Map) (puzzle.Answer, error) {
	trails := make([]int, m.Len())
	for i := range trails {
		trails[i] = -1
	}
	var count func(p grid.Point) int
	count = func(p grid.Point) int {
		idx := m.Index(p)
		if trails[idx] >= 0 {
			return trails[idx]
		}
		h := m.height(p)
		n := 0
		if h == 9 {
			n = 1
		} else {
			for _, next := range m.uphill(p, h) {
				n += count(next)
			}
		}
		trails[idx] = n
		return n
	}

	total := 0
	for _, head := range m.trailheads() {
		total += count(head)
	}
	return puzzle.Int(total), nil
}

func (m Map) trailheads() []grid.Point {
	var heads []grid.Point
	for i := 0; i < m.Len(); i++ {
		if p := m.Point(i); m.height(p) == 0 {
			heads = append(heads, p)
		}
	}
	return heads
}

func (m Map) uphill(p grid.Point, h int) []grid.Point {
	var next []grid.Point
	for _, d := range grid.Directions {
		n := p.Add(d.Delta())
		if m.In(n) && m.height(n) == h+1 {
			next = append(next, n)
		}
	}
	return next
}
