// Package day06 solves "Guard Gallivant": simulating a patrolling guard.
package day06

import (
	"fmt"

	"github.com/dyluth/advent/internal/grid"
	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Guard Gallivant"

// Lab is the parsed map with the guard's starting pose.
type Lab struct {
	Map    *grid.Grid
	Start  grid.Point
	Facing grid.Direction
}

type Solver struct{}

func Module() puzzle.Module {
	return puzzle.New[Lab](6, Title, Solver{})
}

func (Solver) Parse(input string) (Lab, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return Lab{}, err
	}
	for _, symbol := range []byte("^>v<") {
		if start, ok := g.Find(symbol); ok {
			facing, _ := grid.ParseDirection(symbol)
			return Lab{Map: g, Start: start, Facing: facing}, nil
		}
	}
	return Lab{}, fmt.Errorf("no guard found on the map")
}

// PartOne counts the distinct positions visited before leaving the map.
func (Solver) PartOne(lab Lab) (puzzle.Answer, error) {
	visited, loops := lab.patrol(grid.Point{X: -1, Y: -1})
	if loops {
		return "", puzzle.Unsolvable("the guard never leaves the map")
	}
	return puzzle.Int(len(visited)), nil
}

// PartTwo counts the positions where one new obstruction traps the guard in a loop.
// Only cells on the original route can change the route.
func (Solver) PartTwo(lab Lab) (puzzle.Answer, error) {
	route, loops := lab.patrol(grid.Point{X: -1, Y: -1})
	if loops {
		return "", puzzle.Unsolvable("the guard never leaves the map")
	}

	count := 0
	for p := range route {
		if p == lab.Start {
			continue
		}
		if _, loops := lab.patrol(p); loops {
			count++
		}
	}
	return puzzle.Int(count), nil
}

// patrol walks the guard with an extra obstruction and returns the visited cells
// and whether the walk ends in a loop.
func (lab Lab) patrol(obstruction grid.Point) (map[grid.Point]bool, bool) {
	g := lab.Map
	seen := make([]uint8, g.Len())
	visited := make(map[grid.Point]bool)

	pos, dir := lab.Start, lab.Facing
	for {
		visited[pos] = true
		bit := uint8(1) << dir
		i := g.Index(pos)
		if seen[i]&bit != 0 {
			return visited, true
		}
		seen[i] |= bit

		next := pos.Add(dir.Delta())
		if !g.In(next) {
			return visited, false
		}
		if next == obstruction || g.At(next) == '#' {
			dir = dir.Right()
			continue
		}
		pos = next
	}
}
