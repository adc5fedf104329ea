// Package day15 solves "Warehouse Woes": a robot pushing boxes around a warehouse.
package day15

import (
	"fmt"
	"strings"

	"github.com/dyluth/advent/internal/grid"
	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Warehouse Woes"

// Warehouse is the initial map, with the robot removed, and the robot's moves.
type Warehouse struct {
	Map   *grid.Grid
	Robot grid.Point
	Moves []grid.Direction
}

type Solver struct{}

func Module() puzzle.Module {
	return puzzle.New[Warehouse](15, Title, Solver{})
}

func (Solver) Parse(input string) (Warehouse, error) {
	var layout, moves strings.Builder
	inMoves := false
	for _, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "" && layout.Len() > 0:
			inMoves = true
		case inMoves:
			moves.WriteString(line)
		default:
			layout.WriteString(line)
			layout.WriteByte('\n')
		}
	}

	g, err := grid.Parse(layout.String())
	if err != nil {
		return Warehouse{}, err
	}
	robot, ok := g.Find('@')
	if !ok {
		return Warehouse{}, fmt.Errorf("no robot on the map")
	}
	g.Set(robot, '.')

	w := Warehouse{Map: g, Robot: robot}
	for i := 0; i < moves.Len(); i++ {
		d, err := grid.ParseDirection(moves.String()[i])
		if err != nil {
			return Warehouse{}, fmt.Errorf("move %d: %w", i+1, err)
		}
		w.Moves = append(w.Moves, d)
	}
	return w, nil
}

// PartOne runs the robot on the original map.
func (Solver) PartOne(w Warehouse) (puzzle.Answer, error) {
	g := w.Map.Clone()
	run(g, w.Robot, w.Moves)
	return puzzle.Int(gps(g)), nil
}

// PartTwo runs the robot on a map where everything except the robot is twice as wide.
func (Solver) PartTwo(w Warehouse) (puzzle.Answer, error) {
	g := widen(w.Map)
	run(g, grid.Point{X: w.Robot.X * 2, Y: w.Robot.Y}, w.Moves)
	return puzzle.Int(gps(g)), nil
}

func run(g *grid.Grid, robot grid.Point, moves []grid.Direction) {
	for _, d := range moves {
		robot = push(g, robot, d)
	}
}

// push moves the robot one step if every box in the way can move too,
// returning the robot's new position.
func push(g *grid.Grid, robot grid.Point, d grid.Direction) grid.Point {
	delta := d.Delta()
	queue := []grid.Point{robot}
	queued := map[grid.Point]bool{robot: true}
	add := func(p grid.Point) {
		if !queued[p] {
			queued[p] = true
			queue = append(queue, p)
		}
	}

	for i := 0; i < len(queue); i++ {
		next := queue[i].Add(delta)
		if !g.In(next) {
			return robot
		}
		switch g.At(next) {
		case '#':
			return robot
		case 'O':
			add(next)
		case '[':
			add(next)
			if d.Vertical() {
				add(next.Add(grid.East.Delta()))
			}
		case ']':
			add(next)
			if d.Vertical() {
				add(next.Add(grid.West.Delta()))
			}
		}
	}

	boxes := queue[1:]
	cells := make([]byte, len(boxes))
	for i, p := range boxes {
		cells[i] = g.At(p)
		g.Set(p, '.')
	}
	for i, p := range boxes {
		g.Set(p.Add(delta), cells[i])
	}
	return robot.Add(delta)
}

func widen(g *grid.Grid) *grid.Grid {
	wide := grid.New(g.Width*2, g.Height, '.')
	for i := 0; i < g.Len(); i++ {
		p := g.Point(i)
		left, right := g.At(p), g.At(p)
		if left == 'O' {
			left, right = '[', ']'
		}
		wide.Set(grid.Point{X: p.X * 2, Y: p.Y}, left)
		wide.Set(grid.Point{X: p.X*2 + 1, Y: p.Y}, right)
	}
	return wide
}

// gps sums 100*y + x over every box, measured from its left edge.
func gps(g *grid.Grid) int {
	total := 0
	for i := 0; i < g.Len(); i++ {
		if c := g.At(g.Point(i)); c == 'O' || c == '[' {
			p := g.Point(i)
			total += 100*p.Y + p.X
		}
	}
	return total
}
