// Package day04 solves "Ceres Search": a word search for XMAS.
package day04

import (
	"github.com/dyluth/advent/internal/grid"
	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Ceres Search"

type Solver struct{}

func Module() puzzle.Module {
	return puzzle.New[*grid.Grid](4, Title, Solver{})
}

func (Solver) Parse(input string) (*grid.Grid, error) {
	return grid.Parse(input)
}

// PartOne counts XMAS in all eight directions.
func (Solver) PartOne(g *grid.Grid) (puzzle.Answer, error) {
	const word = "XMAS"
	count := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			start := grid.Point{X: x, Y: y}
			if g.At(start) != word[0] {
				continue
			}
			for _, step := range grid.Neighbors8 {
				if spells(g, start, step, word) {
					count++
				}
			}
		}
	}
	return puzzle.Int(count), nil
}

// PartTwo counts two MAS crossing diagonally on an A.
func (Solver) PartTwo(g *grid.Grid) (puzzle.Answer, error) {
	count := 0
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			center := grid.Point{X: x, Y: y}
			if g.At(center) != 'A' {
				continue
			}
			nw := g.At(center.Add(grid.Point{X: -1, Y: -1}))
			se := g.At(center.Add(grid.Point{X: 1, Y: 1}))
			ne := g.At(center.Add(grid.Point{X: 1, Y: -1}))
			sw := g.At(center.Add(grid.Point{X: -1, Y: 1}))
			if isMS(nw, se) && isMS(ne, sw) {
				count++
			}
		}
	}
	return puzzle.Int(count), nil
}

func spells(g *grid.Grid, start, step grid.Point, word string) bool {
	p := start
	for i := 0; i < len(word); i++ {
		if !g.In(p) || g.At(p) != word[i] {
			return false
		}
		p = p.Add(step)
	}
	return true
}

func isMS(a, b byte) bool {
	return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
}
