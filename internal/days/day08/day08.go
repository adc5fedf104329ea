// Package day08 solves "Resonant Collinearity": counting antinodes of antenna pairs.
package day08

import (
	"github.com/dyluth/advent/internal/grid"
	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Resonant Collinearity"

// City lists antenna positions by frequency within the map bounds.
type City struct {
	Width, Height int
	Antennas      map[byte][]grid.Point
}

type Solver struct{}

func Module() puzzle.Module {
	return puzzle.New[City](8, Title, Solver{})
}

func (Solver) Parse(input string) (City, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return City{}, err
	}
	city := City{Width: g.Width, Height: g.Height, Antennas: make(map[byte][]grid.Point)}
	for i := 0; i < g.Len(); i++ {
		p := g.Point(i)
		if c := g.At(p); c != '.' {
			city.Antennas[c] = append(city.Antennas[c], p)
		}
	}
	return city, nil
}

// PartOne places one antinode beyond each antenna of a pair.
func (Solver) PartOne(city City) (puzzle.Answer, error) {
	antinodes := make(map[grid.Point]bool)
	city.pairs(func(a, b grid.Point) {
		delta := b.Sub(a)
		for _, p := range []grid.Point{b.Add(delta), a.Sub(delta)} {
			if city.in(p) {
				antinodes[p] = true
			}
		}
	})
	return puzzle.Int(len(antinodes)), nil
}

// PartTwo counts every grid position in line with a pair.
func (Solver) PartTwo(city City) (puzzle.Answer, error) {
	antinodes := make(map[grid.Point]bool)
	city.pairs(func(a, b grid.Point) {
		delta := b.Sub(a)
		step := gcd(abs(delta.X), abs(delta.Y))
		delta = grid.Point{X: delta.X / step, Y: delta.Y / step}
		for p := a; city.in(p); p = p.Add(delta) {
			antinodes[p] = true
		}
		for p := a; city.in(p); p = p.Sub(delta) {
			antinodes[p] = true
		}
	})
	return puzzle.Int(len(antinodes)), nil
}

func (c City) pairs(fn func(a, b grid.Point)) {
	for _, points := range c.Antennas {
		for i := 0; i < len(points); i++ {
			for j := i + 1; j < len(points); j++ {
				fn(points[i], points[j])
			}
		}
	}
}

func (c City) in(p grid.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < c.Width && p.Y < c.Height
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
