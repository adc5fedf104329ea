// Package day12 solves "Garden Groups": pricing fences around garden regions.
package day12

import (
	"github.com/dyluth/advent/internal/grid"
	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Garden Groups"

// Region is a connected set of plots growing the same plant.
type Region struct {
	Plant     byte
	Area      int
	Perimeter int
	Sides     int
}

type Solver struct{}

func Module() puzzle.Module {
	return puzzle.New[[]Region](12, Title, Solver{})
}

// Parse flood-fills the garden into regions, measuring each as it goes.
// A region has as many sides as corners, so sides are counted via corners.
func (Solver) Parse(input string) ([]Region, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, err
	}
	same := func(p grid.Point, plant byte) bool {
		return g.In(p) && g.At(p) == plant
	}

	seen := make([]bool, g.Len())
	var regions []Region
	for i := 0; i < g.Len(); i++ {
		if seen[i] {
			continue
		}
		start := g.Point(i)
		region := Region{Plant: g.At(start)}
		seen[i] = true
		stack := []grid.Point{start}
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			region.Area++
			for _, d := range grid.Directions {
				n := p.Add(d.Delta())
				if !same(n, region.Plant) {
					region.Perimeter++
				} else if idx := g.Index(n); !seen[idx] {
					seen[idx] = true
					stack = append(stack, n)
				}

				side := p.Add(d.Right().Delta())
				diagonal := n.Add(d.Right().Delta())
				inN, inSide := same(n, region.Plant), same(side, region.Plant)
				if !inN && !inSide {
					region.Sides++ // convex corner
				} else if inN && inSide && !same(diagonal, region.Plant) {
					region.Sides++ // concave corner
				}
			}
		}
		regions = append(regions, region)
	}
	return regions, nil
}

// PartOne prices each region by area times perimeter.
func (Solver) PartOne(regions []Region) (puzzle.Answer, error) {
	total := 0
	for _, r := range regions {
		total += r.Area * r.Perimeter
	}
	return puzzle.Int(total), nil
}

// PartTwo prices each region by area times number of sides.
func (Solver) PartTwo(regions []Region) (puzzle.Answer, error) {
	total := 0
	for _, r := range regions {
		total += r.Area * r.Sides
	}
	return puzzle.Int(total), nil
}
