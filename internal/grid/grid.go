// Package grid holds the character-grid, point and direction helpers shared by
// the day modules.
package grid

import (
	"fmt"
	"strings"
)

// Point is an x/y coordinate; y grows downwards.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p multiplied by k.
func (p Point) Scale(k int) Point {
	return Point{p.X * k, p.Y * k}
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Neighbors8 are the offsets of the eight surrounding cells.
var Neighbors8 = [8]Point{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Grid is a rectangular map of single-byte cells.
type Grid struct {
	cells  []byte
	Width  int
	Height int
}

// New creates a width×height grid filled with fill.
func New(width, height int, fill byte) *Grid {
	cells := make([]byte, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid{cells: cells, Width: width, Height: height}
}

// Parse reads a grid from text. Lines are trimmed and blank lines skipped;
// every remaining line must have the same width.
func Parse(input string) (*Grid, error) {
	g := &Grid{}
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if g.Width == 0 {
			g.Width = len(line)
		} else if len(line) != g.Width {
			return nil, fmt.Errorf("grid row %d has width %d, expected %d", g.Height+1, len(line), g.Width)
		}
		g.cells = append(g.cells, line...)
		g.Height++
	}
	if g.Height == 0 {
		return nil, fmt.Errorf("grid input is empty")
	}
	return g, nil
}

// In reports whether p lies inside the grid.
func (g *Grid) In(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
}

// At returns the cell at p. p must be inside the grid.
func (g *Grid) At(p Point) byte {
	return g.cells[g.Index(p)]
}

// Set stores b at p. p must be inside the grid.
func (g *Grid) Set(p Point, b byte) {
	g.cells[g.Index(p)] = b
}

// Index converts p to its offset in row-major order.
func (g *Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Point converts a row-major offset back to a point.
func (g *Grid) Point(index int) Point {
	return Point{index % g.Width, index / g.Width}
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Find returns the first cell holding b in row-major order.
func (g *Grid) Find(b byte) (Point, bool) {
	for i, c := range g.cells {
		if c == b {
			return g.Point(i), true
		}
	}
	return Point{}, false
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]byte, len(g.cells))
	copy(cells, g.cells)
	return &Grid{cells: cells, Width: g.Width, Height: g.Height}
}

// Distances runs a breadth-first flood from start over cells that are not walls.
// The result is indexed like the grid; unreachable cells hold -1.
func (g *Grid) Distances(start Point, wall func(byte) bool) []int {
	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = -1
	}
	if !g.In(start) {
		return dist
	}
	dist[g.Index(start)] = 0
	queue := []Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		d := dist[g.Index(p)]
		for _, dir := range Directions {
			next := p.Add(dir.Delta())
			if !g.In(next) || wall(g.At(next)) {
				continue
			}
			if i := g.Index(next); dist[i] < 0 {
				dist[i] = d + 1
				queue = append(queue, next)
			}
		}
	}
	return dist
}

func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.Write(g.cells[y*g.Width : (y+1)*g.Width])
	}
	return b.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
