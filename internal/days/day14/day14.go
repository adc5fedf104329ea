// Package day14 solves "Restroom Redoubt": predicting robot positions on a wrapping floor.
package day14

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dyluth/advent/internal/grid"
	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Restroom Redoubt"

const (
	defaultWidth   = 101
	defaultHeight  = 103
	defaultSeconds = 100
)

var robotPattern = regexp.MustCompile(`^p=(-?\d+),(-?\d+)\s+v=(-?\d+),(-?\d+)$`)

type Robot struct {
	Position grid.Point
	Velocity grid.Point
}

// Solver simulates robots on a Width x Height floor. Zero fields use the
// puzzle's real dimensions.
type Solver struct {
	Width, Height int
	Seconds       int
}

func Module() puzzle.Module {
	return puzzle.New[[]Robot](14, Title, Solver{})
}

func (s Solver) size() (int, int) {
	w, h := s.Width, s.Height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}
	return w, h
}

func (Solver) Parse(input string) ([]Robot, error) {
	var robots []Robot
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		m := robotPattern.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d: malformed robot %q", i+1, line)
		}
		var v [4]int
		for j := range v {
			n, err := strconv.Atoi(m[j+1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			v[j] = n
		}
		robots = append(robots, Robot{
			Position: grid.Point{X: v[0], Y: v[1]},
			Velocity: grid.Point{X: v[2], Y: v[3]},
		})
	}
	return robots, nil
}

// At returns the robot's position after the given number of seconds.
func (r Robot) At(seconds, width, height int) grid.Point {
	p := r.Position.Add(r.Velocity.Scale(seconds))
	return grid.Point{X: wrap(p.X, width), Y: wrap(p.Y, height)}
}

// PartOne multiplies the robot counts of the four quadrants.
func (s Solver) PartOne(robots []Robot) (puzzle.Answer, error) {
	w, h := s.size()
	seconds := s.Seconds
	if seconds == 0 {
		seconds = defaultSeconds
	}
	var quadrants [4]int
	midX, midY := w/2, h/2
	for _, r := range robots {
		p := r.At(seconds, w, h)
		if p.X == midX || p.Y == midY {
			continue
		}
		q := 0
		if p.X > midX {
			q++
		}
		if p.Y > midY {
			q += 2
		}
		quadrants[q]++
	}
	return puzzle.Int(quadrants[0] * quadrants[1] * quadrants[2] * quadrants[3]), nil
}

// PartTwo finds the first second at which no two robots overlap, which is
// when the picture appears. Positions repeat every width*height seconds.
func (s Solver) PartTwo(robots []Robot) (puzzle.Answer, error) {
	w, h := s.size()
	occupied := make([]int, w*h)
	for t := 0; t < w*h; t++ {
		distinct := true
		for _, r := range robots {
			p := r.At(t, w, h)
			idx := p.Y*w + p.X
			if occupied[idx] == t+1 {
				distinct = false
				break
			}
			occupied[idx] = t + 1
		}
		if distinct {
			return puzzle.Int(t), nil
		}
	}
	return "", puzzle.Unsolvable("robots never spread out within %d seconds", w*h)
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}
