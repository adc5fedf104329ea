// Package day21 solves "Keypad Conundrum": typing door codes through a chain
// of robots, each driving the next robot's directional keypad.
package day21

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dyluth/advent/internal/grid"
	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Keypad Conundrum"

const (
	defaultRobotsOne = 2
	defaultRobotsTwo = 25
)

type keypad struct {
	keys map[byte]grid.Point
	gap  grid.Point
}

var (
	numeric = newKeypad([]string{"789", "456", "123", " 0A"})
	arrows  = newKeypad([]string{" ^A", "<v>"})
)

func newKeypad(rows []string) keypad {
	k := keypad{keys: make(map[byte]grid.Point)}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			p := grid.Point{X: x, Y: y}
			if row[x] == ' ' {
				k.gap = p
			} else {
				k.keys[row[x]] = p
			}
		}
	}
	return k
}

// paths returns the arrow sequences, each ending in A, that move from a to b
// turning at most once without crossing the gap.
func (k keypad) paths(a, b byte) []string {
	from, to := k.keys[a], k.keys[b]
	var horizontal, vertical string
	dx, dy := to.X-from.X, to.Y-from.Y
	if dx < 0 {
		horizontal = strings.Repeat("<", -dx)
	} else {
		horizontal = strings.Repeat(">", dx)
	}
	if dy < 0 {
		vertical = strings.Repeat("^", -dy)
	} else {
		vertical = strings.Repeat("v", dy)
	}

	var out []string
	if (grid.Point{X: to.X, Y: from.Y}) != k.gap {
		out = append(out, horizontal+vertical+"A")
	}
	if (grid.Point{X: from.X, Y: to.Y}) != k.gap && dx != 0 && dy != 0 {
		out = append(out, vertical+horizontal+"A")
	}
	return out
}

// Code is a door code and its numeric value.
type Code struct {
	Keys  string
	Value int
}

// Solver types codes through DirectionalOne and DirectionalTwo robot-operated
// directional keypads. Zero fields use the puzzle's 2 and 25.
type Solver struct {
	DirectionalOne int
	DirectionalTwo int
}

func Module() puzzle.Module {
	return puzzle.New[[]Code](21, Title, Solver{})
}

func (Solver) Parse(input string) ([]Code, error) {
	var codes []Code
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		for j := 0; j < len(line); j++ {
			if _, ok := numeric.keys[line[j]]; !ok {
				return nil, fmt.Errorf("line %d: %q is not a numeric keypad key", i+1, line[j])
			}
		}
		digits, ok := strings.CutSuffix(line, "A")
		if !ok || digits == "" {
			return nil, fmt.Errorf("line %d: code %q must be digits followed by A", i+1, line)
		}
		value, err := strconv.Atoi(digits)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		codes = append(codes, Code{Keys: line, Value: value})
	}
	return codes, nil
}

func (s Solver) PartOne(codes []Code) (puzzle.Answer, error) {
	robots := s.DirectionalOne
	if robots == 0 {
		robots = defaultRobotsOne
	}
	return puzzle.Int(complexity(codes, robots)), nil
}

func (s Solver) PartTwo(codes []Code) (puzzle.Answer, error) {
	robots := s.DirectionalTwo
	if robots == 0 {
		robots = defaultRobotsTwo
	}
	return puzzle.Int(complexity(codes, robots)), nil
}

func complexity(codes []Code, robots int) int {
	p := newPresser()
	total := 0
	for _, c := range codes {
		total += p.code(c.Keys, robots) * c.Value
	}
	return total
}

type move struct {
	from, to byte
	depth    int
}

// presser counts the fewest human button presses, memoised per call so
// repeated solves never share state.
type presser struct {
	memo map[move]int
}

func newPresser() *presser {
	return &presser{memo: make(map[move]int)}
}

// code is the length of the shortest human sequence that types keys on the
// numeric keypad through depth directional robots.
func (p *presser) code(keys string, depth int) int {
	total := 0
	prev := byte('A')
	for i := 0; i < len(keys); i++ {
		best := -1
		for _, path := range numeric.paths(prev, keys[i]) {
			if n := p.sequence(path, depth); best < 0 || n < best {
				best = n
			}
		}
		total += best
		prev = keys[i]
	}
	return total
}

// sequence is the cost of typing arrows on a directional keypad that sits
// depth levels above the human.
func (p *presser) sequence(arrowKeys string, depth int) int {
	if depth == 0 {
		return len(arrowKeys)
	}
	total := 0
	prev := byte('A')
	for i := 0; i < len(arrowKeys); i++ {
		total += p.step(prev, arrowKeys[i], depth)
		prev = arrowKeys[i]
	}
	return total
}

func (p *presser) step(from, to byte, depth int) int {
	key := move{from, to, depth}
	if n, ok := p.memo[key]; ok {
		return n
	}
	best := -1
	for _, path := range arrows.paths(from, to) {
		if n := p.sequence(path, depth-1); best < 0 || n < best {
			best = n
		}
	}
	p.memo[key] = best
	return best
}
