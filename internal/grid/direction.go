package grid

import "fmt"

// Direction is one of the four cardinal directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the cardinal directions clockwise from North.
var Directions = [4]Direction{North, East, South, West}

// ParseDirection maps an arrow symbol (^ > v <) to its direction.
func ParseDirection(symbol byte) (Direction, error) {
	switch symbol {
	case '^':
		return North, nil
	case '>':
		return East, nil
	case 'v':
		return South, nil
	case '<':
		return West, nil
	}
	return 0, fmt.Errorf("invalid direction symbol %q", symbol)
}

// Delta is the unit step for the direction.
func (d Direction) Delta() Point {
	switch d {
	case North:
		return Point{0, -1}
	case East:
		return Point{1, 0}
	case South:
		return Point{0, 1}
	default:
		return Point{-1, 0}
	}
}

// Right returns the direction after a clockwise quarter turn.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Left returns the direction after a counter-clockwise quarter turn.
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// Vertical reports whether d is North or South.
func (d Direction) Vertical() bool {
	return d == North || d == South
}

// Symbol is the arrow used for d in puzzle text.
func (d Direction) Symbol() byte {
	return "^>v<"[d]
}
