// Package day07 solves "Bridge Repair": restoring operators in calibration equations.
package day07

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Bridge Repair"

// Equation is a test value and the operands that should produce it.
type Equation struct {
	Target   int
	Operands []int
}

type Solver struct{}

func Module() puzzle.Module {
	return puzzle.New[[]Equation](7, Title, Solver{})
}

func (Solver) Parse(input string) ([]Equation, error) {
	var equations []Equation
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		target, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: missing ':'", i+1)
		}
		eq := Equation{}
		var err error
		if eq.Target, err = strconv.Atoi(target); err != nil {
			return nil, fmt.Errorf("line %d: invalid test value: %w", i+1, err)
		}
		for _, field := range strings.Fields(rest) {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid operand: %w", i+1, err)
			}
			eq.Operands = append(eq.Operands, v)
		}
		if len(eq.Operands) == 0 {
			return nil, fmt.Errorf("line %d: no operands", i+1)
		}
		equations = append(equations, eq)
	}
	return equations, nil
}

// PartOne allows addition and multiplication.
func (Solver) PartOne(equations []Equation) (puzzle.Answer, error) {
	return puzzle.Int(calibrate(equations, false)), nil
}

// PartTwo also allows concatenation.
func (Solver) PartTwo(equations []Equation) (puzzle.Answer, error) {
	return puzzle.Int(calibrate(equations, true)), nil
}

func calibrate(equations []Equation, concat bool) int {
	total := 0
	for _, eq := range equations {
		if solvable(eq.Target, eq.Operands, concat) {
			total += eq.Target
		}
	}
	return total
}

// solvable works backwards from the target, undoing the last operator.
// Operators are evaluated left to right, so the last operand is applied last.
func solvable(target int, operands []int, concat bool) bool {
	last := operands[len(operands)-1]
	if len(operands) == 1 {
		return target == last
	}
	rest := operands[:len(operands)-1]

	if target >= last && solvable(target-last, rest, concat) {
		return true
	}
	if last != 0 && target%last == 0 && solvable(target/last, rest, concat) {
		return true
	}
	if concat {
		pow := magnitude(last)
		if target >= last && target%pow == last && solvable(target/pow, rest, concat) {
			return true
		}
	}
	return false
}

// magnitude is the power of ten just above n, e.g. 100 for 42.
func magnitude(n int) int {
	pow := 10
	for n >= pow {
		pow *= 10
	}
	return pow
}

// Concat joins the decimal digits of a and b.
func Concat(a, b int) int {
	return a*magnitude(b) + b
}
