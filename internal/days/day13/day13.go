// Package day13 solves "Claw Contraption": the cheapest button presses to win each prize.
package day13

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Claw Contraption"

const (
	costA       = 3
	costB       = 1
	pressLimit  = 100
	prizeOffset = 10000000000000
)

var numbers = regexp.MustCompile(`-?\d+`)

// Machine is one claw machine: two button moves and the prize position.
type Machine struct {
	AX, AY int
	BX, BY int
	PX, PY int
}

// Presses solves the machine exactly, returning false when no whole number
// of presses reaches the prize. Collinear buttons never occur in puzzle input
// and are reported as unwinnable.
func (m Machine) Presses() (a, b int, ok bool) {
	det := m.AX*m.BY - m.AY*m.BX
	if det == 0 {
		return 0, 0, false
	}
	an := m.PX*m.BY - m.PY*m.BX
	bn := m.AX*m.PY - m.AY*m.PX
	if an%det != 0 || bn%det != 0 {
		return 0, 0, false
	}
	a, b = an/det, bn/det
	if a < 0 || b < 0 {
		return 0, 0, false
	}
	return a, b, true
}

type Solver struct{}

func Module() puzzle.Module {
	return puzzle.New[[]Machine](13, Title, Solver{})
}

func (Solver) Parse(input string) ([]Machine, error) {
	var machines []Machine
	for i, block := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n\n") {
		if strings.TrimSpace(block) == "" {
			continue
		}
		fields := numbers.FindAllString(block, -1)
		if len(fields) != 6 {
			return nil, fmt.Errorf("machine %d: expected 6 numbers, found %d", i+1, len(fields))
		}
		var v [6]int
		for j, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("machine %d: %w", i+1, err)
			}
			v[j] = n
		}
		machines = append(machines, Machine{AX: v[0], AY: v[1], BX: v[2], BY: v[3], PX: v[4], PY: v[5]})
	}
	return machines, nil
}

// PartOne allows at most 100 presses of each button.
func (Solver) PartOne(machines []Machine) (puzzle.Answer, error) {
	total := 0
	for _, m := range machines {
		a, b, ok := m.Presses()
		if ok && a <= pressLimit && b <= pressLimit {
			total += costA*a + costB*b
		}
	}
	return puzzle.Int(total), nil
}

// PartTwo moves every prize far away and lifts the press limit.
func (Solver) PartTwo(machines []Machine) (puzzle.Answer, error) {
	total := 0
	for _, m := range machines {
		m.PX += prizeOffset
		m.PY += prizeOffset
		if a, b, ok := m.Presses(); ok {
			total += costA*a + costB*b
		}
	}
	return puzzle.Int(total), nil
}
