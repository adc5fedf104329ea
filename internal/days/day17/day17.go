// Package day17 solves "Chronospatial Computer": a tiny 3-bit virtual machine.
package day17

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Chronospatial Computer"

// maxSteps bounds execution so a program that never halts is reported.
const maxSteps = 1 << 20

var registerPattern = regexp.MustCompile(`^Register ([ABC]): (\d+)$`)

const (
	opADV = iota
	opBXL
	opBST
	opJNZ
	opBXC
	opOUT
	opBDV
	opCDV
)

// Computer is the initial register state and program.
type Computer struct {
	A, B, C uint64
	Program []int
}

type Solver struct{}

func Module() puzzle.Module {
	return puzzle.New[Computer](17, Title, Solver{})
}

func (Solver) Parse(input string) (Computer, error) {
	var c Computer
	var sawProgram bool
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "Program:"); ok {
			for _, f := range strings.Split(strings.TrimSpace(rest), ",") {
				v, err := strconv.Atoi(strings.TrimSpace(f))
				if err != nil || v < 0 || v > 7 {
					return Computer{}, fmt.Errorf("line %d: invalid 3-bit value %q", i+1, f)
				}
				c.Program = append(c.Program, v)
			}
			sawProgram = true
			continue
		}
		m := registerPattern.FindStringSubmatch(line)
		if m == nil {
			return Computer{}, fmt.Errorf("line %d: unexpected %q", i+1, line)
		}
		v, err := strconv.ParseUint(m[2], 10, 64)
		if err != nil {
			return Computer{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		switch m[1] {
		case "A":
			c.A = v
		case "B":
			c.B = v
		case "C":
			c.C = v
		}
	}
	if !sawProgram {
		return Computer{}, fmt.Errorf("missing program")
	}
	return c, nil
}

// PartOne runs the program and joins its output with commas.
func (Solver) PartOne(c Computer) (puzzle.Answer, error) {
	out, err := c.Run(c.A)
	if err != nil {
		return "", err
	}
	return puzzle.Ints(out), nil
}

// PartTwo finds the lowest initial A for which the program outputs itself.
// Each output digit depends on the next three bits of A, so A is built
// three bits at a time, matching the program from its last value backwards.
func (Solver) PartTwo(c Computer) (puzzle.Answer, error) {
	var search func(a uint64, matched int) (uint64, bool, error)
	search = func(a uint64, matched int) (uint64, bool, error) {
		if matched == len(c.Program) {
			return a, true, nil
		}
		for bits := range uint64(8) {
			candidate := a<<3 | bits
			if candidate == 0 {
				continue
			}
			out, err := c.Run(candidate)
			if err != nil {
				return 0, false, err
			}
			if slices.Equal(out, c.Program[len(c.Program)-matched-1:]) {
				if found, ok, err := search(candidate, matched+1); err != nil || ok {
					return found, ok, err
				}
			}
		}
		return 0, false, nil
	}

	a, ok, err := search(0, 0)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", puzzle.Unsolvable("no register value makes the program output itself")
	}
	return puzzle.Int(int(a)), nil
}

// Run executes the program with register A set to a and returns its output.
func (c Computer) Run(a uint64) ([]int, error) {
	regA, regB, regC := a, c.B, c.C
	combo := func(operand int) (uint64, error) {
		switch operand {
		case 4:
			return regA, nil
		case 5:
			return regB, nil
		case 6:
			return regC, nil
		case 7:
			return 0, puzzle.Unsolvable("reserved combo operand 7")
		}
		return uint64(operand), nil
	}

	var out []int
	for ip, steps := 0, 0; ip+1 < len(c.Program); steps++ {
		if steps >= maxSteps {
			return nil, puzzle.Unsolvable("program did not halt after %d instructions", maxSteps)
		}
		op, operand := c.Program[ip], c.Program[ip+1]
		ip += 2
		switch op {
		case opBXL:
			regB ^= uint64(operand)
		case opJNZ:
			if regA != 0 {
				ip = operand
			}
		case opBXC:
			regB ^= regC
		default:
			v, err := combo(operand)
			if err != nil {
				return nil, err
			}
			switch op {
			case opADV:
				regA >>= v
			case opBST:
				regB = v % 8
			case opOUT:
				out = append(out, int(v%8))
			case opBDV:
				regB = regA >> v
			case opCDV:
				regC = regA >> v
			}
		}
	}
	return out, nil
}
