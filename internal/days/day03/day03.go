// Package day03 solves "Mull It Over": scanning corrupted memory for mul instructions.
package day03

import (
	"regexp"
	"strconv"

	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Mull It Over"

var instructionPattern = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// Op is one recognised instruction.
type Op int

const (
	OpMul Op = iota
	OpDo
	OpDont
)

// Instruction is an operation with its operands (only used by OpMul).
type Instruction struct {
	Op   Op
	A, B int
}

type Solver struct{}

func Module() puzzle.Module {
	return puzzle.New[[]Instruction](3, Title, Solver{})
}

func (Solver) Parse(input string) ([]Instruction, error) {
	var out []Instruction
	for _, m := range instructionPattern.FindAllStringSubmatch(input, -1) {
		switch m[0] {
		case "do()":
			out = append(out, Instruction{Op: OpDo})
		case "don't()":
			out = append(out, Instruction{Op: OpDont})
		default:
			// the pattern guarantees 1-3 digits
			a, _ := strconv.Atoi(m[1])
			b, _ := strconv.Atoi(m[2])
			out = append(out, Instruction{Op: OpMul, A: a, B: b})
		}
	}
	return out, nil
}

func (Solver) PartOne(program []Instruction) (puzzle.Answer, error) {
	total := 0
	for _, ins := range program {
		if ins.Op == OpMul {
			total += ins.A * ins.B
		}
	}
	return puzzle.Int(total), nil
}

// PartTwo honours do() and don't() toggles.
func (Solver) PartTwo(program []Instruction) (puzzle.Answer, error) {
	total := 0
	enabled := true
	for _, ins := range program {
		switch ins.Op {
		case OpDo:
			enabled = true
		case OpDont:
			enabled = false
		case OpMul:
			if enabled {
				total += ins.A * ins.B
			}
		}
	}
	return puzzle.Int(total), nil
}
