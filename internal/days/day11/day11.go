// Package day11 solves "Plutonian Pebbles": counting stones that split as you blink.
package day11

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dyluth/advent/pkg/puzzle"
)

const Title = "Plutonian Pebbles"

type Solver struct{}

func Module() puzzle.Module {
	return puzzle.New[[]int](11, Title, Solver{})
}

func (Solver) Parse(input string) ([]int, error) {
	var stones []int
	for _, field := range strings.Fields(input) {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid stone %q: %w", field, err)
		}
		stones = append(stones, v)
	}
	return stones, nil
}

func (Solver) PartOne(stones []int) (puzzle.Answer, error) {
	return puzzle.Int(Blink(stones, 25)), nil
}

func (Solver) PartTwo(stones []int) (puzzle.Answer, error) {
	return puzzle.Int(Blink(stones, 75)), nil
}

// Blink returns how many stones exist after the given number of blinks.
// Stone order never affects the count, so equal stones are grouped.
func Blink(stones []int, times int) int {
	counts := make(map[int]int, len(stones))
	for _, s := range stones {
		counts[s]++
	}
	for range times {
		next := make(map[int]int, len(counts)*2)
		for stone, n := range counts {
			switch {
			case stone == 0:
				next[1] += n
			case digits(stone)%2 == 0:
				half := pow10(digits(stone) / 2)
				next[stone/half] += n
				next[stone%half] += n
			default:
				next[stone*2024] += n
			}
		}
		counts = next
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

func pow10(n int) int {
	p := 1
	for range n {
		p *= 10
	}
	return p
}
