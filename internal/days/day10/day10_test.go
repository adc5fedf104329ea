package day10

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyluth/advent/pkg/puzzle"
)

const example = `89010123
          78121874
          87430965
          96549874
          45678903
          32019012
          01329801
          10456732
`

func TestExample(t *testing.T) {
	m, err := Solver{}.Parse(example)
	require.NoError(t, err)
	assert.Len(t, m.trailheads(), 9)

	one, err := Solver{}.PartOne(m)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer("36"), one)

	two, err := Solver{}.PartTwo(m)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer("81"), two)
}

func TestImpassableCells(t *testing.T) {
	m, err := Solver{}.Parse(`...0...
...1...
...2...
6543456
7.....7
8.....8
9.....9
`)
	require.NoError(t, err)

	one, err := Solver{}.PartOne(m)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer("2"), one)

	two, err := Solver{}.PartTwo(m)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer("2"), two)
}
