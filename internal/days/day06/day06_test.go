package day06

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyluth/advent/internal/grid"
	"github.com/dyluth/advent/pkg/puzzle"
)

const example = `
....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func TestExample(t *testing.T) {
	lab, err := Solver{}.Parse(example)
	require.NoError(t, err)
	assert.Equal(t, grid.Point{X: 4, Y: 6}, lab.Start)
	assert.Equal(t, grid.North, lab.Facing)

	one, err := Solver{}.PartOne(lab)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer("41"), one)

	two, err := Solver{}.PartTwo(lab)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer("6"), two)
}

func TestSingleLoopPosition(t *testing.T) {
	lab, err := Solver{}.Parse(`
..........
.#........
.......#..
..........
..........
..........
....^.....
#.........
......#...
..........
`)
	require.NoError(t, err)

	two, err := Solver{}.PartTwo(lab)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer("1"), two)
}

func TestTrappedGuard(t *testing.T) {
	lab, err := Solver{}.Parse(`
.#..
...#
#^..
..#.
`)
	require.NoError(t, err)

	_, err = Solver{}.PartOne(lab)
	require.Error(t, err)
	assert.True(t, puzzle.IsLogic(err))
}

func TestMissingGuard(t *testing.T) {
	_, err := Solver{}.Parse("...\n.#.\n")
	assert.Error(t, err)
}
