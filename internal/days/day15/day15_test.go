package day15

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyluth/advent/internal/grid"
	"github.com/dyluth/advent/pkg/puzzle"
)

const small = `########
          #..O.O.#
          ##@.O..#
          #...O..#
          #.#.O..#
          #...O..#
          #......#
          ########

          <^^>>>vv<v>>v<<
`

const large = `##########
          #..O..O.O#
          #......O.#
          #.OO..O.O#
          #..O@..O.#
          #O#..O...#
          #O..O..O.#
          #.OO.O.OO#
          #....O...#
          ##########

          <vv>^<v^>v>^vv^v>v<>v^v<v<^vv<<<^><<><>>v<vvv<>^v^>^<<<><<v<<<v^vv^v>^
          vvv<<^>^v^^><<>>><>^<<><^vv^^<>vvv<>><^^v>^>vv<>v<<<<v<^v>^<^^>>>^<v<v
          ><>vv>v^v^<>><>>>><^^>vv>v<^^^>>v^v^<^^>v^^>v^<^v>v<>>v^v^<v>v^^<^^vv<
          <<v<^>>^^^^>>>v^<>vvv^><v<<<>^^^vv^<vvv>^>v<^^^^v<>^>vvvv><>>v^<<^^^^^
          ^><^><>>><>^^<<^^v>>><^<v>^<vv>>v>>>^v><>^v><<<<v>>v<v<v>vvv>^<><<>^><
          ^>><>^v<><^vvv<^^<><v<<<<<><^v<<<><<<^^<v<^^^><^>>^<v^><<<^>>^v<v^v<v^
          >^>>^v>vv>^<<^v<>><<><<v<<v><>v<^vv<<<>^^v^>^^>>><<^v>>v^v><^^>>^<>vv^
          <><^^>^^^<><vvvvv^v<v<<>^v<v>v<<^><<><<><<<^^<<<^<<>><<><^^^>^^<>^>v<>
          ^^>vv<^v^v<vv>^<><v<^v>^^^>>>^^vvv^>vvv<>>>^<^>>>>>^<<^v>^vvv<>^<><<v>
          v^^>>><<^^<>>^v^<v^vv<>v^<<>^<^v^v><^<<<><<^<v><v<>vv>>v><v^<vv<>v^<<^
`

const wideStack = `#######
          #...#.#
          #.....#
          #..OO@#
          #..O..#
          #.....#
          #######

          <vv<<^^<<^^
`

func parse(t *testing.T, input string) Warehouse {
	t.Helper()
	w, err := Solver{}.Parse(input)
	require.NoError(t, err)
	return w
}

func TestParse(t *testing.T) {
	w := parse(t, small)
	assert.Equal(t, grid.Point{X: 2, Y: 2}, w.Robot)
	assert.Equal(t, byte('.'), w.Map.At(w.Robot))
	assert.Len(t, w.Moves, 15)
	assert.Len(t, parse(t, large).Moves, 700)
}

func TestPartOne(t *testing.T) {
	one, err := Solver{}.PartOne(parse(t, small))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer("2028"), one)

	one, err = Solver{}.PartOne(parse(t, large))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer("10092"), one)
}

func TestPartTwo(t *testing.T) {
	two, err := Solver{}.PartTwo(parse(t, wideStack))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(100*1+5+100*2+7+100*3+6), two)

	two, err = Solver{}.PartTwo(parse(t, large))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer("9021"), two)
}

func TestPartsDoNotShareState(t *testing.T) {
	w := parse(t, small)
	before := w.Map.String()

	_, err := Solver{}.PartOne(w)
	require.NoError(t, err)
	_, err = Solver{}.PartTwo(w)
	require.NoError(t, err)

	assert.Equal(t, before, w.Map.String())
}

func TestParseWithoutRobot(t *testing.T) {
	_, err := Solver{}.Parse("####\n#..#\n####\n\n<<")
	assert.Error(t, err)
}
