package day05

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyluth/advent/pkg/puzzle"
)

const example = `47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
`

func TestExample(t *testing.T) {
	in, err := Solver{}.Parse(example)
	require.NoError(t, err)
	require.Len(t, in.Updates, 6)

	one, err := Solver{}.PartOne(in)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer("143"), one)

	two, err := Solver{}.PartTwo(in)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer("123"), two)

	// repairs happen on copies
	assert.Equal(t, []int{75, 97, 47, 61, 53}, in.Updates[3])
}

func TestContradictoryRules(t *testing.T) {
	in, err := Solver{}.Parse("1|2\n2|3\n3|1\n\n3,2,1\n")
	require.NoError(t, err)

	_, err = Solver{}.PartTwo(in)
	require.Error(t, err)
	assert.True(t, puzzle.IsLogic(err))
}
