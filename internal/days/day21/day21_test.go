package day21

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyluth/advent/pkg/puzzle"
)

const example = `029A
          980A
          179A
          456A
          379A
`

func TestExample(t *testing.T) {
	codes, err := Solver{}.Parse(example)
	require.NoError(t, err)
	require.Len(t, codes, 5)
	assert.Equal(t, Code{Keys: "029A", Value: 29}, codes[0])

	one, err := Solver{}.PartOne(codes)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer("126384"), one)

	two, err := Solver{DirectionalTwo: 2}.PartTwo(codes)
	require.NoError(t, err)
	assert.Equal(t, one, two)
}

func TestSequenceLengths(t *testing.T) {
	tests := []struct {
		keys   string
		robots int
		want   int
	}{
		{"029A", 0, len("<A^A>^^AvvvA")},
		{"029A", 1, len("v<<A>>^A<A>AvA<^AA>A<vAAA>^A")},
		{"029A", 2, 68},
		{"980A", 2, 60},
		{"179A", 2, 68},
		{"456A", 2, 64},
		{"379A", 2, 64},
	}
	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			assert.Equal(t, tt.want, newPresser().code(tt.keys, tt.robots))
		})
	}
}

func TestPathsAvoidGap(t *testing.T) {
	assert.Equal(t, []string{"^<<A"}, numeric.paths('A', '1'))
	assert.Equal(t, []string{">>vA"}, numeric.paths('1', 'A'))
	assert.Equal(t, []string{"v<A"}, arrows.paths('^', '<'))
	assert.Equal(t, []string{"A"}, arrows.paths('v', 'v'))
}

func TestParseRejectsBadCodes(t *testing.T) {
	_, err := Solver{}.Parse("02B")
	assert.Error(t, err)

	_, err = Solver{}.Parse("029")
	assert.Error(t, err)
}
