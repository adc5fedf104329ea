package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyluth/advent/pkg/puzzle"
)

const example = `
        7 6 4 2 1
        1 2 7 8 9
        9 7 6 2 1
        1 3 2 4 5
        8 6 4 4 1
        1 3 6 7 9
`

func TestExample(t *testing.T) {
	reports, err := Solver{}.Parse(example)
	require.NoError(t, err)
	require.Len(t, reports, 6)

	one, err := Solver{}.PartOne(reports)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer("2"), one)

	two, err := Solver{}.PartTwo(reports)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer("4"), two)
}

func TestSafe(t *testing.T) {
	tests := []struct {
		name   string
		report []int
		skip   int
		want   bool
	}{
		{name: "decreasing", report: []int{7, 6, 4, 2, 1}, skip: -1, want: true},
		{name: "jump too large", report: []int{1, 2, 7, 8, 9}, skip: -1, want: false},
		{name: "flat", report: []int{8, 6, 4, 4, 1}, skip: -1, want: false},
		{name: "flat removed", report: []int{8, 6, 4, 4, 1}, skip: 2, want: true},
		{name: "direction change removed", report: []int{1, 3, 2, 4, 5}, skip: 1, want: true},
		{name: "first level removed", report: []int{9, 1, 2, 3}, skip: 0, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, safe(tt.report, tt.skip))
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Solver{}.Parse("1 2 x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "number 3 in row 1")
}
