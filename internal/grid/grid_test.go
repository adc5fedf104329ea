package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	g, err := Parse(`
		#.#
		.S.
	`)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, byte('S'), g.At(Point{1, 1}))
	assert.Equal(t, "#.#\n.S.", g.String())

	_, err = Parse("ab\nabc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid row 2 has width 3")

	_, err = Parse("\n  \n")
	require.Error(t, err)
}

func TestGridAccess(t *testing.T) {
	g := New(4, 3, '.')
	p := Point{3, 2}

	assert.True(t, g.In(p))
	assert.False(t, g.In(Point{4, 0}))
	assert.False(t, g.In(Point{0, -1}))

	g.Set(p, 'x')
	found, ok := g.Find('x')
	require.True(t, ok)
	assert.Equal(t, p, found)
	assert.Equal(t, 11, g.Index(p))
	assert.Equal(t, p, g.Point(11))

	clone := g.Clone()
	clone.Set(p, 'y')
	assert.Equal(t, byte('x'), g.At(p))
}

func TestDistances(t *testing.T) {
	g, err := Parse(`
		S.#
		#.#
		...
	`)
	require.NoError(t, err)

	dist := g.Distances(Point{0, 0}, func(c byte) bool { return c == '#' })
	assert.Equal(t, 0, dist[g.Index(Point{0, 0})])
	assert.Equal(t, 2, dist[g.Index(Point{1, 1})])
	assert.Equal(t, 4, dist[g.Index(Point{0, 2})])
	assert.Equal(t, -1, dist[g.Index(Point{2, 0})])
}

func TestDirections(t *testing.T) {
	assert.Equal(t, East, North.Right())
	assert.Equal(t, West, North.Left())
	assert.Equal(t, South, North.Reverse())
	assert.Equal(t, North, West.Right())
	assert.True(t, South.Vertical())
	assert.False(t, East.Vertical())

	for _, d := range Directions {
		parsed, err := ParseDirection(d.Symbol())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
		assert.Equal(t, Point{}, d.Delta().Add(d.Reverse().Delta()))
	}

	_, err := ParseDirection('x')
	assert.Error(t, err)
}

func TestPoint(t *testing.T) {
	p := Point{3, 4}
	q := Point{1, 2}
	assert.Equal(t, Point{4, 6}, p.Add(q))
	assert.Equal(t, Point{2, 2}, p.Sub(q))
	assert.Equal(t, Point{6, 8}, p.Scale(2))
	assert.Equal(t, 4, p.Manhattan(q))
	assert.Equal(t, "3,4", p.String())
}
