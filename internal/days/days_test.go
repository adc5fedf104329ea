package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyluth/advent/pkg/puzzle"
)

func TestRegistryCoversEveryDay(t *testing.T) {
	r := Registry()
	require.Equal(t, 21, r.Len())

	for i, day := range r.Days() {
		assert.Equal(t, puzzle.Day(i+1), day)

		m, err := r.Lookup(day)
		require.NoError(t, err)
		assert.Equal(t, day, m.Day())
		assert.NotEmpty(t, m.Title(), "%s has no title", day)
	}
}

func TestRegistryUnknownDay(t *testing.T) {
	_, err := Registry().Lookup(22)
	require.Error(t, err)
	assert.True(t, puzzle.IsUnknownDay(err))
}
