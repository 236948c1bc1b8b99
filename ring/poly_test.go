package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolyEqual(t *testing.T) {

	p := NewPolyFromInt64([]int64{1, 2, 3})

	t.Run("Same", func(t *testing.T) {
		require.True(t, p.Equal(NewPolyFromInt64([]int64{1, 2, 3})))
		require.True(t, p.Equal(p.Clone()))
	})

	t.Run("Different", func(t *testing.T) {
		require.False(t, p.Equal(NewPolyFromInt64([]int64{1, 2, -3})))
		require.False(t, p.Equal(NewPolyFromInt64([]int64{1, 2})))
		require.False(t, p.Equal(nil))
	})

	t.Run("Empty", func(t *testing.T) {
		require.True(t, NewPoly(0).Equal(NewPoly(0)))
	})
}
