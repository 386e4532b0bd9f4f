package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateDiscs(t *testing.T) {
	t.Run("initial board is even", func(t *testing.T) {
		b := NewBoard()
		require.Equal(t, 0, EvaluateDiscs(b, Black))
		require.Equal(t, 0, EvaluateDiscs(b, White))
	})

	t.Run("perspective flips the sign", func(t *testing.T) {
		b := Apply(NewBoard(), Move{Row: 2, Col: 3}, Black)
		require.Equal(t, 3, EvaluateDiscs(b, Black))
		require.Equal(t, -3, EvaluateDiscs(b, White))
	})

	t.Run("zero discs is a valid input", func(t *testing.T) {
		var b Board
		require.Equal(t, 0, EvaluateDiscs(b, Black))

		b[0][0] = White
		require.Equal(t, -1, EvaluateDiscs(b, Black))
	})
}
