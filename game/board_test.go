package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	black, white := b.Counts()
	require.Equal(t, 2, black, "Black should start with two discs")
	require.Equal(t, 2, white, "White should start with two discs")
	require.Equal(t, 60, b.Count(Empty), "All other squares should be empty")

	require.Equal(t, White, b[3][3])
	require.Equal(t, White, b[4][4])
	require.Equal(t, Black, b[3][4])
	require.Equal(t, Black, b[4][3])
}

func TestBoardCopyIsIndependent(t *testing.T) {
	b := NewBoard()
	c := b.Copy()
	c[0][0] = Black

	require.Equal(t, Empty, b[0][0], "Writing a copy should not touch the original")
	require.Equal(t, Black, c[0][0])
}

func TestOpponent(t *testing.T) {
	require.Equal(t, White, Black.Opponent())
	require.Equal(t, Black, White.Opponent())
	require.Equal(t, Black, Black.Opponent().Opponent(), "Opponent should be involutive")
	require.Panics(t, func() { Empty.Opponent() }, "Empty is not a player")
}

func TestBoardRows(t *testing.T) {
	rows := NewBoard().Rows()

	require.Len(t, rows, Size)
	require.Equal(t, "...OX...", rows[3])
	require.Equal(t, "...XO...", rows[4])
	require.Equal(t, "........", rows[0])
}
