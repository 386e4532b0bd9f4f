package engine

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"othello/game"
	"othello/searcher"
)

func TestHumanAgent(t *testing.T) {
	t.Run("accepts a legal move", func(t *testing.T) {
		var out bytes.Buffer
		agent := NewHumanAgent(strings.NewReader("2 3\n"), &out)

		mv, err := agent.FindMove(game.NewBoard(), game.Black)

		require.NoError(t, err)
		require.NotNil(t, mv)
		require.Equal(t, game.Move{Row: 2, Col: 3}, *mv)
	})

	t.Run("re-prompts on bad input and illegal moves", func(t *testing.T) {
		var out bytes.Buffer
		// Wrong arity, non-numeric, illegal square, then a legal move.
		in := strings.NewReader("2\nx y\n0 0\n3 2\n")
		agent := NewHumanAgent(in, &out)

		mv, err := agent.FindMove(game.NewBoard(), game.Black)

		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 3, Col: 2}, *mv)
		require.Contains(t, out.String(), "Invalid input")
		require.Contains(t, out.String(), "Illegal move")
	})

	t.Run("passes without reading when blocked", func(t *testing.T) {
		var b game.Board
		b[0][0] = game.Black
		agent := NewHumanAgent(strings.NewReader(""), io.Discard)

		mv, err := agent.FindMove(b, game.White)

		require.NoError(t, err)
		require.Nil(t, mv)
	})

	t.Run("reports end of input", func(t *testing.T) {
		agent := NewHumanAgent(strings.NewReader(""), io.Discard)

		_, err := agent.FindMove(game.NewBoard(), game.Black)

		require.ErrorIs(t, err, io.EOF)
	})
}

func TestRandomAgent(t *testing.T) {
	agent := NewRandomAgent(42)
	b := game.NewBoard()

	mv, err := agent.FindMove(b, game.Black)

	require.NoError(t, err)
	require.NotNil(t, mv)
	require.Contains(t, game.LegalMoves(b, game.Black), *mv)
}

func TestSearchAgent(t *testing.T) {
	agent := NewSearchAgent(searcher.NewAlphaBeta(2))

	mv, err := agent.FindMove(game.NewBoard(), game.Black)

	require.NoError(t, err)
	require.NotNil(t, mv)
	require.Contains(t, game.LegalMoves(game.NewBoard(), game.Black), *mv)
}
