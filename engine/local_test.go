package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"othello/game"
	"othello/searcher"
)

// countingAgent wraps another agent and records the disc total at
// every turn it was asked to play.
type countingAgent struct {
	inner  Agent
	totals []int
}

func (a *countingAgent) FindMove(b game.Board, p game.Player) (*game.Move, error) {
	black, white := b.Counts()
	a.totals = append(a.totals, black+white)
	return a.inner.FindMove(b, p)
}

func TestLocalRunFinishesGame(t *testing.T) {
	black := &countingAgent{inner: NewSearchAgent(searcher.NewAlphaBeta(2))}
	white := &countingAgent{inner: NewRandomAgent(9)}
	e := NewLocal(black, white)

	winner, err := e.Run()

	require.NoError(t, err)
	require.True(t, game.IsTerminal(e.Board), "The game should run until neither side can move")
	require.Equal(t, game.Winner(e.Board), winner)

	// Both agents saw a monotonically growing board.
	for _, totals := range [][]int{black.totals, white.totals} {
		require.NotEmpty(t, totals)
		for i := 1; i < len(totals); i++ {
			require.GreaterOrEqual(t, totals[i], totals[i-1],
				"Disc totals never decrease over a game")
		}
	}
}

func TestLocalRunDeterministicAgents(t *testing.T) {
	// Two alpha-beta agents play the identical game every time.
	run := func() (game.Cell, game.Board) {
		e := NewLocal(
			NewSearchAgent(searcher.NewAlphaBeta(2)),
			NewSearchAgent(searcher.NewAlphaBeta(2)),
		)
		winner, err := e.Run()
		require.NoError(t, err)
		return winner, e.Board
	}

	winner1, board1 := run()
	winner2, board2 := run()

	require.Equal(t, winner1, winner2)
	require.Equal(t, board1, board2)
}

type fixedAgent struct {
	mv game.Move
}

func (a *fixedAgent) FindMove(game.Board, game.Player) (*game.Move, error) {
	return &a.mv, nil
}

func TestLocalRunRejectsIllegalAgentMove(t *testing.T) {
	e := NewLocal(&fixedAgent{mv: game.Move{Row: 0, Col: 0}}, NewRandomAgent(1))

	_, err := e.Run()

	require.Error(t, err)
	require.Contains(t, err.Error(), "illegal move")
}

func TestNewLocalRequiresAgents(t *testing.T) {
	require.Panics(t, func() { NewLocal(nil, NewRandomAgent(1)) })
}
