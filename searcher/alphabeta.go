package searcher

import (
	"math"

	"othello/game"
)

// AlphaBeta is minimax with alpha-beta pruning. For identical inputs
// it returns the same score and move as Minimax while evaluating no
// more leaves.
type AlphaBeta struct {
	depth int
	settings
}

// NewAlphaBeta builds a pruning searcher that looks depth plies ahead.
func NewAlphaBeta(depth int, options ...Option) *AlphaBeta {
	if depth < 0 {
		panic("search depth must not be negative")
	}
	a := &AlphaBeta{depth: depth, settings: defaultSettings()}
	for _, option := range options {
		option(&a.settings)
	}
	return a
}

func (a *AlphaBeta) FindMove(b game.Board, player game.Player) Result {
	a.metrics.Start()
	score, move := a.search(b, a.depth, player, math.MinInt, math.MaxInt, true)
	return Result{Score: score, Move: move}
}

func (a *AlphaBeta) search(b game.Board, depth int, player game.Player, alpha, beta int, maximizing bool) (int, *game.Move) {
	if depth == 0 || game.IsTerminal(b) {
		a.metrics.AddLeaf()
		return a.evaluate(b, player), nil
	}
	a.metrics.AddInterior()

	moves := game.LegalMoves(b, player)
	if len(moves) == 0 {
		// Forced pass consumes a ply; the bounds pass through intact.
		score, _ := a.search(b, depth-1, player.Opponent(), alpha, beta, !maximizing)
		return score, nil
	}

	var bestMove *game.Move
	for _, mv := range moves {
		child := game.Apply(b.Copy(), mv, player)
		score, _ := a.search(child, depth-1, player.Opponent(), alpha, beta, !maximizing)
		if maximizing {
			if score > alpha {
				alpha = score
				mv := mv
				bestMove = &mv
			}
			if alpha >= beta {
				break
			}
		} else {
			if score < beta {
				beta = score
				mv := mv
				bestMove = &mv
			}
			if beta <= alpha {
				break
			}
		}
	}
	if maximizing {
		return alpha, bestMove
	}
	return beta, bestMove
}
