package searcher

import (
	"math"

	"othello/game"
)

// Minimax is plain depth-limited minimax over the game tree.
//
// Both searchers use the perspective-relative formulation the
// evaluator enables: every ply evaluates from the viewpoint of the
// player to move at that ply, and every root call maximizes. The
// maximizing flag flips each ply via the recursion, never by player
// identity.
type Minimax struct {
	depth int
	settings
}

// NewMinimax builds a searcher that looks depth plies ahead.
func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 0 {
		panic("search depth must not be negative")
	}
	m := &Minimax{depth: depth, settings: defaultSettings()}
	for _, option := range options {
		option(&m.settings)
	}
	return m
}

func (m *Minimax) FindMove(b game.Board, player game.Player) Result {
	m.metrics.Start()
	score, move := m.search(b, m.depth, player, true)
	return Result{Score: score, Move: move}
}

func (m *Minimax) search(b game.Board, depth int, player game.Player, maximizing bool) (int, *game.Move) {
	if depth == 0 || game.IsTerminal(b) {
		m.metrics.AddLeaf()
		return m.evaluate(b, player), nil
	}
	m.metrics.AddInterior()

	moves := game.LegalMoves(b, player)
	if len(moves) == 0 {
		// Forced pass: same board, opposite player. The pass still
		// consumes one ply of depth.
		score, _ := m.search(b, depth-1, player.Opponent(), !maximizing)
		return score, nil
	}

	best := math.MinInt
	if !maximizing {
		best = math.MaxInt
	}
	var bestMove *game.Move
	for _, mv := range moves {
		child := game.Apply(b.Copy(), mv, player)
		score, _ := m.search(child, depth-1, player.Opponent(), !maximizing)
		// Strict inequality keeps the earliest-seen move on ties,
		// matching the row-major generator order.
		if (maximizing && score > best) || (!maximizing && score < best) {
			best = score
			mv := mv
			bestMove = &mv
		}
	}
	return best, bestMove
}
