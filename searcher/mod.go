package searcher

import "othello/game"

// Result is the outcome of one search call. Move is nil only when the
// searched player has no legal move at the root (or depth ran out
// inside a pass chain); the driver treats that as a pass.
type Result struct {
	Score int
	Move  *game.Move
}

// Searcher picks a move for a player on a board. Implementations must
// never mutate the caller's board: every explored branch works on its
// own copy.
type Searcher interface {
	FindMove(b game.Board, player game.Player) Result
}

type settings struct {
	evaluate game.Evaluator
	metrics  Collector
}

func defaultSettings() settings {
	return settings{
		evaluate: game.EvaluateDiscs,
		metrics:  NewDummyCollector(),
	}
}

type Option func(s *settings)

// WithEvaluationFn replaces the default disc-differential evaluator.
func WithEvaluationFn(evaluate game.Evaluator) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithMetrics installs a collector that counts visited nodes. The
// caller keeps the collector and reads it after FindMove returns.
func WithMetrics(c Collector) Option {
	return func(s *settings) {
		if c != nil {
			s.metrics = c
		}
	}
}
