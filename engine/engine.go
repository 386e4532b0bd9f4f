package engine

import "othello/game"

// Agent picks a move for one side. Returning a nil move means the
// agent passes; the engine only asks for a move when the side has at
// least one, so a nil from a search agent signals depth ran out inside
// a pass chain and is treated as a pass, not an error.
type Agent interface {
	FindMove(b game.Board, player game.Player) (*game.Move, error)
}

// Engine runs a game to completion and returns the winning side
// (game.Empty on a draw).
type Engine interface {
	Run() (game.Cell, error)
}
