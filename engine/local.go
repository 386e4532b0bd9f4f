package engine

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"othello/game"
	"othello/utils"
)

// maxTurns caps the turn loop. A game can never reach it (at most 60
// placements plus interleaved passes), it only guards against a
// misbehaving agent.
const maxTurns = 200

// Local runs a complete game between two agents on a single board.
type Local struct {
	Board game.Board
	// Trace, when set, receives a rendering of the board before every
	// turn and the final position. The console driver points it at
	// stdout; servers and tests leave it nil.
	Trace io.Writer

	agents map[game.Player]Agent
}

// NewLocal pairs the black and white agents over a fresh board.
func NewLocal(black, white Agent) *Local {
	if black == nil || white == nil {
		panic("both agents are required")
	}
	return &Local{
		Board:  game.NewBoard(),
		agents: map[game.Player]Agent{game.Black: black, game.White: white},
	}
}

// Run alternates turns until neither side can move, then returns the
// winner (game.Empty on a draw). A side with no legal move passes
// without a board mutation.
func (e *Local) Run() (game.Cell, error) {
	current := game.Black
	for turn := 1; turn <= maxTurns; turn++ {
		if game.IsTerminal(e.Board) {
			break
		}
		e.trace()

		moves := game.LegalMoves(e.Board, current)
		if len(moves) == 0 {
			log.Info().Msgf("%s has no legal move, passing", current.Name())
			current = current.Opponent()
			continue
		}

		mv, err := e.agents[current].FindMove(e.Board, current)
		if err != nil {
			return game.Empty, fmt.Errorf("agent for %s: %w", current.Name(), err)
		}
		if mv == nil {
			log.Info().Msgf("%s passes", current.Name())
			current = current.Opponent()
			continue
		}
		if !utils.Contains(moves, *mv) {
			return game.Empty, fmt.Errorf("agent for %s played illegal move %s", current.Name(), mv)
		}

		e.Board = game.Apply(e.Board, *mv, current)
		log.Info().Msgf("%s plays %s", current.Name(), mv)
		current = current.Opponent()
	}

	e.trace()
	black, white := e.Board.Counts()
	winner := game.Winner(e.Board)
	log.Info().Msgf("game over, X: %d, O: %d, winner: %s", black, white, winner.Name())
	return winner, nil
}

func (e *Local) trace() {
	if e.Trace != nil {
		fmt.Fprint(e.Trace, e.Board.String())
	}
}
