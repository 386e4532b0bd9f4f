package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"

	"othello/game"
	"othello/searcher"
	"othello/utils"
)

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent wraps a searcher as an agent.
func NewSearchAgent(s searcher.Searcher) Agent {
	return &searchAgent{searcher: s}
}

func (a *searchAgent) FindMove(b game.Board, player game.Player) (*game.Move, error) {
	result := a.searcher.FindMove(b, player)
	return result.Move, nil
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent plays a uniformly random legal move. Used as a cheap
// opponent in experiments and tests.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(b game.Board, player game.Player) (*game.Move, error) {
	moves := game.LegalMoves(b, player)
	if len(moves) == 0 {
		return nil, nil
	}
	mv := moves[a.rng.Intn(len(moves))]
	return &mv, nil
}

type humanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanAgent prompts on out and reads "row col" moves from in. Bad
// input and illegal moves re-prompt without touching the board.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewScanner(in), out: out}
}

func (a *humanAgent) FindMove(b game.Board, player game.Player) (*game.Move, error) {
	moves := game.LegalMoves(b, player)
	if len(moves) == 0 {
		return nil, nil
	}

	for {
		fmt.Fprintf(a.out, "Legal moves: %v\n", moves)
		fmt.Fprintf(a.out, "Enter row col: ")
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return nil, fmt.Errorf("reading move: %w", err)
			}
			return nil, io.EOF
		}

		fields := strings.Fields(a.in.Text())
		if len(fields) != 2 {
			fmt.Fprintln(a.out, "Invalid input. Enter two numbers separated by a space.")
			continue
		}
		row, errRow := strconv.Atoi(fields[0])
		col, errCol := strconv.Atoi(fields[1])
		if errRow != nil || errCol != nil {
			fmt.Fprintln(a.out, "Invalid input. Enter two numbers separated by a space.")
			continue
		}

		mv := game.Move{Row: row, Col: col}
		if !utils.Contains(moves, mv) {
			fmt.Fprintln(a.out, "Illegal move. Choose one of the legal moves.")
			continue
		}
		return &mv, nil
	}
}
