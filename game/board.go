package game

import (
	"fmt"
	"strings"
)

// Size is the board edge length.
const Size = 8

// Board is an 8x8 grid of cells, addressed by (row, col). It is a
// value type: assignment copies the whole grid, so exploratory search
// branches never alias the board they started from.
type Board [Size][Size]Cell

// NewBoard returns the standard starting position: the four center
// squares hold the two starting discs per side in the diagonal
// pattern, everything else is empty.
func NewBoard() Board {
	var b Board
	b[3][3], b[4][4] = White, White
	b[3][4], b[4][3] = Black, Black
	return b
}

// Copy returns an independent copy of the board.
func (b Board) Copy() Board {
	return b
}

// Count returns the number of squares holding c.
func (b Board) Count(c Cell) int {
	n := 0
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			if b[r][col] == c {
				n++
			}
		}
	}
	return n
}

// Counts returns the disc counts for both sides.
func (b Board) Counts() (black, white int) {
	return b.Count(Black), b.Count(White)
}

// Rows returns one string per row, e.g. "...XO...", with row 0 first.
func (b Board) Rows() []string {
	rows := make([]string, Size)
	for r := 0; r < Size; r++ {
		var sb strings.Builder
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(b[r][c].String())
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

// String renders the board with coordinate headers and a score line.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5 6 7\n")
	sb.WriteString(" +-+-+-+-+-+-+-+-+\n")
	for r := 0; r < Size; r++ {
		fmt.Fprintf(&sb, "%d|", r)
		for c := 0; c < Size; c++ {
			sb.WriteString(b[r][c].String())
			sb.WriteByte('|')
		}
		sb.WriteString("\n +-+-+-+-+-+-+-+-+\n")
	}
	black, white := b.Counts()
	fmt.Fprintf(&sb, "Score: X: %d, O: %d\n", black, white)
	return sb.String()
}
