package game

import "fmt"

// Move is a board coordinate where the mover places a disc.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

type direction struct {
	dr, dc int
}

// The 8 unit vectors around a square.
var directions = [8]direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func inBounds(r, c int) bool {
	return r >= 0 && r < Size && c >= 0 && c < Size
}
