package game

// Cell is the content of a single board square.
type Cell int8

const (
	Empty Cell = iota
	Black
	White
)

// Player is a side in the game. Valid values are Black and White;
// Black always moves first.
type Player = Cell

// Opponent returns the other side. It is total over the two player
// values and involutive.
func (c Cell) Opponent() Player {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		panic("no opponent for an empty cell")
	}
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "X"
	case White:
		return "O"
	default:
		return " "
	}
}

// Name returns the human readable side name, used in logs and final
// results.
func (c Cell) Name() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "None"
	}
}
