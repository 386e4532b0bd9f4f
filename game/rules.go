package game

// LegalMoves returns every empty square where placing player's disc
// captures at least one opposing run. Moves come back in row-major
// order (increasing row, then increasing col); the searchers' tie
// break depends on that ordering.
func LegalMoves(b Board, player Player) []Move {
	opponent := player.Opponent()
	var moves []Move
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != Empty {
				continue
			}
			if captures(b, r, c, player, opponent) {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// captures reports whether placing player's disc at (r, c) flanks an
// opposing run in at least one direction. The first qualifying
// direction decides; the remaining directions are not scanned.
func captures(b Board, r, c int, player, opponent Player) bool {
	for _, d := range directions {
		i, j := r+d.dr, c+d.dc
		found := false
		for inBounds(i, j) && b[i][j] == opponent {
			i += d.dr
			j += d.dc
			found = true
		}
		if found && inBounds(i, j) && b[i][j] == player {
			return true
		}
	}
	return false
}

// Apply places player's disc on the move square and flips every
// flanked opposing run, returning the resulting board. The caller is
// responsible for only passing moves approved by LegalMoves; Apply
// does not re-validate.
//
// Each direction collects its run first and flips afterwards. Rays
// from the same origin never intersect, so one direction's flips
// cannot corrupt another direction's scan.
func Apply(b Board, m Move, player Player) Board {
	opponent := player.Opponent()
	b[m.Row][m.Col] = player
	for _, d := range directions {
		i, j := m.Row+d.dr, m.Col+d.dc
		var run []Move
		for inBounds(i, j) && b[i][j] == opponent {
			run = append(run, Move{Row: i, Col: j})
			i += d.dr
			j += d.dc
		}
		if len(run) > 0 && inBounds(i, j) && b[i][j] == player {
			for _, f := range run {
				b[f.Row][f.Col] = player
			}
		}
	}
	return b
}

// IsTerminal reports whether neither side has a legal move. A full
// board is terminal by implication; a board with empty squares can be
// terminal too when no capture exists for either side.
func IsTerminal(b Board) bool {
	return len(LegalMoves(b, Black)) == 0 && len(LegalMoves(b, White)) == 0
}

// Winner returns the side holding more discs, or Empty on a draw.
func Winner(b Board) Cell {
	black, white := b.Counts()
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}
