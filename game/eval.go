package game

// Evaluator scores a board from the given player's perspective. A
// positive score favors that player.
type Evaluator func(Board, Player) int

// EvaluateDiscs is the disc-count differential: the player's discs
// minus the opponent's. Deliberately simple; it is the leaf heuristic
// both search algorithms use.
func EvaluateDiscs(b Board, player Player) int {
	return b.Count(player) - b.Count(player.Opponent())
}
