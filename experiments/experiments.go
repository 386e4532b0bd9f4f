package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

// Comparison configures a minimax vs alpha-beta run.
type Comparison struct {
	Positions int
	MaxDepth  int
	Seed      uint64
	OutDir    string
}

// Run searches a sample of reachable positions with both algorithms at
// every depth up to MaxDepth and writes records plus per-depth
// summaries as CSV. Both algorithms must agree on every score; the
// point of the run is to measure how many fewer leaves alpha-beta
// evaluates.
func (c Comparison) Run() error {
	if c.Positions <= 0 || c.MaxDepth <= 0 {
		return fmt.Errorf("positions and max depth must be positive")
	}

	rng := rand.New(rand.NewSource(c.Seed))
	boards, players := samplePositions(rng, c.Positions)

	var records []metrics.ComparisonRecord
	for i := range boards {
		for depth := 1; depth <= c.MaxDepth; depth++ {
			records = append(records, compareAt(boards[i], players[i], i, depth))
		}
	}

	summaries := summarize(records, c.MaxDepth)
	for _, s := range summaries {
		log.Info().Msgf("depth %d: %d/%d score agreements, mean leaf ratio %.3f",
			s.Depth, s.ScoreAgreements, s.Positions, s.MeanLeafRatio)
	}

	writer, err := metrics.NewWriter(c.OutDir)
	if err != nil {
		return err
	}
	if err := writer.WriteComparisonRecords(records); err != nil {
		return err
	}
	if err := writer.WriteDepthSummaries(summaries); err != nil {
		return err
	}
	log.Info().Msgf("wrote comparison results to %s", writer.BaseDir())
	return nil
}

func compareAt(b game.Board, player game.Player, position, depth int) metrics.ComparisonRecord {
	mmCollector := searcher.NewCollector()
	abCollector := searcher.NewCollector()
	mm := searcher.NewMinimax(depth, searcher.WithMetrics(mmCollector))
	ab := searcher.NewAlphaBeta(depth, searcher.WithMetrics(abCollector))

	mmResult := mm.FindMove(b, player)
	mmMetrics := mmCollector.Complete()
	abResult := ab.FindMove(b, player)
	abMetrics := abCollector.Complete()

	return metrics.ComparisonRecord{
		Position:          position,
		Depth:             depth,
		Player:            player.Name(),
		MinimaxScore:      mmResult.Score,
		AlphaBetaScore:    abResult.Score,
		SameMove:          sameMove(mmResult.Move, abResult.Move),
		MinimaxLeaves:     mmMetrics.Leaves,
		AlphaBetaLeaves:   abMetrics.Leaves,
		MinimaxDuration:   mmMetrics.Duration,
		AlphaBetaDuration: abMetrics.Duration,
	}
}

func sameMove(a, b *game.Move) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// samplePositions plays random moves from the starting position to
// collect midgame boards along with the side to move.
func samplePositions(rng *rand.Rand, n int) ([]game.Board, []game.Player) {
	boards := make([]game.Board, 0, n)
	players := make([]game.Player, 0, n)
	for i := 0; i < n; i++ {
		b := game.NewBoard()
		player := game.Black
		plies := rng.Intn(40)
		for k := 0; k < plies && !game.IsTerminal(b); k++ {
			moves := game.LegalMoves(b, player)
			if len(moves) == 0 {
				player = player.Opponent()
				continue
			}
			b = game.Apply(b, moves[rng.Intn(len(moves))], player)
			player = player.Opponent()
		}
		boards = append(boards, b)
		players = append(players, player)
	}
	return boards, players
}

func summarize(records []metrics.ComparisonRecord, maxDepth int) []metrics.DepthSummary {
	summaries := make([]metrics.DepthSummary, 0, maxDepth)
	for depth := 1; depth <= maxDepth; depth++ {
		var ratios []float64
		agreements := 0
		positions := 0
		for _, r := range records {
			if r.Depth != depth {
				continue
			}
			positions++
			if r.MinimaxScore == r.AlphaBetaScore {
				agreements++
			}
			if r.MinimaxLeaves > 0 {
				ratios = append(ratios, float64(r.AlphaBetaLeaves)/float64(r.MinimaxLeaves))
			}
		}
		mean, stddev := stat.MeanStdDev(ratios, nil)
		summaries = append(summaries, metrics.DepthSummary{
			Depth:           depth,
			Positions:       positions,
			ScoreAgreements: agreements,
			MeanLeafRatio:   mean,
			StddevLeafRatio: stddev,
		})
	}
	return summaries
}
