package metrics

import "time"

// ComparisonRecord is one position searched by both algorithms at one
// depth.
type ComparisonRecord struct {
	Position          int
	Depth             int
	Player            string
	MinimaxScore      int
	AlphaBetaScore    int
	SameMove          bool
	MinimaxLeaves     int64
	AlphaBetaLeaves   int64
	MinimaxDuration   time.Duration
	AlphaBetaDuration time.Duration
}

// DepthSummary aggregates the comparison records of one depth.
type DepthSummary struct {
	Depth           int
	Positions       int
	ScoreAgreements int
	// MeanLeafRatio is the mean of alpha-beta leaves over minimax
	// leaves; below 1.0 means pruning paid off.
	MeanLeafRatio   float64
	StddevLeafRatio float64
}
