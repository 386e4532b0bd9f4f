package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists experiment output as CSV files under a timestamped
// subfolder of root.
type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// BaseDir returns the directory this writer writes into.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteComparisonRecords(records []ComparisonRecord) error {
	path := filepath.Join(w.baseDir, "comparison_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create comparison records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{
		"position", "depth", "player",
		"minimax_score", "alphabeta_score", "same_move",
		"minimax_leaves", "alphabeta_leaves",
		"minimax_duration", "alphabeta_duration",
	}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write comparison records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Position),
			strconv.Itoa(record.Depth),
			record.Player,
			strconv.Itoa(record.MinimaxScore),
			strconv.Itoa(record.AlphaBetaScore),
			strconv.FormatBool(record.SameMove),
			strconv.FormatInt(record.MinimaxLeaves, 10),
			strconv.FormatInt(record.AlphaBetaLeaves, 10),
			record.MinimaxDuration.String(),
			record.AlphaBetaDuration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write comparison record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteDepthSummaries(summaries []DepthSummary) error {
	path := filepath.Join(w.baseDir, "depth_summaries.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create depth summaries file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{
		"depth", "positions", "score_agreements",
		"mean_leaf_ratio", "stddev_leaf_ratio",
	}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write depth summaries header: %w", err)
	}

	for _, summary := range summaries {
		row := []string{
			strconv.Itoa(summary.Depth),
			strconv.Itoa(summary.Positions),
			strconv.Itoa(summary.ScoreAgreements),
			strconv.FormatFloat(summary.MeanLeafRatio, 'f', 4, 64),
			strconv.FormatFloat(summary.StddevLeafRatio, 'f', 4, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write depth summary row: %w", err)
		}
	}

	return nil
}
