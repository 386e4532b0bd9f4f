package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"othello/searcher"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.Equal(t, 3, cfg.Depth)
	require.Equal(t, AlgorithmAlphaBeta, cfg.Algorithm)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeFile(t, "depth: 4\nalgorithm: minimax\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 4, cfg.Depth)
		require.Equal(t, AlgorithmMinimax, cfg.Algorithm)
		require.Equal(t, Default().Listen, cfg.Listen, "Absent fields keep their defaults")
	})

	t.Run("rejects unknown algorithm", func(t *testing.T) {
		path := writeFile(t, "algorithm: mcts\n")

		_, err := Load(path)

		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown algorithm")
	})

	t.Run("rejects negative depth", func(t *testing.T) {
		path := writeFile(t, "depth: -1\n")

		_, err := Load(path)

		require.Error(t, err)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := writeFile(t, "depth: [\n")

		_, err := Load(path)

		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Error(t, err)
	})
}

func TestNewSearcher(t *testing.T) {
	cfg := Default()

	cfg.Algorithm = AlgorithmMinimax
	s, err := cfg.NewSearcher()
	require.NoError(t, err)
	require.IsType(t, &searcher.Minimax{}, s)

	cfg.Algorithm = AlgorithmAlphaBeta
	s, err = cfg.NewSearcher()
	require.NoError(t, err)
	require.IsType(t, &searcher.AlphaBeta{}, s)
}
