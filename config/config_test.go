package config

import (
	"os"
	"path/filepath"
	"testing"
	"wumpus/meta"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		cfg := Default()
		require.NoError(t, cfg.Validate())
		require.Equal(t, meta.WIDTH, cfg.Width)
		require.Equal(t, meta.DEPTH_LIMIT, cfg.DepthLimit)
		require.False(t, cfg.Dynamic, "hazards should be static by default")
	})
}

func TestLoad(t *testing.T) {
	t.Run("file values override defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join("testdata", "dynamic.yaml"))
		require.NoError(t, err)

		require.Equal(t, uint64(7), cfg.Seed)
		require.Equal(t, 6, cfg.Width)
		require.Equal(t, 5, cfg.Height)
		require.Equal(t, 1, cfg.Wumpuses)
		require.True(t, cfg.Dynamic)
		require.True(t, cfg.NonDeterministic)
		require.InDelta(t, 0.9, cfg.DirectionProbability, 1e-9)
		require.Equal(t, "bfs", cfg.Strategy)
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join("testdata", "dynamic.yaml"))
		require.NoError(t, err)

		require.Equal(t, meta.PITS, cfg.Pits)
		require.Equal(t, meta.MAX_TURNS, cfg.MaxTurns)
		require.InDelta(t, meta.SENSE_DISTANCE, cfg.SenseDistance, 1e-9)
	})

	t.Run("rejects a grid too small for its entities", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "crowded.yaml"))
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("reports a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("reports malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("width: [1, 2"), 0644))

		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("rejects probability above one", func(t *testing.T) {
		cfg := Default()
		cfg.DirectionProbability = 1.5
		require.ErrorIs(t, cfg.Validate(), ErrInvalid)
	})

	t.Run("rejects negative depth limit", func(t *testing.T) {
		cfg := Default()
		cfg.DepthLimit = -1
		require.ErrorIs(t, cfg.Validate(), ErrInvalid)
	})

	t.Run("accepts a zero depth limit", func(t *testing.T) {
		cfg := Default()
		cfg.DepthLimit = 0
		require.NoError(t, cfg.Validate())
	})
}
