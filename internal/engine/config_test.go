package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cols", func(c *Config) { c.Cols = 0 }},
		{"unknown terrain", func(c *Config) { c.Terrain = "swamp" }},
		{"zero evaporation", func(c *Config) { c.EvaporationRate = 0 }},
		{"evaporation above one", func(c *Config) { c.EvaporationRate = 1.5 }},
		{"negative pheromone max", func(c *Config) { c.PheromoneMax = -1 }},
		{"zero spawn cadence", func(c *Config) { c.SpawnEvery = 0 }},
		{"zero speed", func(c *Config) { c.Ants.Speed = 0 }},
		{"negative deposit", func(c *Config) { c.Ants.ExploreDeposit = -0.1 }},
		{"turn chance above one", func(c *Config) { c.Ants.RandomTurnChance = 1.2 }},
		{"negative food radius", func(c *Config) { c.Ants.FoodRadius = -1 }},
		{"negative colony radius", func(c *Config) { c.Ants.ColonyRadius = -1 }},
		{"negative goal sense radius", func(c *Config) { c.Ants.GoalSenseRadius = -1 }},
		{"negative follow weight", func(c *Config) { c.Ants.FollowWeight = -0.5 }},
		{"zero duration", func(c *Config) { c.Ants.PheromoneDuration = 0 }},
		{"zero history", func(c *Config) { c.Ants.HistoryLength = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	data := []byte(`
cols: 31
rows: 21
terrain: cave
seed: 1234
ants:
  speed: 0.4
  history_length: 8
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 31, cfg.Cols)
	assert.Equal(t, 21, cfg.Rows)
	assert.Equal(t, TerrainCave, cfg.Terrain)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, 0.4, cfg.Ants.Speed)
	assert.Equal(t, 8, cfg.Ants.HistoryLength)

	// Untouched fields keep their defaults.
	def := DefaultConfig()
	assert.Equal(t, def.EvaporationRate, cfg.EvaporationRate)
	assert.Equal(t, def.Ants.SenseRadius, cfg.Ants.SenseRadius)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("evaporation_rate: 7\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
