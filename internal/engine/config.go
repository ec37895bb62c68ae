// Simulation configuration — every tuning knob in one YAML-loadable bundle.
package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"antfarm/internal/agents"
)

// TerrainKind selects the map generator.
type TerrainKind string

const (
	TerrainMaze TerrainKind = "maze"
	TerrainCave TerrainKind = "cave"
)

// Config holds the full simulation setup. Zero-value fields in a loaded
// file fall back to DefaultConfig values.
type Config struct {
	// Requested grid dimensions; both are normalized to odd values >= 3
	// by the generators.
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`

	// Terrain picks the generator; CaveThreshold applies to "cave" only.
	Terrain       TerrainKind `yaml:"terrain"`
	CaveThreshold float64     `yaml:"cave_threshold"`

	// Seed drives all randomness; 0 picks a random seed at setup.
	Seed int64 `yaml:"seed"`

	// Population control.
	InitialAnts   int `yaml:"initial_ants"`
	PopulationCap int `yaml:"population_cap"`
	// SpawnEvery is the tick gap between mid-run admissions.
	SpawnEvery uint64 `yaml:"spawn_every"`

	// Field dynamics.
	EvaporationRate float64 `yaml:"evaporation_rate"`
	PheromoneMax    float64 `yaml:"pheromone_max"`

	// Agent tuning.
	Ants agents.Params `yaml:"ants"`
}

// DefaultConfig returns a reasonable stock simulation.
func DefaultConfig() Config {
	return Config{
		Cols:            61,
		Rows:            41,
		Terrain:         TerrainMaze,
		CaveThreshold:   0.45,
		Seed:            0,
		InitialAnts:     10,
		PopulationCap:   80,
		SpawnEvery:      12,
		EvaporationRate: 0.015,
		PheromoneMax:    5.0,
		Ants:            agents.DefaultParams(),
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run.
func (c Config) Validate() error {
	if c.Cols < 1 || c.Rows < 1 {
		return fmt.Errorf("config: grid dimensions must be positive, got %dx%d", c.Cols, c.Rows)
	}
	switch c.Terrain {
	case TerrainMaze, TerrainCave:
	default:
		return fmt.Errorf("config: unknown terrain %q", c.Terrain)
	}
	if c.EvaporationRate <= 0 || c.EvaporationRate > 1 {
		return fmt.Errorf("config: evaporation_rate must be in (0, 1], got %g", c.EvaporationRate)
	}
	if c.PheromoneMax <= 0 {
		return fmt.Errorf("config: pheromone_max must be positive, got %g", c.PheromoneMax)
	}
	if c.PopulationCap < 0 {
		return fmt.Errorf("config: population_cap must be >= 0, got %d", c.PopulationCap)
	}
	if c.SpawnEvery == 0 {
		return fmt.Errorf("config: spawn_every must be >= 1")
	}
	p := c.Ants
	if p.Speed <= 0 {
		return fmt.Errorf("config: ant speed must be positive, got %g", p.Speed)
	}
	if p.SenseRadius <= 0 || p.SenseAngle <= 0 {
		return fmt.Errorf("config: sense radius and angle must be positive")
	}
	if p.GoalSenseRadius < 0 {
		return fmt.Errorf("config: goal_sense_radius must be >= 0, got %d", p.GoalSenseRadius)
	}
	if p.FollowWeight < 0 {
		return fmt.Errorf("config: follow_weight must be >= 0, got %g", p.FollowWeight)
	}
	if p.FoodRadius < 0 || p.ColonyRadius < 0 {
		return fmt.Errorf("config: detection radii must be >= 0, got food=%d colony=%d", p.FoodRadius, p.ColonyRadius)
	}
	if p.TurnAngle <= 0 {
		return fmt.Errorf("config: turn_angle must be positive, got %g", p.TurnAngle)
	}
	if p.RandomTurnChance < 0 || p.RandomTurnChance > 1 {
		return fmt.Errorf("config: random_turn_chance must be in [0, 1], got %g", p.RandomTurnChance)
	}
	if p.ExploreDeposit < 0 || p.ReturnDeposit < 0 {
		return fmt.Errorf("config: deposition rates must be >= 0")
	}
	if p.PheromoneDuration < 1 {
		return fmt.Errorf("config: pheromone_duration must be >= 1, got %d", p.PheromoneDuration)
	}
	if p.HistoryLength < 1 {
		return fmt.Errorf("config: history_length must be >= 1, got %d", p.HistoryLength)
	}
	return nil
}
