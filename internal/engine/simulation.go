// Package engine wires the maze, the pheromone field and the ant population
// together and advances them one discrete tick at a time.
package engine

import (
	"fmt"
	"log/slog"
	"math/rand"

	"antfarm/internal/agents"
	"antfarm/internal/entropy"
	"antfarm/internal/pheromone"
	"antfarm/internal/world"
)

// Simulation owns the complete engine state: the static grid, the mutable
// field, the ordered ant population (spawn order), the colony and food
// cells, and the delivery counter.
type Simulation struct {
	Grid   *world.Grid
	Field  *pheromone.Field
	Ants   []*agents.Ant
	Colony world.Coord
	Food   world.Coord

	// FoodFound increments exactly once per Returning→Searching transition
	// at the colony. Monotonic.
	FoodFound uint64
	// LastTick is the most recent tick processed.
	LastTick uint64

	// Stats are refreshed by UpdateStats for report logging.
	Stats SimStats

	cfg       Config
	spawner   *agents.Spawner
	rng       *rand.Rand
	lastSpawn uint64
}

// SimStats tracks aggregate simulation statistics.
type SimStats struct {
	Ants         int     `json:"ants"`
	Searching    int     `json:"searching"`
	Returning    int     `json:"returning"`
	FoodFound    uint64  `json:"food_found"`
	ExploreTrail float64 `json:"explore_trail"`
	ReturnTrail  float64 `json:"return_trail"`
}

// NewSimulation generates terrain from the config, places colony and food,
// and spawns the initial burst. Returns an error if the config is invalid
// or no open cell exists near either seeding corner.
func NewSimulation(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	var (
		grid *world.Grid
		err  error
	)
	switch cfg.Terrain {
	case TerrainCave:
		grid, err = world.GenerateCave(cfg.Cols, cfg.Rows, entropy.Derive(seed, entropy.StreamMaze), cfg.CaveThreshold)
	default:
		grid, err = world.Generate(cfg.Cols, cfg.Rows, entropy.New(seed, entropy.StreamMaze))
	}
	if err != nil {
		return nil, fmt.Errorf("generate terrain: %w", err)
	}

	return newWithGrid(cfg, grid, seed)
}

// newWithGrid finishes setup on an already-generated grid.
func newWithGrid(cfg Config, grid *world.Grid, seed int64) (*Simulation, error) {
	colony, ok := world.PlaceNear(grid, world.Coord{X: 1, Y: 1})
	if !ok {
		return nil, fmt.Errorf("setup: no open cell near colony target")
	}
	food, ok := world.PlaceNear(grid, world.Coord{X: grid.Cols() - 2, Y: grid.Rows() - 2})
	if !ok {
		return nil, fmt.Errorf("setup: no open cell near food target")
	}

	s := &Simulation{
		Grid:    grid,
		Field:   pheromone.New(grid.Cols(), grid.Rows(), cfg.PheromoneMax),
		Colony:  colony,
		Food:    food,
		cfg:     cfg,
		spawner: agents.NewSpawner(entropy.Derive(seed, entropy.StreamSpawner), cfg.Ants),
		rng:     entropy.New(seed, entropy.StreamAgents),
	}

	burst := cfg.InitialAnts
	if burst > cfg.PopulationCap {
		burst = cfg.PopulationCap
	}
	s.Ants = s.spawner.SpawnBatch(burst, colony)

	slog.Info("simulation ready",
		"grid", grid.String(),
		"colony", fmt.Sprintf("(%d,%d)", colony.X, colony.Y),
		"food", fmt.Sprintf("(%d,%d)", food.X, food.Y),
		"ants", len(s.Ants),
		"seed", seed,
	)
	return s, nil
}

// CurrentTick returns the most recently processed tick number.
func (s *Simulation) CurrentTick() uint64 {
	return s.LastTick
}

// Tick advances the whole system one discrete step: evaporate the field
// once, update every ant in spawn order, then admit a new ant if below the
// cap and the spawn cadence has elapsed.
//
// Ants later in the order observe deposits made earlier in the same tick.
// That is an accepted property of the model — stigmergic systems tolerate
// asynchronous updates — not something to correct.
func (s *Simulation) Tick() {
	s.LastTick++
	s.Field.Evaporate(s.cfg.EvaporationRate)

	env := agents.Env{
		Grid:   s.Grid,
		Field:  s.Field,
		Colony: s.Colony,
		Food:   s.Food,
		Params: s.cfg.Ants,
		RNG:    s.rng,
	}
	for _, a := range s.Ants {
		if a.Update(&env) {
			s.FoodFound++
		}
	}

	if len(s.Ants) < s.cfg.PopulationCap && s.LastTick-s.lastSpawn >= s.cfg.SpawnEvery {
		s.Ants = append(s.Ants, s.spawner.Spawn(s.Colony))
		s.lastSpawn = s.LastTick
	}
}

// UpdateStats refreshes the aggregate statistics.
func (s *Simulation) UpdateStats() {
	searching, returning := 0, 0
	for _, a := range s.Ants {
		if a.State == agents.StateReturning {
			returning++
		} else {
			searching++
		}
	}

	explore, ret := 0.0, 0.0
	for _, v := range s.Field.Values(pheromone.ChannelExplore) {
		explore += v
	}
	for _, v := range s.Field.Values(pheromone.ChannelReturn) {
		ret += v
	}

	s.Stats = SimStats{
		Ants:         len(s.Ants),
		Searching:    searching,
		Returning:    returning,
		FoodFound:    s.FoodFound,
		ExploreTrail: explore,
		ReturnTrail:  ret,
	}
}

// Report logs a one-line summary of the current state.
func (s *Simulation) Report() {
	s.UpdateStats()
	slog.Info("simulation report",
		"tick", s.LastTick,
		"ants", s.Stats.Ants,
		"searching", s.Stats.Searching,
		"returning", s.Stats.Returning,
		"food_found", s.Stats.FoodFound,
		"explore_trail", fmt.Sprintf("%.1f", s.Stats.ExploreTrail),
		"return_trail", fmt.Sprintf("%.1f", s.Stats.ReturnTrail),
	)
}
