// Package agents implements the foraging ant: a two-state agent that senses
// the pheromone field through a discretized cone, steers under a bounded
// turn rate, and lays trail with a charge that depletes after each state
// transition.
package agents

import (
	"math/rand"

	"antfarm/internal/pheromone"
	"antfarm/internal/world"
)

// ID identifies an ant. Issued in spawn order by the Spawner.
type ID uint64

// State is the ant's behavioral mode.
type State uint8

const (
	// StateSearching — heading out, looking for food, laying explore trail.
	StateSearching State = iota
	// StateReturning — carrying food home, laying return trail.
	StateReturning
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateSearching:
		return "searching"
	case StateReturning:
		return "returning"
	default:
		return "unknown"
	}
}

// Vec2 is a continuous sub-cell position in grid units.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Params holds every agent-level tuning knob. It lives here rather than in
// the engine config so an ant can be exercised against a synthetic grid and
// field without constructing a full simulation.
type Params struct {
	// Speed is the fixed movement magnitude in cells per tick.
	Speed float64 `yaml:"speed"`

	// SenseRadius is the probe distance of the sensing cone, in cells.
	SenseRadius float64 `yaml:"sense_radius"`
	// SenseAngle is the full angular width of the sensing cone, radians.
	SenseAngle float64 `yaml:"sense_angle"`
	// GoalSenseRadius is the grid distance at which deterministic homing
	// toward the current goal overrides pheromone sensing.
	GoalSenseRadius int `yaml:"goal_sense_radius"`
	// FollowWeight scales the pheromone level in a probe's score.
	FollowWeight float64 `yaml:"follow_weight"`

	// TurnAngle caps the heading change per tick, radians.
	TurnAngle float64 `yaml:"turn_angle"`
	// RandomTurnChance is the per-tick probability of an extra random
	// perturbation after steering.
	RandomTurnChance float64 `yaml:"random_turn_chance"`

	// FoodRadius / ColonyRadius are the grid-distance thresholds for the
	// Searching→Returning and Returning→Searching transitions.
	FoodRadius   int `yaml:"food_radius"`
	ColonyRadius int `yaml:"colony_radius"`

	// PheromoneDuration is the deposition charge granted on each state
	// transition, in ticks.
	PheromoneDuration int `yaml:"pheromone_duration"`
	// ExploreDeposit / ReturnDeposit are the per-channel deposition rates
	// at full charge; the actual amount ramps down linearly with charge.
	ExploreDeposit float64 `yaml:"explore_deposit"`
	ReturnDeposit  float64 `yaml:"return_deposit"`

	// HistoryLength bounds the recently-visited-cell memory used for loop
	// avoidance.
	HistoryLength int `yaml:"history_length"`
}

// DefaultParams returns the tuning used by the stock simulation.
func DefaultParams() Params {
	return Params{
		Speed:             0.22,
		SenseRadius:       3.0,
		SenseAngle:        1.6,
		GoalSenseRadius:   3,
		FollowWeight:      1.0,
		TurnAngle:         0.5,
		RandomTurnChance:  0.15,
		FoodRadius:        1,
		ColonyRadius:      1,
		PheromoneDuration: 600,
		ExploreDeposit:    0.3,
		ReturnDeposit:     0.3,
		HistoryLength:     20,
	}
}

// Env bundles the shared structures an ant reads and writes during one tick.
// References are passed explicitly rather than reached for as globals, so
// data dependencies stay visible and testable.
type Env struct {
	Grid   *world.Grid
	Field  *pheromone.Field
	Colony world.Coord
	Food   world.Coord
	Params Params
	RNG    *rand.Rand
}
