// Read-only per-tick state exposure for rendering collaborators. The
// snapshot copies mutable values; the grid is static and shared by
// reference.
package engine

import (
	"antfarm/internal/agents"
	"antfarm/internal/pheromone"
	"antfarm/internal/world"
)

// AntView is one agent's displayable state.
type AntView struct {
	ID      agents.ID   `json:"id"`
	X       float64     `json:"x"`
	Y       float64     `json:"y"`
	Heading float64     `json:"heading"`
	Cell    world.Coord `json:"cell"`
	State   string      `json:"state"`
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Tick      uint64      `json:"tick"`
	Grid      *world.Grid `json:"-"`
	Explore   []float64   `json:"explore"`
	Return    []float64   `json:"return"`
	Ants      []AntView   `json:"ants"`
	Colony    world.Coord `json:"colony"`
	Food      world.Coord `json:"food"`
	FoodFound uint64      `json:"food_found"`
}

// Snapshot captures the current engine state. Must be called between ticks;
// the engine is single-threaded by contract.
func (s *Simulation) Snapshot() Snapshot {
	views := make([]AntView, len(s.Ants))
	for i, a := range s.Ants {
		views[i] = AntView{
			ID:      a.ID,
			X:       a.Pos.X,
			Y:       a.Pos.Y,
			Heading: a.Heading,
			Cell:    a.Cell,
			State:   a.State.String(),
		}
	}

	return Snapshot{
		Tick:      s.LastTick,
		Grid:      s.Grid,
		Explore:   s.Field.Values(pheromone.ChannelExplore),
		Return:    s.Field.Values(pheromone.ChannelReturn),
		Ants:      views,
		Colony:    s.Colony,
		Food:      s.Food,
		FoodFound: s.FoodFound,
	}
}
