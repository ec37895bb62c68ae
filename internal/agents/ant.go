package agents

import (
	"math"

	"antfarm/internal/pheromone"
	"antfarm/internal/world"
)

// Ant is a single foraging agent. Continuous position and discrete grid
// cell are kept in sync once per tick; speed is fixed, only heading changes.
type Ant struct {
	ID      ID
	Pos     Vec2
	Heading float64
	Cell    world.Coord
	State   State
	Charge  int

	memory *VisitMemory
}

// NewAnt creates a searching ant at pos with full deposition charge.
func NewAnt(id ID, pos Vec2, heading float64, p Params) *Ant {
	return &Ant{
		ID:      id,
		Pos:     pos,
		Heading: heading,
		Cell:    cellOf(pos),
		State:   StateSearching,
		Charge:  p.PheromoneDuration,
		memory:  NewVisitMemory(p.HistoryLength),
	}
}

// Memory exposes the visit history for inspection.
func (a *Ant) Memory() *VisitMemory { return a.memory }

// Update advances the ant one tick against the shared environment, in fixed
// order: sync grid cell, state transition, charge decay, steering, movement,
// bounds clamp, deposition, history. Returns true when the ant delivered
// food to the colony this tick (the Returning→Searching transition).
func (a *Ant) Update(env *Env) bool {
	// 1. Discrete cell from continuous position, clamped into bounds.
	a.Cell = clampCell(cellOf(a.Pos), env.Grid)

	// 2. State transition.
	delivered := a.transition(env)

	// 3. Charge decay, floored at zero.
	if a.Charge > 0 {
		a.Charge--
	}

	// 4. Steering: sense a desired heading, turn toward it under the cap.
	desired := a.senseAndDecideAngle(env)
	a.steer(desired, env)

	// 5. Move, rejecting steps into walls.
	a.move(env)

	// 6. Defensive clamp; normally a no-op given the solid border.
	a.clampPos(env.Grid)

	// Re-sync the cell after the move so deposition and history record
	// where the ant actually is, not where it started the tick.
	a.Cell = clampCell(cellOf(a.Pos), env.Grid)

	// 7. Lay trail while charge remains.
	a.depositTrail(env)

	// 8. Remember the cell.
	a.memory.Record(a.Cell)

	return delivered
}

// transition flips the state machine when the ant is within detection range
// of its current goal.
func (a *Ant) transition(env *Env) bool {
	p := env.Params
	switch a.State {
	case StateSearching:
		if world.Dist(a.Cell, env.Food) <= p.FoodRadius {
			a.State = StateReturning
			// Point back the way it came as the initial homeward bias.
			a.Heading = normalizeAngle(a.Heading + math.Pi)
			a.Charge = p.PheromoneDuration
		}
	case StateReturning:
		if world.Dist(a.Cell, env.Colony) <= p.ColonyRadius {
			a.State = StateSearching
			a.Heading = env.RNG.Float64() * 2 * math.Pi
			a.Charge = p.PheromoneDuration
			return true
		}
	}
	return false
}

// steer turns toward the desired heading, clamped to ±TurnAngle along the
// shortest angular direction, then applies the optional exploratory
// perturbation.
func (a *Ant) steer(desired float64, env *Env) {
	p := env.Params

	diff := normalizeAngle(desired - a.Heading)
	if diff > p.TurnAngle {
		diff = p.TurnAngle
	} else if diff < -p.TurnAngle {
		diff = -p.TurnAngle
	}
	a.Heading = normalizeAngle(a.Heading + diff)

	if env.RNG.Float64() < p.RandomTurnChance {
		a.Heading = normalizeAngle(a.Heading + (env.RNG.Float64()-0.5)*p.TurnAngle)
	}
}

// move commits the heading-scaled step unless it lands in a wall or out of
// bounds; a rejected move keeps the position and redirects the ant onto a
// wholly new random heading for the next attempt.
func (a *Ant) move(env *Env) {
	p := env.Params
	nx := a.Pos.X + math.Cos(a.Heading)*p.Speed
	ny := a.Pos.Y + math.Sin(a.Heading)*p.Speed

	cx := int(math.Floor(nx))
	cy := int(math.Floor(ny))
	if env.Grid.InBounds(cx, cy) && env.Grid.At(cx, cy) == world.CellPath {
		a.Pos = Vec2{nx, ny}
		return
	}
	a.Heading = env.RNG.Float64() * 2 * math.Pi
}

// depositTrail lays pheromone into the channel matching the current state,
// ramped down linearly as the charge depletes.
func (a *Ant) depositTrail(env *Env) {
	p := env.Params
	if a.Charge <= 0 || p.PheromoneDuration <= 0 {
		return
	}

	ch := pheromone.ChannelExplore
	rate := p.ExploreDeposit
	if a.State == StateReturning {
		ch = pheromone.ChannelReturn
		rate = p.ReturnDeposit
	}

	amount := rate * float64(a.Charge) / float64(p.PheromoneDuration)
	if amount < 0 {
		amount = 0
	}
	env.Field.Deposit(ch, a.Cell.X, a.Cell.Y, amount)
}

// clampPos keeps the continuous position inside the grid's spatial extent.
func (a *Ant) clampPos(g *world.Grid) {
	const edge = 1e-6
	maxX := float64(g.Cols()) - edge
	maxY := float64(g.Rows()) - edge
	if a.Pos.X < 0 {
		a.Pos.X = 0
	} else if a.Pos.X > maxX {
		a.Pos.X = maxX
	}
	if a.Pos.Y < 0 {
		a.Pos.Y = 0
	} else if a.Pos.Y > maxY {
		a.Pos.Y = maxY
	}
}

func cellOf(pos Vec2) world.Coord {
	return world.Coord{X: int(math.Floor(pos.X)), Y: int(math.Floor(pos.Y))}
}

func clampCell(c world.Coord, g *world.Grid) world.Coord {
	if c.X < 0 {
		c.X = 0
	} else if c.X >= g.Cols() {
		c.X = g.Cols() - 1
	}
	if c.Y < 0 {
		c.Y = 0
	} else if c.Y >= g.Rows() {
		c.Y = g.Rows() - 1
	}
	return c
}

// normalizeAngle wraps an angle into (-π, π].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
