// Directional sensing — the discretized cone of pheromone probes an ant
// evaluates each tick to pick a desired heading.
package agents

import (
	"math"

	"antfarm/internal/pheromone"
	"antfarm/internal/world"
)

// Radial probe fractions: each cone angle is sampled at half and full
// sense radius.
var probeRadii = [2]float64{0.5, 1.0}

// senseAndDecideAngle returns the heading the ant wants to take this tick.
//
// Inside GoalSenseRadius of the current goal the exact bearing to the goal
// wins outright. Otherwise five angular offsets spanning the sensing cone
// are each probed at two distances; an eligible probe (in bounds, open,
// not in recent memory) scores the goal-directed trail level weighted by
// FollowWeight plus a small uniform jitter that breaks ties and prevents
// deterministic lock-in. If nothing scores above zero the ant keeps its
// heading with a small random perturbation.
func (a *Ant) senseAndDecideAngle(env *Env) float64 {
	p := env.Params

	goal := env.Food
	trail := pheromone.ChannelReturn
	if a.State == StateReturning {
		goal = env.Colony
		trail = pheromone.ChannelExplore
	}

	if world.Dist(a.Cell, goal) <= p.GoalSenseRadius {
		return math.Atan2(float64(goal.Y)+0.5-a.Pos.Y, float64(goal.X)+0.5-a.Pos.X)
	}

	best := 0.0
	bestAngle := a.Heading
	found := false

	for i := 0; i < 5; i++ {
		offset := -p.SenseAngle/2 + float64(i)*p.SenseAngle/4
		angle := a.Heading + offset

		for _, rf := range probeRadii {
			d := rf * p.SenseRadius
			px := a.Pos.X + math.Cos(angle)*d
			py := a.Pos.Y + math.Sin(angle)*d
			cx := int(math.Floor(px))
			cy := int(math.Floor(py))

			if !env.Grid.InBounds(cx, cy) || env.Grid.At(cx, cy) != world.CellPath {
				continue
			}
			if a.memory.Contains(world.Coord{X: cx, Y: cy}, true) {
				continue
			}

			score := env.Field.Level(trail, cx, cy)*p.FollowWeight +
				env.RNG.Float64()*env.Field.Max()*0.1
			if score > best {
				best = score
				bestAngle = angle
				found = true
			}
		}
	}

	if !found {
		// Unmarked or fully blocked surroundings: wander.
		return a.Heading + (env.RNG.Float64()-0.5)*p.TurnAngle
	}
	return bestAngle
}
