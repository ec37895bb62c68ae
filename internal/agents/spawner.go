// Ant spawning — creates ants at the colony, for the initial burst and for
// rate-limited admissions during the run.
package agents

import (
	"math"
	"math/rand"

	"antfarm/internal/world"
)

// Spawner creates ants with monotonically increasing IDs.
type Spawner struct {
	rng    *rand.Rand
	params Params
	nextID ID
}

// NewSpawner creates a spawner with its own seeded random stream.
func NewSpawner(seed int64, p Params) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		params: p,
		nextID: 1,
	}
}

// Spawn creates one searching ant at the center of the given cell with a
// uniform random heading.
func (s *Spawner) Spawn(at world.Coord) *Ant {
	id := s.nextID
	s.nextID++

	pos := Vec2{X: float64(at.X) + 0.5, Y: float64(at.Y) + 0.5}
	heading := s.rng.Float64() * 2 * math.Pi
	return NewAnt(id, pos, heading, s.params)
}

// SpawnBatch creates count ants at the given cell.
func (s *Spawner) SpawnBatch(count int, at world.Coord) []*Ant {
	ants := make([]*Ant, 0, count)
	for i := 0; i < count; i++ {
		ants = append(ants, s.Spawn(at))
	}
	return ants
}
