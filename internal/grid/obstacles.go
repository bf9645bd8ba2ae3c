package grid

import (
	"math/rand"
	"time"
)

// DefaultObstacleProb is the chance that one expansion drops a new wall.
const DefaultObstacleProb = 0.05

// ObstaclePolicy is invoked once per node expansion and may add dynamic walls.
type ObstaclePolicy interface {
	Spawn(g *Grid)
}

// NoObstacles never adds walls.
type NoObstacles struct{}

func (NoObstacles) Spawn(*Grid) {}

// RandomObstacles drops a wall on a uniformly random cell with a fixed
// probability per expansion.
type RandomObstacles struct {
	prob float64
	rng  *rand.Rand
}

// NewRandomObstacles returns a policy drawing from a source seeded with seed.
// A zero seed picks one from the clock.
func NewRandomObstacles(prob float64, seed int64) *RandomObstacles {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomObstacles{prob: prob, rng: rand.New(rand.NewSource(seed))}
}

// Spawn implements ObstaclePolicy. The chosen cell is discarded when it is
// the start, the target or a static wall.
func (p *RandomObstacles) Spawn(g *Grid) {
	if p.rng.Float64() >= p.prob {
		return
	}
	c := Cell{Row: p.rng.Intn(g.rows), Col: p.rng.Intn(g.cols)}
	g.AddDynamicWall(c)
}

// PolicyFunc adapts a function to ObstaclePolicy.
type PolicyFunc func(g *Grid)

func (f PolicyFunc) Spawn(g *Grid) { f(g) }
