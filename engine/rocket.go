package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Rocket flies a straight line fixed by its launch angle on its own goroutine.
// Fired -> InFlight -> Expired | Hit
type Rocket struct {
	id    int
	angle Angle

	mu  sync.Mutex
	pos Point

	// Set by the coordinator under the game lock when the rocket scores a hit
	hit atomic.Bool
}

func newRocket(id int, pos Point, angle Angle) *Rocket {
	return &Rocket{id: id, pos: pos, angle: angle}
}

// Angle returns the launch angle
func (r *Rocket) Angle() Angle { return r.angle }

// Position returns the current cell
func (r *Rocket) Position() Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pos
}

// Hit reports whether the rocket was consumed by a collision
func (r *Rocket) Hit() bool { return r.hit.Load() }

func (r *Rocket) setPosition(p Point) {
	r.mu.Lock()
	r.pos = p
	r.mu.Unlock()
}

// nextPosition returns the cell after p for the given angle, false once it would leave the grid
func nextPosition(s Settings, p Point, angle Angle) (Point, bool) {
	d, ok := angle.Step()
	if !ok {
		return p, false
	}
	next := p.Add(d)
	return next, s.InBounds(next)
}

// run steps the rocket, pausing after each move, then asks the coordinator for a collision.
// A rocket that leaves the grid without hitting anything is pruned from the active set.
func (r *Rocket) run(g *Game) {
	for !g.Over() && !r.hit.Load() {
		next, ok := nextPosition(g.settings, r.Position(), r.angle)
		if !ok {
			break
		}
		r.setPosition(next)
		time.Sleep(g.settings.RocketStepDelay)

		if g.CheckCollisions(r) {
			return
		}
	}

	if !r.hit.Load() {
		g.RocketExpired(r)
	}
}
