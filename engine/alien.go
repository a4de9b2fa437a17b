package engine

import (
	"sync/atomic"
	"time"
)

// Alien descends one row per speed interval on its own goroutine.
// Spawned -> Descending -> Destroyed | Landed
type Alien struct {
	id    int
	x     int
	speed time.Duration

	y     atomic.Int64
	alive atomic.Bool
}

func newAlien(id, x int, speed time.Duration) *Alien {
	a := &Alien{id: id, x: x, speed: speed}
	a.alive.Store(true)
	return a
}

// Position returns the current cell
func (a *Alien) Position() Point {
	return Point{X: a.x, Y: int(a.y.Load())}
}

// Alive reports whether the alien has not been destroyed
func (a *Alien) Alive() bool { return a.alive.Load() }

// Destroy marks the alien dead, its actor exits on the next check without landing
func (a *Alien) Destroy() { a.alive.Store(false) }

// run descends until the bottom row, destruction or session end.
// Reaching the bottom row alive is reported as a landing.
func (a *Alien) run(g *Game) {
	bottom := int64(g.settings.Height - 1)

	for a.y.Load() < bottom && a.alive.Load() && !g.Over() {
		a.y.Add(1)
		time.Sleep(a.speed)
	}

	if a.alive.Load() && a.y.Load() >= bottom {
		g.AlienLanded(a)
	}
}
