package engine

import (
	"context"
	"sync"
	"time"

	"github.com/lixenwraith/cannon-defense/constants"
)

// Cannon owns rotation and ammunition, guarded by its own lock independent of the game lock
type Cannon struct {
	mu        sync.Mutex
	angle     Angle
	rockets   int
	reloading bool

	// Configuration (read-only after init)
	capacity       int
	reloadInterval time.Duration
	reloadSteps    int
}

// NewCannon creates a vertical cannon with full ammunition
func NewCannon(s CannonSettings) *Cannon {
	return &Cannon{
		angle:          constants.AngleInitial,
		rockets:        s.Capacity,
		capacity:       s.Capacity,
		reloadInterval: s.ReloadInterval,
		reloadSteps:    s.ReloadSteps,
	}
}

// MoveLeft rotates the cannon one step toward 0 degrees, no-op at the bound
func (c *Cannon) MoveLeft() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.angle > constants.AngleMin {
		c.angle -= constants.AngleStep
	}
}

// MoveRight rotates the cannon one step toward 180 degrees, no-op at the bound
func (c *Cannon) MoveRight() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.angle < constants.AngleMax {
		c.angle += constants.AngleStep
	}
}

// Fire consumes one rocket, returns false when empty
func (c *Cannon) Fire() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rockets > 0 {
		c.rockets--
		return true
	}
	return false
}

// Reload adds one rocket per interval for a fixed number of steps, capped at capacity.
// Blocks for the whole run. Returns false without waiting if a reload is already running.
// Cancelling ctx abandons the remaining steps.
func (c *Cannon) Reload(ctx context.Context) bool {
	c.mu.Lock()
	if c.reloading {
		c.mu.Unlock()
		return false
	}
	c.reloading = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.reloading = false
		c.mu.Unlock()
	}()

	timer := time.NewTimer(c.reloadInterval)
	defer timer.Stop()

	for i := 0; i < c.reloadSteps; i++ {
		if i > 0 {
			timer.Reset(c.reloadInterval)
		}
		select {
		case <-ctx.Done():
			return true
		case <-timer.C:
		}

		c.mu.Lock()
		c.rockets = min(c.rockets+1, c.capacity)
		c.mu.Unlock()
	}
	return true
}

// Angle returns the current rotation
func (c *Cannon) Angle() Angle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.angle
}

// Rockets returns the current ammunition
func (c *Cannon) Rockets() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rockets
}

// Reloading reports whether a reload run is in progress
func (c *Cannon) Reloading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reloading
}

// Capacity returns the ammunition cap
func (c *Cannon) Capacity() int {
	return c.capacity
}
