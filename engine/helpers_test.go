package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testSettings returns a small grid with millisecond timings so actors finish quickly
func testSettings() Settings {
	return Settings{
		Width:           11,
		Height:          10,
		RocketStepDelay: time.Millisecond,
		SpawnInterval:   time.Millisecond,
		AlienSpeed:      time.Millisecond,
		NumAliens:       10,
		Cannon: CannonSettings{
			Capacity:       5,
			ReloadInterval: time.Millisecond,
			ReloadSteps:    5,
		},
	}
}

func newTestGame(t *testing.T, s Settings) *Game {
	t.Helper()
	g, err := NewGame(s, WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	t.Cleanup(func() {
		g.Abort()
		g.Wait()
	})
	return g
}

// activate moves the next pending alien into the active set at (x, y) without starting its actor
func activate(t *testing.T, g *Game, x, y int) *Alien {
	t.Helper()
	g.mu.Lock()
	defer g.mu.Unlock()
	require.NotEmpty(t, g.pending, "no pending alien left")
	a := g.pending[0]
	g.pending = g.pending[1:]
	a.x = x
	a.y.Store(int64(y))
	g.aliens = append(g.aliens, a)
	return a
}

// launch adds a rocket to the active set at p without starting its actor
func launch(g *Game, p Point, angle Angle) *Rocket {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextRocketID++
	r := newRocket(g.nextRocketID, p, angle)
	g.rockets = append(g.rockets, r)
	return r
}

func requireInvariant(t *testing.T, snap Snapshot) {
	t.Helper()
	require.Equal(t, snap.NumAliens, snap.Landed+snap.Defeated+snap.Active+snap.Pending,
		"landed=%d defeated=%d active=%d pending=%d", snap.Landed, snap.Defeated, snap.Active, snap.Pending)
}
