package engine

import (
	"context"
	"math/rand"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/cannon-defense/core"
)

// Game is the authoritative owner of the active aliens, active rockets and the pending queue.
// All collection reads and writes happen under mu, which is never held across a sleep.
type Game struct {
	settings Settings
	cannon   *Cannon

	log     zerolog.Logger
	meter   metric.Meter
	metrics *gameMetrics
	rng     *rand.Rand

	// ===== SHARED STATE (mu protected) =====
	mu           sync.Mutex
	aliens       []*Alien
	rockets      []*Rocket
	pending      []*Alien
	landed       int
	defeated     int
	nextRocketID int

	// ===== TERMINAL FLAGS =====
	// Written under mu, polled lock-free by actors once per step
	victory atomic.Bool
	defeat  atomic.Bool
	over    atomic.Bool

	// Cancelled once the session is decided or aborted
	ctx    context.Context
	cancel context.CancelFunc

	actors    sync.WaitGroup
	closeOnce sync.Once
}

// Option configures a Game at construction
type Option func(*Game)

// WithRand sets the source for alien spawn columns
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithLogger sets the session logger
func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) { g.log = log }
}

// WithMeter overrides the global OTel meter
func WithMeter(m metric.Meter) Option {
	return func(g *Game) { g.meter = m }
}

// NewGame validates settings and queues NumAliens aliens on the top row at random columns
func NewGame(s Settings, opts ...Option) (*Game, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		settings: s,
		cannon:   NewCannon(s.Cannon),
		log:      zerolog.Nop(),
		meter:    meter(),
		aliens:   make([]*Alien, 0, s.NumAliens),
		pending:  make([]*Alien, 0, s.NumAliens),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.ctx, g.cancel = context.WithCancel(context.Background())

	for i := 0; i < s.NumAliens; i++ {
		g.pending = append(g.pending, newAlien(i, g.rng.Intn(s.Width), s.AlienSpeed))
	}

	m, err := newGameMetrics(g.meter, g)
	if err != nil {
		return nil, err
	}
	g.metrics = m

	return g, nil
}

// ===== ACTOR LIFECYCLE =====

// startActor runs fn on a crash-safe goroutine tracked by Wait
func (g *Game) startActor(fn func()) {
	g.actors.Add(1)
	core.Go(func() {
		defer g.actors.Done()
		fn()
	})
}

// Wait blocks until every alien, rocket and reload goroutine started by the game has exited.
// Metric callbacks are released once the session is over and drained.
func (g *Game) Wait() {
	g.actors.Wait()
	if g.Over() {
		g.closeOnce.Do(g.metrics.close)
	}
}

// finish marks the session over and broadcasts cancellation, caller holds mu
func (g *Game) finish() {
	if g.over.Swap(true) {
		return
	}
	g.cancel()
}

// Abort ends an undecided session, used when the player quits mid-game
func (g *Game) Abort() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.over.Load() {
		g.log.Info().Msg("session aborted")
	}
	g.finish()
}

// ===== COORDINATION =====

// CheckCollisions resolves a rocket against the active aliens.
// On the first alien sharing the rocket's cell both are removed and the kill is credited.
// Returns false when the rocket is no longer active, so a repeated call never double counts.
func (g *Game) CheckCollisions(r *Rocket) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	ri := slices.Index(g.rockets, r)
	if ri < 0 {
		return false
	}
	pos := r.Position()

	for ai, a := range g.aliens {
		if a.Position() != pos {
			continue
		}

		a.Destroy()
		r.hit.Store(true)
		g.aliens = slices.Delete(g.aliens, ai, ai+1)
		g.rockets = slices.Delete(g.rockets, ri, ri+1)
		g.defeated++
		g.metrics.alienDefeated()

		g.log.Debug().Int("alien", a.id).Int("rocket", r.id).
			Int("x", pos.X).Int("y", pos.Y).Int("defeated", g.defeated).Msg("alien destroyed")

		if !g.decided() && 2*g.defeated > g.settings.NumAliens {
			g.victory.Store(true)
			g.metrics.sessionDecided("victory")
			g.log.Info().Int("defeated", g.defeated).Int("landed", g.landed).Msg("victory")
			g.finish()
		}
		return true
	}
	return false
}

// AlienLanded credits a landing if the alien is still active
func (g *Game) AlienLanded(a *Alien) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := slices.Index(g.aliens, a)
	if i < 0 {
		return false
	}
	g.aliens = slices.Delete(g.aliens, i, i+1)
	g.landed++
	g.metrics.alienLanded()

	g.log.Debug().Int("alien", a.id).Int("x", a.x).Int("landed", g.landed).Msg("alien landed")

	if !g.decided() && 2*g.landed > g.settings.NumAliens {
		g.defeat.Store(true)
		g.metrics.sessionDecided("defeat")
		g.log.Info().Int("defeated", g.defeated).Int("landed", g.landed).Msg("defeat")
		g.finish()
	}
	return true
}

// RocketExpired prunes a rocket that left the grid without a hit
func (g *Game) RocketExpired(r *Rocket) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if i := slices.Index(g.rockets, r); i >= 0 {
		g.rockets = slices.Delete(g.rockets, i, i+1)
	}
}

// SpawnAliens releases one pending alien per spawn interval until the queue drains,
// the session is decided, or ctx is cancelled
func (g *Game) SpawnAliens(ctx context.Context) error {
	timer := time.NewTimer(0)
	<-timer.C
	defer timer.Stop()

	for !g.Over() {
		g.mu.Lock()
		if len(g.pending) == 0 {
			g.mu.Unlock()
			return nil
		}
		a := g.pending[0]
		g.pending = g.pending[1:]
		g.aliens = append(g.aliens, a)
		g.startActor(func() { a.run(g) })
		g.mu.Unlock()

		g.log.Debug().Int("alien", a.id).Int("x", a.x).Msg("alien spawned")

		timer.Reset(g.settings.SpawnInterval)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-g.ctx.Done():
			return nil
		case <-timer.C:
		}
	}
	return nil
}

// ===== PLAYER COMMANDS =====

// RotateLeft turns the cannon toward 0 degrees
func (g *Game) RotateLeft() { g.cannon.MoveLeft() }

// RotateRight turns the cannon toward 180 degrees
func (g *Game) RotateRight() { g.cannon.MoveRight() }

// Fire launches a rocket at the cannon's angle, false when out of ammunition or the session is over
func (g *Game) Fire() bool {
	if g.Over() || !g.cannon.Fire() {
		return false
	}
	angle := g.cannon.Angle()

	g.mu.Lock()
	g.nextRocketID++
	r := newRocket(g.nextRocketID, g.settings.LaunchPoint(), angle)
	g.rockets = append(g.rockets, r)
	g.startActor(func() { r.run(g) })
	g.mu.Unlock()

	g.metrics.rocketFired(angle)
	g.log.Debug().Int("rocket", r.id).Int("angle", int(angle)).Msg("rocket fired")
	return true
}

// Reload starts a reload run in the background, no-op while one is in progress
func (g *Game) Reload() {
	if g.Over() || g.cannon.Reloading() {
		return
	}
	g.startActor(func() {
		if g.cannon.Reload(g.ctx) {
			g.metrics.reloaded()
			g.log.Debug().Int("rockets", g.cannon.Rockets()).Msg("reload finished")
		}
	})
}

// ===== STATE ACCESSORS =====

// Settings returns the session configuration
func (g *Game) Settings() Settings { return g.settings }

// Cannon returns the player's cannon
func (g *Game) Cannon() *Cannon { return g.cannon }

// Done is closed when the session is decided or aborted
func (g *Game) Done() <-chan struct{} { return g.ctx.Done() }

// Over reports whether actors should stop
func (g *Game) Over() bool { return g.over.Load() }

// Victory reports whether more than half the aliens were destroyed
func (g *Game) Victory() bool { return g.victory.Load() }

// Defeat reports whether more than half the aliens landed
func (g *Game) Defeat() bool { return g.defeat.Load() }

// Decided reports whether the session reached victory or defeat
func (g *Game) Decided() bool { return g.decided() }

func (g *Game) decided() bool {
	return g.victory.Load() || g.defeat.Load()
}
