package engine

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/cannon-defense/engine"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// gameMetrics records gameplay counters, no-op unless an OTel provider is installed
type gameMetrics struct {
	fired    metric.Int64Counter
	reloads  metric.Int64Counter
	defeated metric.Int64Counter
	landed   metric.Int64Counter
	decided  metric.Int64Counter
	active   metric.Int64ObservableGauge

	registration metric.Registration
}

func newGameMetrics(m metric.Meter, g *Game) (*gameMetrics, error) {
	gm := &gameMetrics{}
	var err error

	gm.fired, err = m.Int64Counter(
		"cannon.rockets.fired",
		metric.WithDescription("Rockets launched"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fired counter: %w", err)
	}

	gm.reloads, err = m.Int64Counter(
		"cannon.reloads",
		metric.WithDescription("Completed reload runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating reload counter: %w", err)
	}

	gm.defeated, err = m.Int64Counter(
		"aliens.defeated",
		metric.WithDescription("Aliens destroyed by rockets"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating defeated counter: %w", err)
	}

	gm.landed, err = m.Int64Counter(
		"aliens.landed",
		metric.WithDescription("Aliens that reached the bottom row"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating landed counter: %w", err)
	}

	gm.decided, err = m.Int64Counter(
		"sessions.decided",
		metric.WithDescription("Sessions ended by victory or defeat"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating decided counter: %w", err)
	}

	gm.active, err = m.Int64ObservableGauge(
		"game.entities.active",
		metric.WithDescription("Aliens and rockets currently simulated"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating active gauge: %w", err)
	}

	gm.registration, err = m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			g.mu.Lock()
			aliens, rockets := len(g.aliens), len(g.rockets)
			g.mu.Unlock()
			o.ObserveInt64(gm.active, int64(aliens), metric.WithAttributes(attribute.String("kind", "alien")))
			o.ObserveInt64(gm.active, int64(rockets), metric.WithAttributes(attribute.String("kind", "rocket")))
			return nil
		},
		gm.active,
	)
	if err != nil {
		return nil, fmt.Errorf("registering active callback: %w", err)
	}

	return gm, nil
}

func (gm *gameMetrics) rocketFired(angle Angle) {
	gm.fired.Add(context.Background(), 1, metric.WithAttributes(attribute.Int("angle", int(angle))))
}

func (gm *gameMetrics) reloaded() {
	gm.reloads.Add(context.Background(), 1)
}

func (gm *gameMetrics) alienDefeated() {
	gm.defeated.Add(context.Background(), 1)
}

func (gm *gameMetrics) alienLanded() {
	gm.landed.Add(context.Background(), 1)
}

func (gm *gameMetrics) sessionDecided(outcome string) {
	gm.decided.Add(context.Background(), 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// close detaches the gauge callback so finished sessions are not observed
func (gm *gameMetrics) close() {
	if gm.registration != nil {
		_ = gm.registration.Unregister()
	}
}
