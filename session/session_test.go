package session

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cannon-defense/config"
	"github.com/lixenwraith/cannon-defense/constants"
	"github.com/lixenwraith/cannon-defense/engine"
	"github.com/lixenwraith/cannon-defense/input"
)

// scriptedInput feeds blocking waits and frame polls from separate queues
type scriptedInput struct {
	waits chan input.Intent
	polls chan input.Intent
}

func newScriptedInput() *scriptedInput {
	return &scriptedInput{
		waits: make(chan input.Intent, 16),
		polls: make(chan input.Intent, 16),
	}
}

func (s *scriptedInput) Poll(time.Duration) input.Intent {
	select {
	case in := <-s.polls:
		return in
	default:
		return input.Intent{}
	}
}

func (s *scriptedInput) Wait(ctx context.Context) (input.Intent, error) {
	select {
	case in := <-s.waits:
		return in, nil
	case <-ctx.Done():
		return input.Intent{}, ctx.Err()
	}
}

func (s *scriptedInput) Drain() {}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	cfg.Grid.Width = 5
	cfg.Grid.Height = 3
	cfg.Rocket.StepDelay = time.Millisecond
	cfg.Alien.SpawnInterval = time.Millisecond
	cfg.Cannon.ReloadInterval = time.Millisecond
	cfg.Tiers = []constants.Tier{
		{Name: "rapido", Label: "Rápido", AlienSpeed: time.Millisecond, NumAliens: 1},
		{Name: "lento", Label: "Lento", AlienSpeed: 100 * time.Millisecond, NumAliens: 10},
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func newTestSession(t *testing.T) (*Session, *scriptedInput, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 12)
	t.Cleanup(screen.Fini)

	in := newScriptedInput()
	s := New(testConfig(t), screen, in, WithGameOptions(engine.WithRand(rand.New(rand.NewSource(7)))))
	return s, in, screen
}

func screenText(screen tcell.SimulationScreen) string {
	cells, w, h := screen.GetContents()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) > 0 {
				b.WriteRune(c.Runes[0])
			} else {
				b.WriteRune(' ')
			}
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func TestMenu_SelectsListedTier(t *testing.T) {
	s, in, screen := newTestSession(t)

	in.waits <- input.Intent{Type: input.IntentFire}
	in.waits <- input.Intent{Type: input.IntentSelectTier, Tier: 5}
	in.waits <- input.Intent{Type: input.IntentSelectTier, Tier: 1}

	tier, err := s.Menu(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "lento", tier.Name)
	assert.Contains(t, screenText(screen), constants.TextMenuTitle)
	assert.Contains(t, screenText(screen), "2. Lento")
}

func TestMenu_Quit(t *testing.T) {
	s, in, _ := newTestSession(t)
	in.waits <- input.Intent{Type: input.IntentQuit}

	_, err := s.Menu(context.Background())
	assert.ErrorIs(t, err, ErrQuit)
}

func TestMenu_ContextCancelled(t *testing.T) {
	s, _, _ := newTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Menu(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlay_SingleLandingIsDefeat(t *testing.T) {
	s, _, screen := newTestSession(t)

	victory, err := s.Play(context.Background(), s.cfg.Tiers[0])
	require.NoError(t, err)
	assert.False(t, victory)

	text := screenText(screen)
	assert.Contains(t, text, constants.TextLanded+constants.LandedMarker)
	assert.NotContains(t, text, constants.DefeatedMarker)
}

func TestPlay_QuitAbortsGame(t *testing.T) {
	s, in, _ := newTestSession(t)
	in.polls <- input.Intent{Type: input.IntentRotateLeft}
	in.polls <- input.Intent{Type: input.IntentFire}
	in.polls <- input.Intent{Type: input.IntentQuit}

	done := make(chan error, 1)
	go func() {
		_, err := s.Play(context.Background(), s.cfg.Tiers[1])
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrQuit)
	case <-time.After(5 * time.Second):
		t.Fatal("play did not return after quit")
	}
}

func TestPlay_ContextCancelled(t *testing.T) {
	s, _, _ := newTestSession(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := s.Play(ctx, s.cfg.Tiers[1])
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEndScreen_WaitsForAcknowledge(t *testing.T) {
	s, in, screen := newTestSession(t)
	in.waits <- input.Intent{Type: input.IntentFire}
	in.waits <- input.Intent{Type: input.IntentReload}
	in.waits <- input.Intent{Type: input.IntentAcknowledge}

	require.NoError(t, s.EndScreen(context.Background(), true))

	text := screenText(screen)
	assert.Contains(t, text, constants.TextGameOver)
	assert.Contains(t, text, constants.TextVictory)
	assert.Contains(t, text, constants.TextContinue)
	assert.Empty(t, in.waits)
}

func TestEndScreen_Quit(t *testing.T) {
	s, in, screen := newTestSession(t)
	in.waits <- input.Intent{Type: input.IntentQuit}

	assert.ErrorIs(t, s.EndScreen(context.Background(), false), ErrQuit)
	assert.Contains(t, screenText(screen), constants.TextDefeat)
}

func TestRun_ReturnsToMenuAfterAcknowledge(t *testing.T) {
	s, in, _ := newTestSession(t)

	in.waits <- input.Intent{Type: input.IntentSelectTier, Tier: 0}
	in.waits <- input.Intent{Type: input.IntentAcknowledge}
	in.waits <- input.Intent{Type: input.IntentSelectTier, Tier: 0}
	in.waits <- input.Intent{Type: input.IntentAcknowledge}
	in.waits <- input.Intent{Type: input.IntentQuit}

	err := s.Run(context.Background())
	assert.ErrorIs(t, err, ErrQuit)
	assert.Empty(t, in.waits)
}
