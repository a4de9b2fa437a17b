package session

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/cannon-defense/config"
	"github.com/lixenwraith/cannon-defense/constants"
	"github.com/lixenwraith/cannon-defense/engine"
	"github.com/lixenwraith/cannon-defense/input"
	"github.com/lixenwraith/cannon-defense/render"
)

// ErrQuit is returned when the player asks to leave
var ErrQuit = errors.New("player quit")

// Input is the keyboard collaborator, input.Poller satisfies it
type Input interface {
	Poll(timeout time.Duration) input.Intent
	Wait(ctx context.Context) (input.Intent, error)
	Drain()
}

// Session drives the menu, play and end-screen cycle on one terminal
type Session struct {
	cfg      *config.Config
	renderer *render.Renderer
	input    Input
	log      zerolog.Logger

	gameOpts []engine.Option
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the session logger
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithGameOptions appends options applied to every game the session creates
func WithGameOptions(opts ...engine.Option) Option {
	return func(s *Session) { s.gameOpts = append(s.gameOpts, opts...) }
}

// New creates a session drawing on display and reading keys from in
func New(cfg *config.Config, display render.Display, in Input, opts ...Option) *Session {
	s := &Session{
		cfg:      cfg,
		renderer: render.NewRenderer(display, cfg.Grid.Width, cfg.Grid.Height),
		input:    in,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops difficulty selection, play and end screen until the player quits or ctx ends
func (s *Session) Run(ctx context.Context) error {
	for round := 1; ; round++ {
		tier, err := s.Menu(ctx)
		if err != nil {
			return err
		}

		victory, err := s.Play(ctx, tier)
		if err != nil {
			return err
		}
		s.log.Info().Int("round", round).Str("tier", tier.Name).Bool("victory", victory).Msg("round finished")

		if err := s.EndScreen(ctx, victory); err != nil {
			return err
		}
	}
}

// Menu shows the difficulty selection and blocks until a listed tier is chosen
func (s *Session) Menu(ctx context.Context) (constants.Tier, error) {
	s.renderer.DrawMenu(s.cfg.Tiers)
	s.input.Drain()

	for {
		in, err := s.input.Wait(ctx)
		if err != nil {
			return constants.Tier{}, err
		}

		switch in.Type {
		case input.IntentQuit:
			return constants.Tier{}, ErrQuit
		case input.IntentResize:
			s.renderer.DrawMenu(s.cfg.Tiers)
		case input.IntentSelectTier:
			tier, err := s.cfg.TierAt(in.Tier)
			if err != nil {
				continue
			}
			return tier, nil
		}
	}
}

// Play runs one game at the given tier until victory or defeat.
// The spawner and the frame loop share an errgroup, actors are joined before returning.
func (s *Session) Play(ctx context.Context, tier constants.Tier) (bool, error) {
	log := s.log.With().Str("tier", tier.Name).Logger()

	opts := append([]engine.Option{engine.WithLogger(log)}, s.gameOpts...)
	game, err := engine.NewGame(s.cfg.Settings(tier), opts...)
	if err != nil {
		return false, err
	}
	log.Info().Int("aliens", tier.NumAliens).Dur("alienSpeed", tier.AlienSpeed).Msg("session started")

	s.input.Drain()

	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error { return game.SpawnAliens(gctx) })
	grp.Go(func() error { return s.frameLoop(gctx, game) })

	err = grp.Wait()
	if err != nil {
		game.Abort()
	}
	game.Wait()

	if err != nil {
		return false, err
	}
	return game.Victory(), nil
}

// frameLoop polls one key, applies it, draws, then waits for the next tick
func (s *Session) frameLoop(ctx context.Context, game *engine.Game) error {
	ticker := time.NewTicker(s.cfg.FrameInterval())
	defer ticker.Stop()

	for {
		in := s.input.Poll(s.cfg.Input.PollTimeout)
		switch in.Type {
		case input.IntentQuit:
			game.Abort()
			return ErrQuit
		case input.IntentRotateLeft:
			game.RotateLeft()
		case input.IntentRotateRight:
			game.RotateRight()
		case input.IntentFire:
			game.Fire()
		case input.IntentReload:
			game.Reload()
		}

		s.renderer.DrawFrame(game.Snapshot())

		if game.Decided() {
			return nil
		}

		select {
		case <-ctx.Done():
			game.Abort()
			return ctx.Err()
		case <-game.Done():
		case <-ticker.C:
		}
	}
}

// EndScreen shows the outcome and blocks until the acknowledgment key
func (s *Session) EndScreen(ctx context.Context, victory bool) error {
	s.renderer.DrawEndScreen(victory)
	s.input.Drain()

	for {
		in, err := s.input.Wait(ctx)
		if err != nil {
			return err
		}

		switch in.Type {
		case input.IntentQuit:
			return ErrQuit
		case input.IntentAcknowledge:
			return nil
		}
	}
}
