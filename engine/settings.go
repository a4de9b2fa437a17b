package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSettings is returned by NewGame when settings cannot describe a playable session
var ErrInvalidSettings = errors.New("invalid game settings")

// CannonSettings configures ammunition and reload pacing
type CannonSettings struct {
	Capacity       int
	ReloadInterval time.Duration
	ReloadSteps    int
}

// Settings holds everything a session needs, read-only after NewGame
type Settings struct {
	Width, Height int

	RocketStepDelay time.Duration
	SpawnInterval   time.Duration

	// Difficulty tier
	AlienSpeed time.Duration
	NumAliens  int

	Cannon CannonSettings
}

// Validate reports the first setting that cannot be simulated
func (s Settings) Validate() error {
	switch {
	case s.Width < 3:
		return fmt.Errorf("%w: width %d, need at least 3", ErrInvalidSettings, s.Width)
	case s.Height < 2:
		return fmt.Errorf("%w: height %d, need at least 2", ErrInvalidSettings, s.Height)
	case s.NumAliens < 1:
		return fmt.Errorf("%w: alien count %d", ErrInvalidSettings, s.NumAliens)
	case s.AlienSpeed < 0 || s.RocketStepDelay < 0 || s.SpawnInterval < 0:
		return fmt.Errorf("%w: negative duration", ErrInvalidSettings)
	case s.Cannon.Capacity < 0:
		return fmt.Errorf("%w: cannon capacity %d", ErrInvalidSettings, s.Cannon.Capacity)
	case s.Cannon.ReloadSteps < 0 || s.Cannon.ReloadInterval < 0:
		return fmt.Errorf("%w: reload steps %d interval %v", ErrInvalidSettings, s.Cannon.ReloadSteps, s.Cannon.ReloadInterval)
	}
	return nil
}

// LaunchPoint is where every rocket starts: horizontal center, one row above the bottom edge
func (s Settings) LaunchPoint() Point {
	return Point{X: s.Width / 2, Y: s.Height - 1}
}

// InBounds reports whether p is a grid cell
func (s Settings) InBounds(p Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}
