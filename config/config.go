package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/cannon-defense/constants"
	"github.com/lixenwraith/cannon-defense/engine"
)

// EnvPrefix scopes environment overrides, e.g. CANNON_GRID_WIDTH
const EnvPrefix = "CANNON"

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrUnknownTier   = errors.New("unknown difficulty tier")
)

// GridConfig holds playfield dimensions
type GridConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// CannonConfig holds ammunition settings
type CannonConfig struct {
	Capacity       int           `mapstructure:"capacity"`
	ReloadInterval time.Duration `mapstructure:"reloadInterval"`
	ReloadSteps    int           `mapstructure:"reloadSteps"`
}

// RocketConfig holds projectile pacing
type RocketConfig struct {
	StepDelay time.Duration `mapstructure:"stepDelay"`
}

// AlienConfig holds spawner pacing
type AlienConfig struct {
	SpawnInterval time.Duration `mapstructure:"spawnInterval"`
}

// InputConfig holds keyboard polling settings
type InputConfig struct {
	PollTimeout time.Duration `mapstructure:"pollTimeout"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

// Config is the resolved configuration for the whole process
type Config struct {
	Grid      GridConfig       `mapstructure:"grid"`
	FrameRate int              `mapstructure:"frameRate"`
	Cannon    CannonConfig     `mapstructure:"cannon"`
	Rocket    RocketConfig     `mapstructure:"rocket"`
	Alien     AlienConfig      `mapstructure:"alien"`
	Input     InputConfig      `mapstructure:"input"`
	Tiers     []constants.Tier `mapstructure:"tiers"`
	Log       LogConfig        `mapstructure:"log"`
}

// setDefaults registers every key so env overrides and Unmarshal see it
func setDefaults(v *viper.Viper) {
	v.SetDefault("grid.width", constants.GridWidth)
	v.SetDefault("grid.height", constants.GridHeight)
	v.SetDefault("frameRate", constants.FrameRate)

	v.SetDefault("cannon.capacity", constants.RocketCapacity)
	v.SetDefault("cannon.reloadInterval", constants.ReloadInterval)
	v.SetDefault("cannon.reloadSteps", constants.ReloadSteps)

	v.SetDefault("rocket.stepDelay", constants.RocketStepDelay)
	v.SetDefault("alien.spawnInterval", constants.AlienSpawnInterval)
	v.SetDefault("input.pollTimeout", constants.InputPollTimeout)

	tiers := make([]map[string]any, 0, len(constants.DefaultTiers))
	for _, t := range constants.DefaultTiers {
		tiers = append(tiers, map[string]any{
			"name":       t.Name,
			"label":      t.Label,
			"alienSpeed": t.AlienSpeed,
			"numAliens":  t.NumAliens,
		})
	}
	v.SetDefault("tiers", tiers)

	v.SetDefault("log.debug", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "./logs")
}

// Load resolves configuration from defaults, an optional config file, CANNON_* environment
// variables and command-line flags, in increasing precedence. path and flags may be empty/nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// flagKeys maps config keys to command-line flag names
var flagKeys = map[string]string{
	"log.debug": "debug",
	"log.level": "log-level",
	"log.dir":   "log-dir",
}

// Validate checks every value and every tier produce playable sessions
func (c *Config) Validate() error {
	if c.FrameRate < 1 {
		return fmt.Errorf("%w: frame rate %d", ErrInvalidConfig, c.FrameRate)
	}
	if c.Input.PollTimeout < 0 {
		return fmt.Errorf("%w: negative poll timeout", ErrInvalidConfig)
	}
	if len(c.Tiers) == 0 || len(c.Tiers) > constants.MaxTiers {
		return fmt.Errorf("%w: %d tiers, need 1 to %d", ErrInvalidConfig, len(c.Tiers), constants.MaxTiers)
	}

	seen := make(map[string]bool, len(c.Tiers))
	for i, t := range c.Tiers {
		if t.Name == "" {
			return fmt.Errorf("%w: tier %d has no name", ErrInvalidConfig, i+1)
		}
		if seen[t.Name] {
			return fmt.Errorf("%w: duplicate tier %q", ErrInvalidConfig, t.Name)
		}
		seen[t.Name] = true

		if err := c.Settings(t).Validate(); err != nil {
			return fmt.Errorf("%w: tier %q: %w", ErrInvalidConfig, t.Name, err)
		}
	}
	return nil
}

// TierAt returns the tier at a zero-based menu position
func (c *Config) TierAt(i int) (constants.Tier, error) {
	if i < 0 || i >= len(c.Tiers) {
		return constants.Tier{}, fmt.Errorf("%w: menu entry %d", ErrUnknownTier, i+1)
	}
	return c.Tiers[i], nil
}

// Settings builds the engine settings for one session at the given tier
func (c *Config) Settings(t constants.Tier) engine.Settings {
	return engine.Settings{
		Width:           c.Grid.Width,
		Height:          c.Grid.Height,
		RocketStepDelay: c.Rocket.StepDelay,
		SpawnInterval:   c.Alien.SpawnInterval,
		AlienSpeed:      t.AlienSpeed,
		NumAliens:       t.NumAliens,
		Cannon: engine.CannonSettings{
			Capacity:       c.Cannon.Capacity,
			ReloadInterval: c.Cannon.ReloadInterval,
			ReloadSteps:    c.Cannon.ReloadSteps,
		},
	}
}

// FrameInterval is the pause between two rendered frames
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}
