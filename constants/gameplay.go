package constants

import "time"

// Difficulty tier names, also used as menu selections 1..3
const (
	TierEasy   = "fácil"
	TierMedium = "médio"
	TierHard   = "difícil"
)

// MaxTiers is the number of menu selection keys, 1..9
const MaxTiers = 9

// Tier describes one difficulty level
type Tier struct {
	Name       string        `mapstructure:"name"`
	Label      string        `mapstructure:"label"`
	AlienSpeed time.Duration `mapstructure:"alienSpeed"` // time per one-row descent
	NumAliens  int           `mapstructure:"numAliens"`
}

// DefaultTiers is the difficulty table in menu order
var DefaultTiers = []Tier{
	{Name: TierEasy, Label: "Fácil", AlienSpeed: 1 * time.Second, NumAliens: 10},
	{Name: TierMedium, Label: "Médio", AlienSpeed: 500 * time.Millisecond, NumAliens: 15},
	{Name: TierHard, Label: "Difícil", AlienSpeed: 200 * time.Millisecond, NumAliens: 20},
}
