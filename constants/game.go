package constants

import "time"

// Grid Dimensions
const (
	// GridWidth is the number of playfield columns
	GridWidth = 50

	// GridHeight is the number of playfield rows, the cannon sits on the last one
	GridHeight = 20
)

// Game Loop Timing Constants
const (
	// FrameRate is the number of frames rendered per second
	FrameRate = 60

	// InputPollTimeout is how long the frame loop waits for a key before drawing
	// Zero keeps the poll non-blocking so the frame rate is driven by the ticker alone
	InputPollTimeout = 0 * time.Millisecond
)

// Cannon Constants
const (
	// RocketCapacity is the maximum ammunition held by the cannon
	RocketCapacity = 5

	// ReloadInterval is the wait before each single-rocket reload increment
	ReloadInterval = 1 * time.Second

	// ReloadSteps is the number of increments performed by one reload
	ReloadSteps = 5

	// AngleStep is the rotation applied by one left/right command, in degrees
	AngleStep = 45

	// AngleMin and AngleMax bound the cannon rotation
	AngleMin = 0
	AngleMax = 180

	// AngleInitial points the cannon straight up
	AngleInitial = 90
)

// Projectile and Spawn Timing
const (
	// RocketStepDelay is the pause between two rocket steps
	RocketStepDelay = 50 * time.Millisecond

	// AlienSpawnInterval is the pause between two alien releases
	AlienSpawnInterval = 2 * time.Second
)
