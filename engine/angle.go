package engine

import "github.com/lixenwraith/cannon-defense/constants"

// Angle is a cannon or rocket direction in degrees, 90 points straight up
type Angle int

const (
	Angle0   Angle = 0
	Angle45  Angle = 45
	Angle90  Angle = 90
	Angle135 Angle = 135
	Angle180 Angle = 180
)

// Point is an integer grid cell, y grows downward
type Point struct {
	X, Y int
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// trajectories is the per-tick displacement for each firing angle
var trajectories = map[Angle]Point{
	Angle0:   {X: -1, Y: 0},
	Angle45:  {X: -1, Y: -1},
	Angle90:  {X: 0, Y: -1},
	Angle135: {X: 1, Y: -1},
	Angle180: {X: 1, Y: 0},
}

// Step returns the displacement a rocket fired at this angle makes per tick
func (a Angle) Step() (Point, bool) {
	d, ok := trajectories[a]
	return d, ok
}

// Valid reports whether a is one of the five cannon angles
func (a Angle) Valid() bool {
	_, ok := trajectories[a]
	return ok
}

// Sprite returns the three-cell cannon drawing for this angle
func (a Angle) Sprite() string {
	return constants.CannonSprites[int(a)]
}
