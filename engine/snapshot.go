package engine

// Snapshot is a consistent copy of everything a frame draws
type Snapshot struct {
	Width, Height int

	Angle     Angle
	Rockets   int
	Capacity  int
	Reloading bool

	RocketPositions []Point
	AlienPositions  []Point

	NumAliens int
	Pending   int
	Active    int
	Landed    int
	Defeated  int

	Victory bool
	Defeat  bool
}

// Remaining is the number of aliens not yet landed or destroyed
func (s Snapshot) Remaining() int {
	return s.Pending + s.Active
}

// Snapshot copies the shared collections under the game lock
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Width:     g.settings.Width,
		Height:    g.settings.Height,
		Angle:     g.cannon.Angle(),
		Rockets:   g.cannon.Rockets(),
		Capacity:  g.cannon.Capacity(),
		Reloading: g.cannon.Reloading(),
		NumAliens: g.settings.NumAliens,
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	snap.RocketPositions = make([]Point, 0, len(g.rockets))
	for _, r := range g.rockets {
		snap.RocketPositions = append(snap.RocketPositions, r.Position())
	}
	snap.AlienPositions = make([]Point, 0, len(g.aliens))
	for _, a := range g.aliens {
		snap.AlienPositions = append(snap.AlienPositions, a.Position())
	}
	snap.Pending = len(g.pending)
	snap.Active = len(g.aliens)
	snap.Landed = g.landed
	snap.Defeated = g.defeated
	snap.Victory = g.victory.Load()
	snap.Defeat = g.defeat.Load()

	return snap
}
