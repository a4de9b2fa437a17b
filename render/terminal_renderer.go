package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cannon-defense/constants"
	"github.com/lixenwraith/cannon-defense/engine"
)

// Renderer draws game frames, the menu and the end screen onto a Display
type Renderer struct {
	screen Display
	width  int
	height int
}

// NewRenderer creates a renderer for a grid of the given size
func NewRenderer(screen Display, width, height int) *Renderer {
	return &Renderer{
		screen: screen,
		width:  width,
		height: height,
	}
}

// DrawFrame renders one frame in fixed order: clear, cannon, rockets, aliens, status lines, show
func (r *Renderer) DrawFrame(snap engine.Snapshot) {
	r.screen.Clear()

	r.drawCannon(snap)
	r.drawRockets(snap)
	r.drawAliens(snap)
	r.drawStatus(snap)

	r.screen.Show()
}

// drawCannon draws the three-cell sprite starting at the launch column on the bottom row
func (r *Renderer) drawCannon(snap engine.Snapshot) {
	x, y := snap.Width/2, snap.Height-1
	for i, ch := range []rune(snap.Angle.Sprite()) {
		r.setGridCell(x+i, y, ch, StyleCannon)
	}
}

func (r *Renderer) drawRockets(snap engine.Snapshot) {
	for _, p := range snap.RocketPositions {
		r.setGridCell(p.X, p.Y, constants.RocketGlyph, StyleRocket)
	}
}

func (r *Renderer) drawAliens(snap engine.Snapshot) {
	for _, p := range snap.AlienPositions {
		r.setGridCell(p.X, p.Y, constants.AlienGlyph, StyleAlien)
	}
}

// drawStatus draws ammunition and alien counters below the grid
func (r *Renderer) drawStatus(snap engine.Snapshot) {
	y := snap.Height + constants.StatusLineOffset

	x := r.drawText(0, y, constants.TextRockets+fmt.Sprint(snap.Rockets), StyleStatus)
	if snap.Reloading {
		r.drawText(x, y, constants.TextReloading, StyleReload)
	}

	x = r.drawText(0, y+1, constants.TextRemaining, StyleStatus)
	r.drawText(x, y+1, strings.Repeat(constants.RemainingMarker, snap.Remaining()), StyleAlien)

	x = r.drawText(0, y+2, constants.TextLanded, StyleStatus)
	r.drawText(x, y+2, strings.Repeat(constants.LandedMarker, snap.Landed), StyleLanded)

	x = r.drawText(0, y+3, constants.TextDefeated, StyleStatus)
	r.drawText(x, y+3, strings.Repeat(constants.DefeatedMarker, snap.Defeated), StyleDefeated)
}

// DrawMenu renders the difficulty selection screen
func (r *Renderer) DrawMenu(tiers []constants.Tier) {
	r.screen.Clear()
	r.screen.HideCursor()

	top := max(r.height/2-2, 0)
	r.drawCentered(top, constants.TextMenuTitle, StyleTitle)
	for i, tier := range tiers {
		r.drawCentered(top+2+i, fmt.Sprintf("%d. %s", i+1, tier.Label), StyleStatus)
	}
	r.drawCentered(top+3+len(tiers), constants.TextQuitHint, StyleStatus)

	r.screen.Show()
}

// DrawEndScreen overlays the outcome on the last frame
func (r *Renderer) DrawEndScreen(victory bool) {
	mid := r.height / 2

	outcome, style := constants.TextDefeat, StyleDefeat
	if victory {
		outcome, style = constants.TextVictory, StyleVictory
	}

	r.drawCentered(mid, constants.TextGameOver, StyleTitle)
	r.drawCentered(mid+1, outcome, style)
	r.drawCentered(mid+2, constants.TextContinue, StyleStatus)

	r.screen.Show()
}

// setGridCell draws a single cell, silently skipping anything outside the grid
func (r *Renderer) setGridCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// drawText writes text at (x, y) clipped to the screen and returns the column after it
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	sw, sh := r.screen.Size()
	for _, ch := range text {
		if x >= 0 && x < sw && y >= 0 && y < sh {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += runewidth.RuneWidth(ch)
	}
	return x
}

// drawCentered writes text horizontally centered on the grid
func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	x := (r.width - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, text, style)
}
