package constants

// Sprite glyphs
const (
	RocketGlyph = '¤'
	AlienGlyph  = 'Ж'

	// Status line markers, one per counted alien
	RemainingMarker = " Ж "
	LandedMarker    = " O "
	DefeatedMarker  = " X "
)

// CannonSprites maps a cannon angle to its three-cell sprite
var CannonSprites = map[int]string{
	0:   "_  ",
	45:  ` \ `,
	90:  " | ",
	135: " / ",
	180: "  _",
}
