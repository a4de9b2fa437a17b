package constants

// Status lines are drawn below the grid starting at this offset from GridHeight
const StatusLineOffset = 1

// UI text
const (
	TextRockets   = "Rockets: "
	TextReloading = " (reloading)"
	TextRemaining = "Aliens remaining: "
	TextLanded    = "Aliens landed: "
	TextDefeated  = "Aliens defeated: "

	TextMenuTitle = "Choose difficulty"
	TextGameOver  = "GAME OVER"
	TextVictory   = "- VICTORY -"
	TextDefeat    = "- DEFEAT -"
	TextContinue  = "Press c to continue"
	TextQuitHint  = "Ctrl+C to quit"
)

// AcknowledgeKey dismisses the end screen
const AcknowledgeKey = 'c'
