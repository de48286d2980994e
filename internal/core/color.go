package core

// Color is a foreground colour for a screen cell. Values are anything
// lipgloss accepts: ANSI codes ("9") or hex strings ("#4ecca3").
// The empty string means the terminal default.
type Color string

// Fallback colours used by screens that have no theme palette.
const (
	ColorDefault Color = ""
	ColorRed     Color = "9"
	ColorGreen   Color = "10"
	ColorYellow  Color = "11"
	ColorGray    Color = "245"
	ColorWhite   Color = "15"
)
