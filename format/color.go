package format

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
)

// Colorizer marks text as cold, warm or neutral for display
type Colorizer interface {
	Cold(s string) string
	Warm(s string) string
	Neutral(s string) string
}

// ANSI colors text with terminal escape sequences
type ANSI struct{}

// Cold wraps s in blue
func (ANSI) Cold(s string) string { return colorBlue + s + colorReset }

// Warm wraps s in red
func (ANSI) Warm(s string) string { return colorRed + s + colorReset }

// Neutral wraps s in yellow
func (ANSI) Neutral(s string) string { return colorYellow + s + colorReset }

// NoColor returns text unchanged
type NoColor struct{}

func (NoColor) Cold(s string) string    { return s }
func (NoColor) Warm(s string) string    { return s }
func (NoColor) Neutral(s string) string { return s }

// Ensure both colorizers implement Colorizer
var (
	_ Colorizer = ANSI{}
	_ Colorizer = NoColor{}
)
