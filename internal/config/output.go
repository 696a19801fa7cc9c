package config

// OutputFormat selects how replayed games are reported.
type OutputFormat int

const (
	Summary OutputFormat = iota // One line per game: number, plies, status, result
	Moves                       // Tags and the coordinate moves actually played
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the text report layout.
	Format OutputFormat

	// JSONFormat enables JSON lines instead of text
	JSONFormat bool

	// MaxLineLength wraps move lists in Moves format (0 = 80)
	MaxLineLength uint

	// Colour shades the board and status line with terminal colours
	Colour bool

	// Unicode draws pieces as figurines
	Unicode bool

	// Flip draws the board from Black's side
	Flip bool

	// ShowBoard prints the final position of each replayed game
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        Summary,
		MaxLineLength: 80,
		Colour:        true,
	}
}
