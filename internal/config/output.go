package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the move notation used for move lists.
	Format OutputFormat

	// MaxLineLength is the maximum line length for move lists.
	MaxLineLength uint

	// JSONFormat writes the finished game as JSON instead of a move list.
	JSONFormat bool

	// ShowBoard controls whether the board is drawn before every move.
	ShowBoard bool

	// Colour enables coloured squares when drawing the board.
	Colour bool

	// KeepMoveNumbers controls whether move numbers are included.
	KeepMoveNumbers bool

	// KeepResults controls whether the game result ends the move list.
	KeepResults bool

	// KeepChecks controls whether check symbols (+, #) are included.
	KeepChecks bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          SAN,
		MaxLineLength:   80,
		ShowBoard:       true,
		KeepMoveNumbers: true,
		KeepResults:     true,
		KeepChecks:      true,
	}
}
