package config

// PlayConfig holds settings for interactive play.
type PlayConfig struct {
	// AutoQueen promotes to a queen when a move gives no promotion letter.
	// When false the player is asked which piece to promote to.
	AutoQueen bool

	// StopAtGameEnd ends the session at mate or a draw instead of offering
	// a new game.
	StopAtGameEnd bool
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{AutoQueen: true, StopAtGameEnd: true}
}
