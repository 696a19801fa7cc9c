package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// FilterConfig selects which replayed games are reported.
type FilterConfig struct {
	// Ply bounds
	CheckPlyBounds bool
	MinPlies       uint
	MaxPlies       uint

	// Match conditions; when any is set a game must meet one of them
	MatchCheckmate bool
	MatchStalemate bool
	MatchDraw      bool

	// KeepBrokenGames reports games with a bad or illegal move
	KeepBrokenGames bool

	// MaxMatches stops the batch after this many reported games (0 = no limit)
	MaxMatches uint
}

// NewFilterConfig creates a FilterConfig with default values.
// Every game is reported by default.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{KeepBrokenGames: true}
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if f.CheckPlyBounds && f.MinPlies > f.MaxPlies {
		return fmt.Errorf("minimum plies (%d) > maximum plies (%d): %w",
			f.MinPlies, f.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}

// MatchesEnding reports whether the ending conditions are met. With no
// condition set every ending matches.
func (f *FilterConfig) MatchesEnding(checkmate, stalemate, draw bool) bool {
	if !f.MatchCheckmate && !f.MatchStalemate && !f.MatchDraw {
		return true
	}
	return (f.MatchCheckmate && checkmate) ||
		(f.MatchStalemate && stalemate) ||
		(f.MatchDraw && draw)
}

// MatchesLength reports whether a game of the given length is within bounds.
func (f *FilterConfig) MatchesLength(plies int) bool {
	if !f.CheckPlyBounds {
		return true
	}
	return plies >= int(f.MinPlies) && plies <= int(f.MaxPlies)
}
