// Package notation converts between squares and moves and their coordinate
// text form ("e4", "e2e4", "e7e8q").
package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ParseSquare parses a square in the form [a-h][1-8]. Upper-case files are accepted.
func ParseSquare(s string) (chess.Square, error) {
	if len(s) != 2 {
		return chess.NoSquare, errors.Wrapf(errors.ErrInvalidNotation, "square %q", s)
	}

	f, r := -1, -1
	if 'a' <= s[0] && s[0] <= 'h' {
		f = int(s[0] - 'a')
	}
	if 'A' <= s[0] && s[0] <= 'H' {
		f = int(s[0] - 'A')
	}
	if '1' <= s[1] && s[1] <= '8' {
		r = int(s[1] - '1')
	}
	if f == -1 || r == -1 {
		return chess.NoSquare, errors.Wrapf(errors.ErrInvalidNotation, "square %q", s)
	}
	return chess.Sq(f, r), nil
}

// ParseMove parses a coordinate move: origin, destination and an optional
// promotion letter (q, r, b or n).
func ParseMove(s string) (engine.Move, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) < 4 || len(s) > 5 {
		return engine.Move{}, errors.Wrapf(errors.ErrInvalidNotation, "move %q", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return engine.Move{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return engine.Move{}, err
	}

	m := engine.Move{From: from, To: to}
	if len(s) == 5 {
		kind := chess.KindFromLetter(s[4])
		if !kind.CanPromoteTo() {
			return engine.Move{}, errors.Wrapf(errors.ErrInvalidNotation, "promotion piece %q", s[4:])
		}
		m.Promotion = kind
	}
	return m, nil
}

// ParseLine parses a whitespace separated list of coordinate moves. Move
// numbers ("1.", "12...") and a trailing result token are skipped.
func ParseLine(line string) ([]engine.Move, error) {
	var moves []engine.Move
	for _, tok := range strings.Fields(line) {
		if isMoveNumber(tok) || IsResult(tok) {
			continue
		}
		m, err := ParseMove(tok)
		if err != nil {
			return moves, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// IsResult reports whether tok is a game result token.
func IsResult(tok string) bool {
	switch tok {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}

func isMoveNumber(tok string) bool {
	digits := strings.TrimRight(tok, ".")
	if digits == tok || digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// FormatMoves joins move records into a line of coordinate moves. The rook
// half of a castle is left out, so the line replays with ParseLine.
func FormatMoves(records []chess.MoveRecord) string {
	var sb strings.Builder
	for _, r := range records {
		if r.Castle && r.Piece.Kind == chess.Rook {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(r.String())
	}
	return sb.String()
}
