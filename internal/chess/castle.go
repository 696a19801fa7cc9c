package chess

// Files of the pieces involved in castling.
const (
	KingFile          = 4
	KingsideRookFile  = 7
	QueensideRookFile = 0

	// Destination files after castling.
	KingsideKingFile  = 6
	KingsideRookTo    = 5
	QueensideKingFile = 2
	QueensideRookTo   = 3
)

// CastlingRights records which castling options remain. A right is lost for
// good once the king or the matching rook moves, or the rook is captured.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Allowed reports whether the colour may still castle on the given side.
func (c CastlingRights) Allowed(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return c.WhiteKingside
	case colour == White:
		return c.WhiteQueenside
	case kingside:
		return c.BlackKingside
	default:
		return c.BlackQueenside
	}
}

// Set grants or revokes one castling right.
func (c *CastlingRights) Set(colour Colour, kingside, allow bool) {
	switch {
	case colour == White && kingside:
		c.WhiteKingside = allow
	case colour == White:
		c.WhiteQueenside = allow
	case kingside:
		c.BlackKingside = allow
	default:
		c.BlackQueenside = allow
	}
}

// RevokeAll removes both castling rights of a colour.
func (c *CastlingRights) RevokeAll(colour Colour) {
	c.Set(colour, true, false)
	c.Set(colour, false, false)
}

// String returns the rights in the familiar KQkq form, or "-".
func (c CastlingRights) String() string {
	s := ""
	if c.WhiteKingside {
		s += "K"
	}
	if c.WhiteQueenside {
		s += "Q"
	}
	if c.BlackKingside {
		s += "k"
	}
	if c.BlackQueenside {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// CastleRookFiles returns the rook's start and destination files for a castle.
func CastleRookFiles(kingside bool) (from, to int) {
	if kingside {
		return KingsideRookFile, KingsideRookTo
	}
	return QueensideRookFile, QueensideRookTo
}
