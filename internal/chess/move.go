package chess

// MoveRecord is one half-move in the board's history. A castle is recorded as
// two entries, the king's move followed by the rook's, both flagged Castle.
type MoveRecord struct {
	From Square
	To   Square

	// The piece that moved, as it was before the move.
	Piece Piece

	// The kind captured (NoKind if no capture).
	Captured Kind

	Castle    bool
	EnPassant bool

	// The kind promoted to (NoKind if not a promotion).
	Promotion Kind

	// Set on pawn moves and captures; the fifty-move clock restarts.
	ResetsClock bool
}

// IsCapture returns true if this move is a capture.
func (m MoveRecord) IsCapture() bool {
	return m.Captured != NoKind
}

// IsPromotion returns true if this move is a pawn promotion.
func (m MoveRecord) IsPromotion() bool {
	return m.Promotion != NoKind
}

// IsDoublePawnPush returns true if a pawn advanced two squares.
func (m MoveRecord) IsDoublePawnPush() bool {
	if m.Piece.Kind != Pawn || m.From.File != m.To.File {
		return false
	}
	d := m.To.Rank - m.From.Rank
	return d == 2 || d == -2
}

// String returns the move in coordinate form, e.g. "e2e4" or "e7e8q".
func (m MoveRecord) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() | 0x20)
	}
	return s
}
