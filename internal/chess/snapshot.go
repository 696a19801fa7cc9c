package chess

// Snapshot is an immutable record of a position: occupancy by kind and
// colour, castling rights, en-passant target and side to move. Snapshots are
// compared structurally with ==.
type Snapshot struct {
	Grid      [BoardSize][BoardSize]Piece
	Castling  CastlingRights
	EnPassant Square
	ToMove    Colour
}

// At returns the occupant of sq in the snapshot.
func (s Snapshot) At(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return s.Grid[sq.File][sq.Rank]
}

// PieceCount returns the number of pieces in the snapshot.
func (s Snapshot) PieceCount() int {
	n := 0
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if !s.Grid[file][rank].IsEmpty() {
				n++
			}
		}
	}
	return n
}
