package chess

// Layout is a scratch copy of a board's occupancy, used to simulate moves
// without touching the live board. It is a plain value: copying it copies
// the whole grid.
type Layout struct {
	Grid    [BoardSize][BoardSize]Piece
	Last    MoveRecord
	HasLast bool
}

// At returns the occupant of sq, or NoPiece when empty or off-board.
func (l *Layout) At(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return l.Grid[sq.File][sq.Rank]
}

// LastMove returns the move that produced the layout.
func (l *Layout) LastMove() (MoveRecord, bool) {
	return l.Last, l.HasLast
}

// Set puts p on sq.
func (l *Layout) Set(sq Square, p Piece) {
	l.Grid[sq.File][sq.Rank] = p
}

// Move moves the occupant of from onto to, overwriting any occupant there.
func (l *Layout) Move(from, to Square) {
	l.Grid[to.File][to.Rank] = l.Grid[from.File][from.Rank]
	l.Grid[from.File][from.Rank] = NoPiece
}

// FindKing returns the square of the given colour's king, or NoSquare.
func (l *Layout) FindKing(c Colour) Square {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if l.Grid[file][rank].Is(King, c) {
				return Sq(file, rank)
			}
		}
	}
	return NoSquare
}

// Count returns the number of pieces in the layout.
func (l *Layout) Count() int {
	n := 0
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if !l.Grid[file][rank].IsEmpty() {
				n++
			}
		}
	}
	return n
}
