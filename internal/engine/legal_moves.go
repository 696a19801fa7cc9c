package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Move is a candidate move: origin, destination and, for a pawn reaching its
// last rank, the promotion kind.
type Move struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.Kind
}

// String returns the move in coordinate form, e.g. "g1f3" or "b7b8n".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != chess.NoKind {
		s += string(m.Promotion.Letter() | 0x20)
	}
	return s
}

// IsLegal returns true if the piece on from may move to to: the move obeys the
// piece's movement rules (or the castling chain) and does not leave the
// mover's own king in check. Whose turn it is does not matter here.
func IsLegal(board *chess.Board, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	piece := board.At(from)
	if piece.IsEmpty() {
		return false
	}

	if kingside, ok := castleSide(board, from, to); ok {
		return canCastle(board, piece.Colour, kingside)
	}
	if !CanReach(board, from, to) {
		return false
	}
	return leavesKingSafe(board, from, to)
}

// leavesKingSafe plays the move on a scratch layout and reports whether the
// mover's king is out of check afterwards. The board itself is not touched.
func leavesKingSafe(board *chess.Board, from, to chess.Square) bool {
	l := board.Layout()
	piece := l.At(from)

	if isEnPassantCapture(&l, from, to) {
		l.Set(chess.Sq(to.File, from.Rank), chess.NoPiece)
	}
	l.Move(from, to)
	l.Last = chess.MoveRecord{From: from, To: to, Piece: piece}
	l.HasLast = true

	return !IsInCheck(&l, piece.Colour)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	found := false
	eachLegalMove(board, colour, func(chess.Square, chess.Square) bool {
		found = true
		return false
	})
	return found
}

// LegalMoves lists every legal move of the given colour. A pawn move onto the
// last rank appears once per promotion kind.
func LegalMoves(board *chess.Board, colour chess.Colour) []Move {
	var moves []Move
	eachLegalMove(board, colour, func(from, to chess.Square) bool {
		if isPromotionMove(board, from, to) {
			for _, kind := range chess.PromotionKinds {
				moves = append(moves, Move{From: from, To: to, Promotion: kind})
			}
			return true
		}
		moves = append(moves, Move{From: from, To: to})
		return true
	})
	return moves
}

// eachLegalMove scans every origin and destination pair through IsLegal and
// calls fn for each legal one until fn returns false.
func eachLegalMove(board *chess.Board, colour chess.Colour, fn func(from, to chess.Square) bool) {
	for fromFile := 0; fromFile < chess.BoardSize; fromFile++ {
		for fromRank := 0; fromRank < chess.BoardSize; fromRank++ {
			from := chess.Sq(fromFile, fromRank)
			if p := board.At(from); p.IsEmpty() || p.Colour != colour {
				continue
			}
			for toFile := 0; toFile < chess.BoardSize; toFile++ {
				for toRank := 0; toRank < chess.BoardSize; toRank++ {
					to := chess.Sq(toFile, toRank)
					if !IsLegal(board, from, to) {
						continue
					}
					if !fn(from, to) {
						return
					}
				}
			}
		}
	}
}
