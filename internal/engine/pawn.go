package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnCanReach applies the pawn's push, double push, capture and en passant
// rules. The caller has already rejected a destination holding a friendly piece.
func pawnCanReach(v chess.View, pawn chess.Piece, from, to chess.Square) bool {
	dir := pawn.Colour.Direction()
	colDiff := to.File - from.File
	rankDiff := to.Rank - from.Rank
	target := v.At(to)

	switch {
	case colDiff == 0 && rankDiff == dir:
		return target.IsEmpty()

	case colDiff == 0 && rankDiff == 2*dir:
		return from.Rank == pawn.Colour.PawnRank() &&
			target.IsEmpty() &&
			v.At(from.Offset(0, dir)).IsEmpty()

	case abs(colDiff) == 1 && rankDiff == dir:
		if !target.IsEmpty() {
			return true
		}
		return isEnPassant(v, pawn, from, to)
	}

	return false
}

// isEnPassant reports whether a diagonal pawn step onto the empty square to
// captures en passant: the previous move must be an enemy double push that
// passed over to and landed beside from.
func isEnPassant(v chess.View, pawn chess.Piece, from, to chess.Square) bool {
	last, ok := v.LastMove()
	if !ok || !last.IsDoublePawnPush() || last.Piece.Colour == pawn.Colour {
		return false
	}
	if last.To != chess.Sq(to.File, from.Rank) {
		return false
	}
	passed := chess.Sq(last.From.File, (last.From.Rank+last.To.Rank)/2)
	return passed == to && v.At(last.To).Is(chess.Pawn, last.Piece.Colour)
}

// isEnPassantCapture reports whether moving the piece on from to to would be
// an en passant capture on v.
func isEnPassantCapture(v chess.View, from, to chess.Square) bool {
	pawn := v.At(from)
	return pawn.Kind == chess.Pawn &&
		from.File != to.File &&
		v.At(to).IsEmpty() &&
		isEnPassant(v, pawn, from, to)
}

// isPromotionMove reports whether the piece on from is a pawn moving onto its last rank.
func isPromotionMove(v chess.View, from, to chess.Square) bool {
	pawn := v.At(from)
	return pawn.Kind == chess.Pawn && to.Rank == pawn.Colour.LastRank()
}
