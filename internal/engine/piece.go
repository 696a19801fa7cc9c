// Package engine decides move legality, applies moves and classifies game
// states for a chess.Board.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CanReach reports whether the piece on from could move to to under its
// movement rules, ignoring whether its own king would be left in check.
// Castling is not reachable here; IsLegal handles it.
func CanReach(v chess.View, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	piece := v.At(from)
	if piece.IsEmpty() {
		return false
	}
	if target := v.At(to); !target.IsEmpty() && target.Colour == piece.Colour {
		return false
	}

	if piece.Kind == chess.Pawn {
		return pawnCanReach(v, piece, from, to)
	}
	return canPieceMove(v, piece.Kind, from, to)
}

// canPieceMove checks the geometry and blocking rules of a non-pawn piece.
// The destination occupant is not examined.
func canPieceMove(v chess.View, kind chess.Kind, from, to chess.Square) bool {
	colDiff := abs(to.File - from.File)
	rankDiff := abs(to.Rank - from.Rank)

	switch kind {
	case chess.Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		if colDiff != rankDiff || colDiff == 0 {
			return false
		}
		return isPathClear(v, from, to)

	case chess.Rook:
		if (colDiff == 0) == (rankDiff == 0) {
			return false
		}
		return isPathClear(v, from, to)

	case chess.Queen:
		if colDiff == rankDiff || colDiff == 0 || rankDiff == 0 {
			return isPathClear(v, from, to)
		}
		return false

	case chess.King:
		return colDiff <= 1 && rankDiff <= 1 && colDiff+rankDiff > 0

	case chess.Pawn, chess.NoKind:
		return false
	}

	return false
}

// attacks reports whether the piece on from threatens to, i.e. could capture
// an enemy piece standing there.
func attacks(v chess.View, from, to chess.Square) bool {
	piece := v.At(from)
	switch piece.Kind {
	case chess.Pawn:
		return abs(to.File-from.File) == 1 && to.Rank-from.Rank == piece.Colour.Direction()
	case chess.NoKind:
		return false
	default:
		return canPieceMove(v, piece.Kind, from, to)
	}
}
