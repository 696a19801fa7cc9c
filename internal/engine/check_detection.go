package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the king of the given colour is attacked by any
// enemy piece. A side without a king is never in check.
func IsInCheck(v chess.View, colour chess.Colour) bool {
	kingSq := findKing(v, colour)
	if kingSq == chess.NoSquare {
		return false
	}

	enemy := colour.Opposite()
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			sq := chess.Sq(file, rank)
			if p := v.At(sq); p.IsEmpty() || p.Colour != enemy {
				continue
			}
			if CanReach(v, sq, kingSq) {
				return true
			}
		}
	}
	return false
}

// IsSquareAttacked returns true if any piece of colour by threatens sq,
// whatever stands on sq.
func IsSquareAttacked(v chess.View, sq chess.Square, by chess.Colour) bool {
	if !sq.Valid() {
		return false
	}
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			from := chess.Sq(file, rank)
			if from == sq {
				continue
			}
			if p := v.At(from); p.IsEmpty() || p.Colour != by {
				continue
			}
			if attacks(v, from, sq) {
				return true
			}
		}
	}
	return false
}

// findKing locates the king of the given colour on any view.
func findKing(v chess.View, colour chess.Colour) chess.Square {
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			sq := chess.Sq(file, rank)
			if v.At(sq).Is(chess.King, colour) {
				return sq
			}
		}
	}
	return chess.NoSquare
}
