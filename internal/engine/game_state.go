package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Status classifies a position from the point of view of the side to move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
	DrawRepetition
	DrawFiftyMoves
	DrawInsufficientMaterial
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawRepetition:
		return "draw by threefold repetition"
	case DrawFiftyMoves:
		return "draw by fifty-move rule"
	case DrawInsufficientMaterial:
		return "draw by insufficient material"
	default:
		return "unknown"
	}
}

// IsOver reports whether no further moves may be played.
func (s Status) IsOver() bool {
	return s != Ongoing && s != Check
}

// IsDraw reports whether the game ended drawn.
func (s Status) IsDraw() bool {
	switch s {
	case Stalemate, DrawRepetition, DrawFiftyMoves, DrawInsufficientMaterial:
		return true
	default:
		return false
	}
}

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is not in check but has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// GetStatus returns the status for the side to move. Checkmate and stalemate
// take precedence over the draw rules. While a deferred promotion is pending
// the position is not final, so it is always Ongoing.
func GetStatus(board *chess.Board) Status {
	if PendingPromotion(board) != chess.NoSquare {
		return Ongoing
	}
	colour := board.ToMove
	inCheck := IsInCheck(board, colour)

	if !HasLegalMoves(board, colour) {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}

	switch {
	case IsDrawByInsufficientMaterial(board):
		return DrawInsufficientMaterial
	case IsDrawByRepetition(board):
		return DrawRepetition
	case IsDrawByFiftyMoves(board):
		return DrawFiftyMoves
	case inCheck:
		return Check
	}
	return Ongoing
}

// Result returns the game result in the usual form: "1-0", "0-1",
// "1/2-1/2", or "*" while the game is in progress.
func Result(board *chess.Board) string {
	status := GetStatus(board)
	switch {
	case status == Checkmate && board.ToMove == chess.Black:
		return "1-0"
	case status == Checkmate:
		return "0-1"
	case status.IsDraw():
		return "1/2-1/2"
	}
	return "*"
}
