package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

const (
	// FiftyMoveLimit is the number of player moves without a pawn move or
	// capture after which the game is drawn.
	FiftyMoveLimit = 100

	// RepetitionCount is how often a position must occur to draw.
	RepetitionCount = 3

	// MinRepetitionDepth is the fewest snapshots in which a threefold
	// repetition can occur: the starting position and eight player moves.
	MinRepetitionDepth = 9
)

// IsDrawByFiftyMoves returns true once 100 player moves have been made
// without a pawn move or capture. A castle counts as one move.
func IsDrawByFiftyMoves(board *chess.Board) bool {
	return board.HalfmoveClock >= FiftyMoveLimit
}

// IsDrawByRepetition returns true if the current position, including side to
// move, castling rights and en-passant target, has occurred at least three
// times. Positions before the last pawn move or capture are not compared
// since none of them can recur.
func IsDrawByRepetition(board *chess.Board) bool {
	snapshots := board.Snapshots()
	if len(snapshots) < MinRepetitionDepth {
		return false
	}

	current := snapshots[len(snapshots)-1]
	oldest := len(snapshots) - 1 - board.HalfmoveClock
	if oldest < 0 {
		oldest = 0
	}

	count := 0
	for i := len(snapshots) - 1; i >= oldest; i-- {
		if snapshots[i] == current {
			count++
			if count >= RepetitionCount {
				return true
			}
		}
	}
	return false
}

// IsDrawByInsufficientMaterial returns true if neither side can mate:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (bishops on the same square colour)
func IsDrawByInsufficientMaterial(v chess.View) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			sq := chess.Sq(file, rank)
			piece := v.At(sq)

			switch piece.Kind {
			case chess.NoKind, chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			case chess.Knight, chess.Bishop:
			}

			if piece.Colour == chess.White {
				whitePieces = append(whitePieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					whiteBishopOnLight = sq.IsLight()
				}
			} else {
				blackPieces = append(blackPieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					blackBishopOnLight = sq.IsLight()
				}
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return blackPieces[0].IsMinor()
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return whitePieces[0].IsMinor()
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop &&
			blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}
