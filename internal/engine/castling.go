package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castleSide reports whether moving the piece on from to to is a castling
// attempt, and on which side. Only the geometry is checked.
func castleSide(v chess.View, from, to chess.Square) (kingside, ok bool) {
	king := v.At(from)
	if king.Kind != chess.King {
		return false, false
	}
	home := king.Colour.HomeRank()
	if from != chess.Sq(chess.KingFile, home) || to.Rank != home {
		return false, false
	}
	switch to.File {
	case chess.KingsideKingFile:
		return true, true
	case chess.QueensideKingFile:
		return false, true
	}
	return false, false
}

// canCastle checks the full castling chain for one side: the right is still
// held, the rook stands in its corner, the squares between king and rook are
// empty, the king is not in check and neither the square it crosses nor the
// one it lands on is attacked.
func canCastle(board *chess.Board, colour chess.Colour, kingside bool) bool {
	if !board.Castling.Allowed(colour, kingside) {
		return false
	}

	home := colour.HomeRank()
	kingSq := chess.Sq(chess.KingFile, home)
	if !board.At(kingSq).Is(chess.King, colour) {
		return false
	}
	rookFile, _ := chess.CastleRookFiles(kingside)
	if !board.At(chess.Sq(rookFile, home)).Is(chess.Rook, colour) {
		return false
	}

	for _, sq := range squaresBetween(home, chess.KingFile, rookFile) {
		if board.IsOccupied(sq) {
			return false
		}
	}

	if IsInCheck(board, colour) {
		return false
	}

	kingTo := chess.QueensideKingFile
	if kingside {
		kingTo = chess.KingsideKingFile
	}
	path := append(squaresBetween(home, chess.KingFile, kingTo), chess.Sq(kingTo, home))
	base := board.Layout()
	for _, sq := range path {
		trial := base
		trial.Move(kingSq, sq)
		if IsInCheck(&trial, colour) {
			return false
		}
	}
	return true
}
