package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isPathClear checks that every square strictly between from and to is empty.
// from and to must share a file, a rank or a diagonal.
func isPathClear(v chess.View, from, to chess.Square) bool {
	colDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	sq := from.Offset(colDir, rankDir)
	for sq != to {
		if !v.At(sq).IsEmpty() {
			return false
		}
		sq = sq.Offset(colDir, rankDir)
	}

	return true
}

// squaresBetween returns the squares strictly between two squares on one rank.
func squaresBetween(rank, fromFile, toFile int) []chess.Square {
	dir := sign(toFile - fromFile)
	var out []chess.Square
	for file := fromFile + dir; file != toFile; file += dir {
		out = append(out, chess.Sq(file, rank))
	}
	return out
}
