package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// It is the standard check of move generation against published counts.
func Perft(board *chess.Board, depth int) int64 {
	if depth <= 0 {
		return 1
	}

	moves := LegalMoves(board, board.ToMove)
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		child := board.Copy()
		if _, err := ApplyMove(child, m.From, m.To, promotionOption(m)...); err != nil {
			continue
		}
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each legal move of the side to move.
func PerftDivide(board *chess.Board, depth int) map[string]int64 {
	out := make(map[string]int64)
	for _, m := range LegalMoves(board, board.ToMove) {
		child := board.Copy()
		if _, err := ApplyMove(child, m.From, m.To, promotionOption(m)...); err != nil {
			continue
		}
		out[m.String()] = Perft(child, depth-1)
	}
	return out
}

func promotionOption(m Move) []MoveOption {
	if m.Promotion == chess.NoKind {
		return nil
	}
	return []MoveOption{WithPromotion(m.Promotion)}
}
