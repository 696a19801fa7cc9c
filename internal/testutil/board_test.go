package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestBoardFromDiagram(t *testing.T) {
	b := BoardFromDiagram(t, chess.Black,
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"...P....",
		"R...K...",
	)

	tests := []struct {
		name string
		sq   string
		want chess.Piece
	}{
		{"black king", "e8", chess.B(chess.King)},
		{"white king", "e1", chess.W(chess.King)},
		{"white rook", "a1", chess.W(chess.Rook)},
		{"white pawn", "d2", chess.W(chess.Pawn)},
		{"empty", "h1", chess.NoPiece},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertEqual(t, b.At(Square(tt.sq)), tt.want)
		})
	}

	AssertEqual(t, b.ToMove, chess.Black)
	AssertEqual(t, b.Castling.String(), "Q")
	AssertEqual(t, b.PieceCount(), 4)
}

func TestKiwipeteDiagram(t *testing.T) {
	b := BoardFromDiagram(t, chess.White, Kiwipete...)
	AssertEqual(t, b.PieceCount(), 32)
	AssertEqual(t, b.Castling.String(), "KQkq")
	AssertEqual(t, b.At(Square("f3")), chess.W(chess.Queen))
}

func TestSquare(t *testing.T) {
	AssertEqual(t, Square("a1"), chess.Sq(0, 0))
	AssertEqual(t, Square("h8"), chess.Sq(7, 7))

	defer func() {
		if recover() == nil {
			t.Error("Square(\"z9\") did not panic")
		}
	}()
	Square("z9")
}

func TestPlayMoves(t *testing.T) {
	var played []string
	apply := func(from, to chess.Square) error {
		played = append(played, from.String()+to.String())
		return nil
	}

	PlayMoves(t, apply, "e2e4", "e7e5", "g1f3")
	AssertEqual(t, played, []string{"e2e4", "e7e5", "g1f3"})
}
