package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Kiwipete is the well known perft test position, as a diagram.
var Kiwipete = []string{
	"r...k..r",
	"p.ppqpb.",
	"bn..pnp.",
	"...PN...",
	".p..P...",
	"..N..Q.p",
	"PPPBBPPP",
	"R...K..R",
}

// BoardFromDiagram builds a board from eight rank strings, rank 8 first.
// Pieces use the usual letters, uppercase for White; '.' is an empty square.
// Castling rights follow from the king and rook placement.
func BoardFromDiagram(t testing.TB, toMove chess.Colour, ranks ...string) *chess.Board {
	t.Helper()
	if len(ranks) != chess.BoardSize {
		t.Fatalf("diagram has %d ranks, want %d", len(ranks), chess.BoardSize)
	}

	b := chess.NewEmptyBoard()
	for i, row := range ranks {
		if len(row) != chess.BoardSize {
			t.Fatalf("diagram rank %d is %q, want %d squares", chess.BoardSize-i, row, chess.BoardSize)
		}
		rank := chess.BoardSize - 1 - i
		for file := 0; file < chess.BoardSize; file++ {
			c := row[file]
			if c == '.' {
				continue
			}
			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				t.Fatalf("diagram square %v holds unknown piece %q", chess.Sq(file, rank), c)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			if _, err := b.Place(chess.Sq(file, rank), chess.Piece{Kind: kind, Colour: colour}); err != nil {
				t.Fatalf("Place(%v): %v", chess.Sq(file, rank), err)
			}
		}
	}
	if err := b.SetToMove(toMove); err != nil {
		t.Fatalf("SetToMove: %v", err)
	}
	return b
}

// Square converts a name such as "e4" to a square. It panics on bad input,
// so use it only with literal names.
func Square(name string) chess.Square {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		panic(fmt.Sprintf("testutil: bad square %q", name))
	}
	return chess.Sq(int(name[0]-'a'), int(name[1]-'1'))
}

// ApplyFunc plays one move on whatever holds the position under test.
type ApplyFunc func(from, to chess.Square) error

// PlayMoves plays coordinate moves such as "e2e4" in order, failing the test
// on the first one rejected.
func PlayMoves(t testing.TB, apply ApplyFunc, moves ...string) {
	t.Helper()
	for i, m := range moves {
		if len(m) != 4 {
			t.Fatalf("move %d: bad coordinate move %q", i+1, m)
		}
		if err := apply(Square(m[:2]), Square(m[2:])); err != nil {
			t.Fatalf("move %d (%s): %v", i+1, m, err)
		}
	}
}
