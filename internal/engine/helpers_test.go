package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

var sq = testutil.Square

// play applies coordinate moves to b, failing the test on the first rejection.
func play(t testing.TB, b *chess.Board, moves ...string) {
	t.Helper()
	testutil.PlayMoves(t, func(from, to chess.Square) error {
		_, err := ApplyMove(b, from, to)
		return err
	}, moves...)
}
