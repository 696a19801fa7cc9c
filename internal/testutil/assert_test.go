package testutil

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

// recorder stands in for a *testing.T so failing assertions can be observed.
type recorder struct {
	testing.TB
	errs  []string
	fatal bool
}

func (r *recorder) Helper() {}

func (r *recorder) Error(args ...interface{}) { r.errs = append(r.errs, fmt.Sprint(args...)) }

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func (r *recorder) Fatalf(format string, args ...interface{}) {
	r.Errorf(format, args...)
	r.fatal = true
	runtime.Goexit()
}

// record runs fn against a recorder on its own goroutine, so Fatalf can end
// it the way the testing package would.
func record(fn func(tb testing.TB)) *recorder {
	r := &recorder{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn(r)
	}()
	<-done
	return r
}

func TestAssertErrorIs(t *testing.T) {
	illegal := &chesserrors.MoveError{Err: chesserrors.ErrIllegalMove, From: "e1", To: "e3", Ply: 3}
	inGame := &chesserrors.GameError{Err: illegal, GameNum: 2, PlyNum: 3, MoveText: "e1e3"}

	tests := []struct {
		name     string
		err      error
		target   error
		wantFail bool
	}{
		{"sentinel", chesserrors.ErrGameOver, chesserrors.ErrGameOver, false},
		{"through move error", illegal, chesserrors.ErrIllegalMove, false},
		{"through game and move errors", inGame, chesserrors.ErrIllegalMove, false},
		{"through Wrapf", chesserrors.Wrapf(inGame, "reading %s", "games.txt"), chesserrors.ErrIllegalMove, false},
		{"different sentinel", inGame, chesserrors.ErrWrongTurn, true},
		{"nil error", nil, chesserrors.ErrIllegalMove, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := record(func(tb testing.TB) { AssertErrorIs(tb, tt.err, tt.target, "game %d", 2) })
			AssertEqual(t, len(r.errs) > 0, tt.wantFail)
			if tt.wantFail {
				AssertContains(t, r.errs[0], "game 2: error = ")
				AssertContains(t, r.errs[0], tt.target.Error())
			}
		})
	}
}

func TestAssertEqual_ReportsDiff(t *testing.T) {
	r := record(func(tb testing.TB) {
		AssertEqual(tb, []string{"e2e4", "e7e5"}, []string{"e2e4", "c7c5"}, "moves")
	})

	AssertEqual(t, len(r.errs), 1)
	AssertContains(t, r.errs[0], "moves: mismatch (-want +got)")
	AssertContains(t, r.errs[0], `"c7c5"`)
	AssertContains(t, r.errs[0], `"e7e5"`)

	r = record(func(tb testing.TB) { AssertEqual(tb, chess.W(chess.Queen), chess.W(chess.Queen)) })
	AssertEqual(t, len(r.errs), 0)
}

func TestAssertions_Messages(t *testing.T) {
	tests := []struct {
		name string
		fn   func(tb testing.TB)
		want string
	}{
		{"no error", func(tb testing.TB) { AssertNoError(tb, chesserrors.ErrSetupClosed, "place") }, "place: unexpected error: setup closed"},
		{"error expected", func(tb testing.TB) { AssertError(tb, nil) }, "expected error but got nil"},
		{"contains", func(tb testing.TB) { AssertContains(tb, "1. e4 e5", "Nf3") }, `does not contain "Nf3"`},
		{"not contains", func(tb testing.TB) { AssertNotContains(tb, "1. e4 e5", "e5") }, `should not contain "e5"`},
		{"true", func(tb testing.TB) { AssertTrue(tb, false, "in check") }, "in check"},
		{"false", func(tb testing.TB) { AssertFalse(tb, true, "ply %d", 4) }, "ply 4"},
		{"nil", func(tb testing.TB) { AssertNil(tb, chess.NewBoard()) }, "expected nil"},
		{"not nil", func(tb testing.TB) { AssertNotNil(tb, (*chess.Board)(nil)) }, "expected non-nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := record(tt.fn)
			AssertEqual(t, len(r.errs), 1)
			AssertContains(t, r.errs[0], tt.want)
		})
	}
}

func TestBoardFromDiagram_Rejects(t *testing.T) {
	full := func(rank string) []string {
		ranks := []string{"....k...", "........", "........", "........", "........", "........", "........", "....K..."}
		ranks[3] = rank
		return ranks
	}

	tests := []struct {
		name  string
		ranks []string
		want  string
	}{
		{"too few ranks", []string{"....k...", "....K..."}, "diagram has 2 ranks, want 8"},
		{"short rank", full("..."), "diagram rank 5"},
		{"unknown piece", full("...x...."), "unknown piece 'x'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := record(func(tb testing.TB) { BoardFromDiagram(tb, chess.White, tt.ranks...) })
			AssertTrue(t, r.fatal)
			AssertContains(t, r.errs[0], tt.want)
		})
	}
}

func TestPlayMoves_StopsAtRejectedMove(t *testing.T) {
	var played []string
	apply := func(from, to chess.Square) error {
		if from == Square("e1") {
			return &chesserrors.MoveError{Err: chesserrors.ErrIllegalMove, From: "e1", To: to.String()}
		}
		played = append(played, from.String()+to.String())
		return nil
	}

	r := record(func(tb testing.TB) { PlayMoves(tb, apply, "e2e4", "e7e5", "e1e3", "g1f3") })

	AssertTrue(t, r.fatal)
	AssertEqual(t, played, []string{"e2e4", "e7e5"})
	AssertContains(t, r.errs[0], "move 3 (e1e3)")
	AssertTrue(t, strings.Contains(r.errs[0], "illegal move"))

	r = record(func(tb testing.TB) { PlayMoves(tb, apply, "e2-e4") })
	AssertContains(t, r.errs[0], `bad coordinate move "e2-e4"`)
}
