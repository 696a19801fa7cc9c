package main

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/storage"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func playInput(moves ...string) *strings.Reader {
	return strings.NewReader(strings.Join(moves, "\n") + "\n")
}

// Reaches a white pawn on b7 with the a8 rook still at home.
var promotionLine = []string{"a2a4", "b7b5", "a4b5", "a7a6", "b5a6", "c8b7", "a6b7", "g8f6"}

func TestRunPlay_FoolsMate(t *testing.T) {
	cfg, out, _ := newTestConfig(t)

	err := runPlay(cfg, playInput("f2f3", "e7e5", "g2g4", "d8h4", "e2e4"))
	testutil.AssertNoError(t, err)

	got := out.String()
	testutil.AssertContains(t, got, "White to move, ongoing")
	// Input after the mate is not read.
	testutil.AssertTrue(t, strings.HasSuffix(got, "Game over: checkmate 0-1\n"), "session ends at mate")
}

func TestRunPlay_RejectsMoves(t *testing.T) {
	tests := []struct {
		name string
		move string
		want string
	}{
		{"wrong side", "e7e5", "wrong side to move"},
		{"illegal", "e2e5", "illegal move"},
		{"bad notation", "Nf3", "invalid notation"},
		{"empty origin", "e3e4", "no piece found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, out, _ := newTestConfig(t)

			testutil.AssertNoError(t, runPlay(cfg, playInput(tt.move, "quit")))
			testutil.AssertContains(t, out.String(), tt.want)
			testutil.AssertNotContains(t, out.String(), "Black to move")
		})
	}
}

func TestRunPlay_Commands(t *testing.T) {
	cfg, out, _ := newTestConfig(t)

	testutil.AssertNoError(t, runPlay(cfg, playInput("help", "e2e4", "e7e5", "history", "moves", "quit")))

	got := out.String()
	testutil.AssertContains(t, got, "list legal moves")
	testutil.AssertContains(t, got, "e2e4 e7e5\n")
	testutil.AssertContains(t, got, "g1f3")
	testutil.AssertContains(t, got, "e1e2")
}

func TestRunPlay_Promotion(t *testing.T) {
	tests := []struct {
		name      string
		autoQueen bool
		input     []string
		wantRank  string
	}{
		{"auto queen", true, []string{"b7a8"}, " 8 | Q | n |"},
		{"suffix", true, []string{"b7a8r"}, " 8 | R | n |"},
		{"chosen", false, []string{"b7a8", "k", "n"}, " 8 | N | n |"},
		{"input ends", false, []string{"b7a8"}, " 8 | Q | n |"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, out, _ := newTestConfig(t)
			cfg.Play.AutoQueen = tt.autoQueen

			input := append(append([]string{}, promotionLine...), tt.input...)
			testutil.AssertNoError(t, runPlay(cfg, playInput(input...)))

			got := out.String()
			testutil.AssertContains(t, got, tt.wantRank)
			if !tt.autoQueen {
				testutil.AssertContains(t, got, "Promote on a8 to")
			}
			if tt.name == "chosen" {
				testutil.AssertContains(t, got, "Choose q, r, b or n.")
			}
		})
	}
}

func TestRunPlay_ContinueAndArchive(t *testing.T) {
	cfg, out, log := newTestConfig(t)
	cfg.Play.StopAtGameEnd = false
	cfg.ArchiveDir = t.TempDir()

	testutil.AssertNoError(t, runPlay(cfg, playInput("f2f3", "e7e5", "g2g4", "d8h4", "e2e4", "quit")))

	got := out.String()
	testutil.AssertContains(t, got, "New game.")
	testutil.AssertContains(t, got, "Black to move, ongoing")
	testutil.AssertContains(t, log.String(), "Saved game 00000001")

	a, err := storage.Open(cfg.ArchiveDir)
	testutil.AssertNoError(t, err)
	defer a.Close()

	rec, err := a.Get("00000001")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Result, "0-1")
	testutil.AssertEqual(t, rec.Tags.Get(chess.TerminationTag), "checkmate")
	testutil.AssertEqual(t, rec.Moves, []string{"f2f3", "e7e5", "g2g4", "d8h4"})
}
