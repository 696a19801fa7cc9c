package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestCanReach(t *testing.T) {
	t.Parallel()

	b := testutil.BoardFromDiagram(t, chess.White,
		"....k...",
		"...p....",
		"........",
		"..p.....",
		".B......",
		"....n...",
		"P...P...",
		"R..QK.N.",
	)

	tests := []struct {
		name     string
		from, to string
		want     bool
	}{
		{"pawn single push", "a2", "a3", true},
		{"pawn double push", "a2", "a4", true},
		{"pawn triple push", "a2", "a5", false},
		{"pawn push blocked", "e2", "e3", false},
		{"pawn double push blocked", "e2", "e4", false},
		{"pawn sideways", "a2", "b2", false},
		{"pawn backwards", "d7", "d8", false},
		{"pawn diagonal onto empty", "a2", "b3", false},
		{"black pawn double push", "d7", "d5", true},
		{"knight L", "g1", "f3", true},
		{"knight onto own pawn", "g1", "e2", false},
		{"knight straight", "g1", "g3", false},
		{"bishop diagonal", "b4", "a5", true},
		{"bishop captures", "b4", "c5", true},
		{"bishop past capture", "b4", "d6", false},
		{"bishop back diagonal", "b4", "a3", true},
		{"rook onto own pawn", "a1", "a2", false},
		{"rook along rank", "a1", "c1", true},
		{"rook blocked on rank", "a1", "e1", false},
		{"rook diagonal", "a1", "b2", false},
		{"queen diagonal", "d1", "a4", true},
		{"queen diagonal blocked", "d1", "h5", false},
		{"queen file", "d1", "d6", true},
		{"queen captures on file", "d1", "d7", true},
		{"queen jump", "d1", "e3", false},
		{"king step", "e1", "f1", true},
		{"king onto own piece", "e1", "d1", false},
		{"king two squares", "e1", "g1", false},
		{"black knight captures", "e3", "d1", true},
		{"empty origin", "h4", "h5", false},
		{"same square", "a1", "a1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanReach(b, sq(tt.from), sq(tt.to)); got != tt.want {
				t.Errorf("CanReach(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCanReachOffBoard(t *testing.T) {
	t.Parallel()

	b := chess.NewBoard()
	for _, to := range []chess.Square{chess.NoSquare, chess.Sq(0, 8), chess.Sq(-1, 2)} {
		if CanReach(b, sq("b1"), to) {
			t.Errorf("CanReach(b1, %#v) = true, want false", to)
		}
	}
	if CanReach(b, chess.NoSquare, sq("a3")) {
		t.Error("CanReach(NoSquare, a3) = true, want false")
	}
}

func TestEnPassant(t *testing.T) {
	t.Parallel()

	t.Run("available right after double push", func(t *testing.T) {
		b := chess.NewBoard()
		play(t, b, "e2e4", "a7a6", "e4e5", "d7d5")

		if b.EnPassant != sq("d6") {
			t.Errorf("EnPassant = %v, want d6", b.EnPassant)
		}
		if !IsLegal(b, sq("e5"), sq("d6")) {
			t.Fatal("IsLegal(e5, d6) = false, want true")
		}

		rec, err := ApplyMove(b, sq("e5"), sq("d6"))
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, rec.EnPassant, "record flagged en passant")
		testutil.AssertEqual(t, rec.Captured, chess.Pawn)
		testutil.AssertEqual(t, b.At(sq("d5")), chess.NoPiece)
		testutil.AssertEqual(t, b.At(sq("d6")), chess.W(chess.Pawn))
		testutil.AssertEqual(t, b.PieceCount(), 31)
	})

	t.Run("gone one move later", func(t *testing.T) {
		b := chess.NewBoard()
		play(t, b, "e2e4", "a7a6", "e4e5", "d7d5", "g1f3", "a6a5")

		if IsLegal(b, sq("e5"), sq("d6")) {
			t.Error("IsLegal(e5, d6) = true after an intervening move")
		}
	})

	t.Run("not after single steps", func(t *testing.T) {
		b := chess.NewBoard()
		play(t, b, "e2e4", "d7d6", "e4e5", "d6d5")

		if IsLegal(b, sq("e5"), sq("d6")) {
			t.Error("IsLegal(e5, d6) = true after two single steps")
		}
	})

	t.Run("capture exposing king on rank", func(t *testing.T) {
		b := testutil.BoardFromDiagram(t, chess.Black,
			"....k...",
			"..p.....",
			"........",
			"KP.....r",
			"........",
			"........",
			"........",
			"........",
		)
		play(t, b, "c7c5")

		if IsLegal(b, sq("b5"), sq("c6")) {
			t.Error("en passant that uncovers the king was reported legal")
		}
	})
}

func TestIsLegalKingSafety(t *testing.T) {
	t.Parallel()

	b := testutil.BoardFromDiagram(t, chess.White,
		"....r..k",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....B...",
		"....K...",
	)

	tests := []struct {
		name     string
		from, to string
		want     bool
	}{
		{"pinned bishop leaves file", "e2", "d3", false},
		{"king steps aside", "e1", "d1", true},
		{"king onto own bishop", "e1", "e2", false},
		{"king steps next to file", "e1", "f2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLegal(b, sq(tt.from), sq(tt.to)); got != tt.want {
				t.Errorf("IsLegal(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsLegalMustAnswerCheck(t *testing.T) {
	t.Parallel()

	b := testutil.BoardFromDiagram(t, chess.White,
		"....r..k",
		"........",
		"........",
		"........",
		"........",
		"........",
		"P.......",
		"....K..R",
	)

	if IsLegal(b, sq("a2"), sq("a3")) {
		t.Error("pawn move ignoring check reported legal")
	}
	if IsLegal(b, sq("e1"), sq("g1")) {
		t.Error("castling out of check reported legal")
	}
	if !IsLegal(b, sq("e1"), sq("f2")) {
		t.Error("king escape reported illegal")
	}
}

func TestCastling(t *testing.T) {
	t.Parallel()

	t.Run("legal then illegal once transit square attacked", func(t *testing.T) {
		b := testutil.BoardFromDiagram(t, chess.Black,
			"....k...",
			"........",
			"r.......",
			"........",
			"........",
			"........",
			"........",
			"....K..R",
		)

		if !IsLegal(b, sq("e1"), sq("g1")) {
			t.Fatal("IsLegal(e1, g1) = false, want true")
		}
		play(t, b, "a6f6")
		if IsLegal(b, sq("e1"), sq("g1")) {
			t.Error("IsLegal(e1, g1) = true with f1 attacked")
		}
	})

	tests := []struct {
		name     string
		diagram  []string
		from, to string
		want     bool
	}{
		{
			name: "queenside with b1 attacked",
			diagram: []string{
				".r..k...",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"R...K...",
			},
			from: "e1", to: "c1", want: true,
		},
		{
			name: "queenside with piece on b1",
			diagram: []string{
				"....k...",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"RN..K...",
			},
			from: "e1", to: "c1", want: false,
		},
		{
			name: "destination attacked",
			diagram: []string{
				"....k.r.",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"....K..R",
			},
			from: "e1", to: "g1", want: false,
		},
		{
			name: "no rook",
			diagram: []string{
				"....k...",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"....K...",
			},
			from: "e1", to: "g1", want: false,
		},
		{
			name: "black kingside",
			diagram: []string{
				"....k..r",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"....K...",
			},
			from: "e8", to: "g8", want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.BoardFromDiagram(t, chess.White, tt.diagram...)
			if got := IsLegal(b, sq(tt.from), sq(tt.to)); got != tt.want {
				t.Errorf("IsLegal(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}

	t.Run("rights lost after king moves back", func(t *testing.T) {
		b := testutil.BoardFromDiagram(t, chess.White,
			"....k...",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"....K..R",
		)
		play(t, b, "e1f1", "e8d8", "f1e1", "d8e8")

		if IsLegal(b, sq("e1"), sq("g1")) {
			t.Error("castling allowed after the king has moved")
		}
	})
}

// TestIsLegalLeavesBoardUnchanged checks that probing every move, legal or
// not, leaves the position and histories exactly as they were.
func TestIsLegalLeavesBoardUnchanged(t *testing.T) {
	t.Parallel()

	b := testutil.BoardFromDiagram(t, chess.White, testutil.Kiwipete...)
	play(t, b, "e1g1", "h3g2")

	before := b.Snapshot()
	moves := b.Moves()
	snapshots := b.Snapshots()
	count := b.PieceCount()

	for fromFile := 0; fromFile < chess.BoardSize; fromFile++ {
		for fromRank := 0; fromRank < chess.BoardSize; fromRank++ {
			for toFile := 0; toFile < chess.BoardSize; toFile++ {
				for toRank := 0; toRank < chess.BoardSize; toRank++ {
					IsLegal(b, chess.Sq(fromFile, fromRank), chess.Sq(toFile, toRank))
				}
			}
		}
	}

	testutil.AssertEqual(t, b.Snapshot(), before)
	testutil.AssertEqual(t, b.Moves(), moves)
	testutil.AssertEqual(t, b.Snapshots(), snapshots)
	testutil.AssertEqual(t, b.PieceCount(), count)
}

// TestNoSelfCheckAfterLegalMoves plays a long game of always-first legal moves
// and checks that the mover is never left in check.
func TestNoSelfCheckAfterLegalMoves(t *testing.T) {
	t.Parallel()

	b := chess.NewBoard()
	for ply := 0; ply < 80; ply++ {
		moves := LegalMoves(b, b.ToMove)
		if len(moves) == 0 {
			break
		}
		m := moves[(ply*7)%len(moves)]
		mover := b.ToMove
		before := b.PieceCount()

		rec, err := ApplyMove(b, m.From, m.To, WithPromotion(chess.Queen))
		if err != nil {
			t.Fatalf("ply %d: ApplyMove(%s) error = %v", ply+1, m, err)
		}
		if IsInCheck(b, mover) {
			t.Fatalf("ply %d: %v left in check after %s", ply+1, mover, m)
		}

		want := before
		if rec.IsCapture() {
			want--
		}
		if got := b.PieceCount(); got != want {
			t.Fatalf("ply %d: PieceCount() = %d, want %d", ply+1, got, want)
		}
		if GetStatus(b).IsOver() {
			break
		}
	}
}

func TestLegalMovesFromStart(t *testing.T) {
	t.Parallel()

	b := chess.NewBoard()
	testutil.AssertEqual(t, len(LegalMoves(b, chess.White)), 20)
	testutil.AssertEqual(t, len(LegalMoves(b, chess.Black)), 20)
	testutil.AssertTrue(t, HasLegalMoves(b, chess.White))
}

func TestLegalMovesPromotion(t *testing.T) {
	t.Parallel()

	b := testutil.BoardFromDiagram(t, chess.White,
		"k.......",
		"......P.",
		"........",
		"........",
		"........",
		"........",
		"........",
		"K.......",
	)

	var promotions []string
	for _, m := range LegalMoves(b, chess.White) {
		if m.Promotion != chess.NoKind {
			promotions = append(promotions, m.String())
		}
	}
	testutil.AssertEqual(t, promotions, []string{"g7g8q", "g7g8r", "g7g8b", "g7g8n"})
}

func TestIsSquareAttacked(t *testing.T) {
	t.Parallel()

	b := testutil.BoardFromDiagram(t, chess.White,
		"....k...",
		"........",
		"........",
		"........",
		"...p....",
		"........",
		"........",
		"....K...",
	)

	tests := []struct {
		sq   string
		by   chess.Colour
		want bool
	}{
		{"c3", chess.Black, true},
		{"e3", chess.Black, true},
		{"d3", chess.Black, false},
		{"d2", chess.White, true},
		{"d7", chess.Black, true},
		{"a5", chess.White, false},
	}
	for _, tt := range tests {
		if got := IsSquareAttacked(b, sq(tt.sq), tt.by); got != tt.want {
			t.Errorf("IsSquareAttacked(%s, %v) = %v, want %v", tt.sq, tt.by, got, tt.want)
		}
	}
}
