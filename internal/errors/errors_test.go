package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrOutOfBounds", ErrOutOfBounds, ErrOutOfBounds},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrNoPieceFound", ErrNoPieceFound, ErrNoPieceFound},
		{"ErrWrongTurn", ErrWrongTurn, ErrWrongTurn},
		{"ErrInvalidPromotion", ErrInvalidPromotion, ErrInvalidPromotion},
		{"ErrInvalidPiece", ErrInvalidPiece, ErrInvalidPiece},
		{"ErrSetupClosed", ErrSetupClosed, ErrSetupClosed},
		{"ErrInvalidNotation", ErrInvalidNotation, ErrInvalidNotation},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrArchiveNotFound", ErrArchiveNotFound, ErrArchiveNotFound},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrWrongTurn) {
		t.Error("ErrIllegalMove should not match ErrWrongTurn")
	}
	if errors.Is(ErrOutOfBounds, ErrNoPieceFound) {
		t.Error("ErrOutOfBounds should not match ErrNoPieceFound")
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("apply e2e5: %w", ErrIllegalMove)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Errorf("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
		want     string
	}{
		{
			name:     "full context",
			err:      &MoveError{Err: ErrIllegalMove, From: "e2", To: "e5", Ply: 1},
			contains: []string{"ply 1", "e2-e5", "illegal move"},
		},
		{
			name:     "squares only",
			err:      &MoveError{Err: ErrWrongTurn, From: "e7", To: "e5"},
			contains: []string{"e7-e5", "wrong side to move"},
		},
		{
			name: "bare error",
			err:  &MoveError{Err: ErrGameOver},
			want: "game over",
		},
		{
			name: "empty",
			err:  &MoveError{},
			want: "move error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if tt.want != "" && msg != tt.want {
				t.Errorf("MoveError.Error() = %q, want %q", msg, tt.want)
			}
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{Err: ErrInvalidPromotion, From: "a7", To: "a8", Ply: 31}

	if !errors.Is(moveErr, ErrInvalidPromotion) {
		t.Error("errors.Is(moveErr, ErrInvalidPromotion) = false, want true")
	}

	wrapped := fmt.Errorf("game 2: %w", moveErr)
	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() failed to extract MoveError")
	}
	if extracted.Ply != 31 {
		t.Errorf("extracted.Ply = %d, want 31", extracted.Ply)
	}
}

// TestGameError_Error verifies the error message format
func TestGameError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GameError
		contains []string
	}{
		{
			name: "full context",
			err: &GameError{
				Err:      ErrIllegalMove,
				GameNum:  5,
				PlyNum:   12,
				MoveText: "g1g3",
				File:     "games.txt",
			},
			contains: []string{"game 5", "ply 12", "g1g3", "games.txt", "illegal move"},
		},
		{
			name: "minimal context",
			err: &GameError{
				Err:     ErrInvalidNotation,
				GameNum: 1,
			},
			contains: []string{"game 1", "invalid notation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("GameError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestGameError_As verifies that errors.As works through a MoveError inside a GameError
func TestGameError_As(t *testing.T) {
	gameErr := &GameError{
		Err:      &MoveError{Err: ErrIllegalMove, From: "e1", To: "g1", Ply: 9},
		GameNum:  3,
		PlyNum:   9,
		MoveText: "e1g1",
	}

	wrapped := fmt.Errorf("processing failed: %w", gameErr)

	var extracted *GameError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() failed to extract GameError")
	}
	if extracted.GameNum != 3 {
		t.Errorf("extracted.GameNum = %d, want 3", extracted.GameNum)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrOutOfBounds, "square %s", "i9")
	if !Is(err, ErrOutOfBounds) {
		t.Errorf("Is(%v, ErrOutOfBounds) = false, want true", err)
	}
	if got, want := err.Error(), "square i9: square out of bounds"; got != want {
		t.Errorf("Wrapf() = %q, want %q", got, want)
	}
}
