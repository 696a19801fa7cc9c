// Package game provides a chess game session that is safe for concurrent use.
// Every query and every move runs as one critical section on the session's
// board, so no caller ever observes a half-applied move.
package game

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game is one board plus the lock guarding it.
type Game struct {
	board *chess.Board
	mu    sync.RWMutex
}

// New creates a game set up in the standard starting position.
func New() *Game {
	return &Game{board: chess.NewBoard()}
}

// FromBoard creates a game that takes ownership of b. The caller must not use
// b afterwards.
func FromBoard(b *chess.Board) *Game {
	return &Game{board: b}
}

// Reset returns the game to the standard starting position.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.board = chess.NewBoard()
}

// IsCheck reports whether the king of the given colour is attacked.
func (g *Game) IsCheck(c chess.Colour) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return engine.IsInCheck(g.board, c)
}

// IsCheckmate reports whether the given colour is checkmated.
func (g *Game) IsCheckmate(c chess.Colour) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return engine.IsCheckmate(g.board, c)
}

// IsStalemate reports whether the given colour is stalemated.
func (g *Game) IsStalemate(c chess.Colour) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return engine.IsStalemate(g.board, c)
}

// IsDrawByRepetition reports whether the current position has occurred three times.
func (g *Game) IsDrawByRepetition() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return engine.IsDrawByRepetition(g.board)
}

// IsDrawByFiftyMoves reports whether fifty moves by each side passed without
// a capture or pawn move.
func (g *Game) IsDrawByFiftyMoves() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return engine.IsDrawByFiftyMoves(g.board)
}

// IsDrawByInsufficientMaterial reports whether neither side can mate.
func (g *Game) IsDrawByInsufficientMaterial() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return engine.IsDrawByInsufficientMaterial(g.board)
}

// IsLegal reports whether the piece on from may move to to.
func (g *Game) IsLegal(from, to chess.Square) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return engine.IsLegal(g.board, from, to)
}

// FindPiece returns the square of the piece, or chess.NoSquare once it has
// been captured or promoted away.
func (g *Game) FindPiece(id chess.PieceID) chess.Square {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.FindPiece(id)
}

// PieceAt returns the occupant of sq and its handle.
func (g *Game) PieceAt(sq chess.Square) (chess.Piece, chess.PieceID) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.At(sq), g.board.IDAt(sq)
}

// IsOccupied reports whether a piece stands on sq.
func (g *Game) IsOccupied(sq chess.Square) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.IsOccupied(sq)
}

// ApplyMove validates and plays a move for the side to move. Once the game
// has ended by mate or a draw rule, every move fails with ErrGameOver.
func (g *Game) ApplyMove(from, to chess.Square, opts ...engine.MoveOption) (chess.MoveRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if engine.GetStatus(g.board).IsOver() {
		return chess.MoveRecord{}, &errors.MoveError{
			Err:  errors.ErrGameOver,
			From: from.String(),
			To:   to.String(),
			Ply:  g.board.PlayerMoves + 1,
		}
	}
	return engine.ApplyMove(g.board, from, to, opts...)
}

// Promote chooses the kind of a pawn left on its last rank by a deferred promotion.
func (g *Game) Promote(sq chess.Square, kind chess.Kind) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.Promote(g.board, sq, kind)
}

// PendingPromotion returns the square of a pawn waiting for Promote, or
// chess.NoSquare.
func (g *Game) PendingPromotion() chess.Square {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return engine.PendingPromotion(g.board)
}

// Status classifies the position for the side to move.
func (g *Game) Status() engine.Status {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return engine.GetStatus(g.board)
}

// Result returns "1-0", "0-1", "1/2-1/2" or "*".
func (g *Game) Result() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return engine.Result(g.board)
}

// ToMove returns the colour whose turn it is.
func (g *Game) ToMove() chess.Colour {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.ToMove
}

// Moves returns the move records so far.
func (g *Game) Moves() []chess.MoveRecord {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.Moves()
}

// Snapshots returns the position history, starting with the setup position.
func (g *Game) Snapshots() []chess.Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.Snapshots()
}

// EnPassantTarget returns the square passed over by the last double pawn
// push, or chess.NoSquare.
func (g *Game) EnPassantTarget() chess.Square {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.EnPassant
}

// LegalMoves lists the legal moves of the side to move.
func (g *Game) LegalMoves() []engine.Move {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return engine.LegalMoves(g.board, g.board.ToMove)
}

// Board returns a deep copy of the current board.
func (g *Game) Board() *chess.Board {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.Copy()
}
