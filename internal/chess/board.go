package chess

import (
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// slot indexes the piece arena; 0 means an empty square.
type slot uint8

const emptySlot slot = 0

// PieceID is a handle to a piece on a board. A handle becomes stale once its
// piece is captured or promoted away; stale handles never resolve again, even
// after the arena slot is reused.
type PieceID struct {
	slot slot
	gen  uint32
}

// NoPieceID is the zero handle. It never resolves.
var NoPieceID PieceID

// IsZero reports whether the handle is the zero handle.
func (id PieceID) IsZero() bool {
	return id.slot == emptySlot
}

type pieceRecord struct {
	piece Piece
	gen   uint32
	live  bool
}

// View is a read-only view of an occupancy grid plus the move that produced it.
// Capability and check queries are pure functions of a View.
type View interface {
	// At returns the occupant of sq, or NoPiece when sq is empty or off-board.
	At(sq Square) Piece
	// LastMove returns the most recent move record, if any.
	LastMove() (MoveRecord, bool)
}

// Board owns the grid, the piece arena and the move and snapshot histories.
//
// The grid is only written by the setup methods (before the first move) and by
// the mutation primitives Relocate, Remove, Replace and Commit, which the
// engine's move execution uses.
type Board struct {
	// grid[file][rank] holds arena slots.
	grid  [BoardSize][BoardSize]slot
	arena []pieceRecord
	free  []slot

	// Who has the next move.
	ToMove Colour

	// Castling rights for the four castling options.
	Castling CastlingRights

	// Square passed over by the last double pawn push, or NoSquare.
	EnPassant Square

	// Player moves since the last pawn move or capture. Castling counts once.
	HalfmoveClock int

	// Player moves applied. Castling counts once.
	PlayerMoves int

	moves     []MoveRecord
	snapshots []Snapshot
}

// NewEmptyBoard creates a board with no pieces, White to move.
func NewEmptyBoard() *Board {
	b := &Board{
		ToMove:    White,
		EnPassant: NoSquare,
	}
	b.resetHistory()
	return b
}

// NewBoard creates a board set up in the standard starting position.
func NewBoard() *Board {
	b := NewEmptyBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position and
// records the first snapshot.
func (b *Board) SetupInitialPosition() {
	b.grid = [BoardSize][BoardSize]slot{}
	b.arena = nil
	b.free = nil
	b.moves = nil

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.grid[file][White.HomeRank()] = b.alloc(W(backRank[file]))
		b.grid[file][White.PawnRank()] = b.alloc(W(Pawn))
		b.grid[file][Black.PawnRank()] = b.alloc(B(Pawn))
		b.grid[file][Black.HomeRank()] = b.alloc(B(backRank[file]))
	}

	b.ToMove = White
	b.resetHistory()
}

// Place puts a piece on sq during setup, replacing any occupant.
func (b *Board) Place(sq Square, p Piece) (PieceID, error) {
	if err := b.checkSetup(sq); err != nil {
		return NoPieceID, err
	}
	if p.Kind == NoKind {
		return NoPieceID, errors.Wrapf(errors.ErrInvalidPiece, "place on %s", sq)
	}
	if s := b.grid[sq.File][sq.Rank]; s != emptySlot {
		b.release(s)
	}
	s := b.alloc(p)
	b.grid[sq.File][sq.Rank] = s
	b.resetHistory()
	return b.idOf(s), nil
}

// Clear empties sq during setup.
func (b *Board) Clear(sq Square) error {
	if err := b.checkSetup(sq); err != nil {
		return err
	}
	if s := b.grid[sq.File][sq.Rank]; s != emptySlot {
		b.release(s)
		b.grid[sq.File][sq.Rank] = emptySlot
	}
	b.resetHistory()
	return nil
}

// SetToMove sets the side to move during setup.
func (b *Board) SetToMove(c Colour) error {
	if len(b.moves) > 0 {
		return errors.ErrSetupClosed
	}
	b.ToMove = c
	b.resetHistory()
	return nil
}

func (b *Board) checkSetup(sq Square) error {
	if len(b.moves) > 0 {
		return errors.ErrSetupClosed
	}
	if !sq.Valid() {
		return errors.Wrapf(errors.ErrOutOfBounds, "square %v", sq)
	}
	return nil
}

// resetHistory re-derives castling rights from the home squares and records
// the setup position as the only snapshot.
func (b *Board) resetHistory() {
	b.Castling = CastlingRights{}
	for _, c := range []Colour{White, Black} {
		if !b.At(Sq(KingFile, c.HomeRank())).Is(King, c) {
			continue
		}
		if b.At(Sq(KingsideRookFile, c.HomeRank())).Is(Rook, c) {
			b.Castling.Set(c, true, true)
		}
		if b.At(Sq(QueensideRookFile, c.HomeRank())).Is(Rook, c) {
			b.Castling.Set(c, false, true)
		}
	}
	b.EnPassant = NoSquare
	b.HalfmoveClock = 0
	b.PlayerMoves = 0
	b.moves = nil
	b.snapshots = []Snapshot{b.Snapshot()}
}

// alloc stores p in a free arena slot.
func (b *Board) alloc(p Piece) slot {
	if n := len(b.free); n > 0 {
		s := b.free[n-1]
		b.free = b.free[:n-1]
		rec := &b.arena[s-1]
		rec.piece = p
		rec.live = true
		return s
	}
	b.arena = append(b.arena, pieceRecord{piece: p, gen: 1, live: true})
	return slot(len(b.arena))
}

// release frees an arena slot. Handles to it go stale.
func (b *Board) release(s slot) {
	rec := &b.arena[s-1]
	rec.live = false
	rec.piece = NoPiece
	rec.gen++
	b.free = append(b.free, s)
}

func (b *Board) idOf(s slot) PieceID {
	if s == emptySlot {
		return NoPieceID
	}
	return PieceID{slot: s, gen: b.arena[s-1].gen}
}

// At returns the occupant of sq, or NoPiece when empty or off-board.
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	s := b.grid[sq.File][sq.Rank]
	if s == emptySlot {
		return NoPiece
	}
	return b.arena[s-1].piece
}

// IDAt returns the handle of the piece on sq, or NoPieceID.
func (b *Board) IDAt(sq Square) PieceID {
	if !sq.Valid() {
		return NoPieceID
	}
	return b.idOf(b.grid[sq.File][sq.Rank])
}

// IsOccupied reports whether sq holds a piece. Off-board squares are never occupied.
func (b *Board) IsOccupied(sq Square) bool {
	return !b.At(sq).IsEmpty()
}

// Piece resolves a handle to its piece.
func (b *Board) Piece(id PieceID) (Piece, bool) {
	if !b.resolves(id) {
		return NoPiece, false
	}
	return b.arena[id.slot-1].piece, true
}

// FindPiece returns the square of the piece with the given handle, or NoSquare
// if the piece is no longer on the board.
func (b *Board) FindPiece(id PieceID) Square {
	if !b.resolves(id) {
		return NoSquare
	}
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.grid[file][rank] == id.slot {
				return Sq(file, rank)
			}
		}
	}
	return NoSquare
}

func (b *Board) resolves(id PieceID) bool {
	if id.slot == emptySlot || int(id.slot) > len(b.arena) {
		return false
	}
	rec := b.arena[id.slot-1]
	return rec.live && rec.gen == id.gen
}

// FindKing returns the square of the given colour's king, or NoSquare.
func (b *Board) FindKing(c Colour) Square {
	l := b.Layout()
	return l.FindKing(c)
}

// PieceCount returns the number of pieces on the board.
func (b *Board) PieceCount() int {
	n := 0
	for _, rec := range b.arena {
		if rec.live {
			n++
		}
	}
	return n
}

// LastMove returns the most recent move record.
func (b *Board) LastMove() (MoveRecord, bool) {
	if len(b.moves) == 0 {
		return MoveRecord{}, false
	}
	return b.moves[len(b.moves)-1], true
}

// Moves returns a copy of the move records, one per half-move (two for a castle).
func (b *Board) Moves() []MoveRecord {
	out := make([]MoveRecord, len(b.moves))
	copy(out, b.moves)
	return out
}

// Snapshots returns a copy of the position snapshots, oldest first.
func (b *Board) Snapshots() []Snapshot {
	out := make([]Snapshot, len(b.snapshots))
	copy(out, b.snapshots)
	return out
}

// Layout returns a scratch copy of the occupancy for simulation.
func (b *Board) Layout() Layout {
	l := Layout{}
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if s := b.grid[file][rank]; s != emptySlot {
				l.Grid[file][rank] = b.arena[s-1].piece
			}
		}
	}
	l.Last, l.HasLast = b.LastMove()
	return l
}

// Snapshot captures the current position for repetition detection.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Grid:      b.Layout().Grid,
		Castling:  b.Castling,
		EnPassant: b.EnPassant,
		ToMove:    b.ToMove,
	}
}

// Relocate moves the occupant of from to the empty square to.
func (b *Board) Relocate(from, to Square) {
	b.grid[to.File][to.Rank] = b.grid[from.File][from.Rank]
	b.grid[from.File][from.Rank] = emptySlot
}

// Remove takes the occupant off sq and destroys it.
func (b *Board) Remove(sq Square) Piece {
	s := b.grid[sq.File][sq.Rank]
	if s == emptySlot {
		return NoPiece
	}
	p := b.arena[s-1].piece
	b.release(s)
	b.grid[sq.File][sq.Rank] = emptySlot
	return p
}

// Replace destroys the occupant of sq and puts a new piece of the same colour
// and the given kind in its place.
func (b *Board) Replace(sq Square, kind Kind) PieceID {
	old := b.Remove(sq)
	s := b.alloc(Piece{Kind: kind, Colour: old.Colour})
	b.grid[sq.File][sq.Rank] = s
	return b.idOf(s)
}

// Amend replaces the pawn on sq with a new piece of the given kind after its
// move has been committed. The latest move record, if it landed on sq, and
// the latest snapshot are updated to match.
func (b *Board) Amend(sq Square, kind Kind) PieceID {
	id := b.Replace(sq, kind)
	if n := len(b.moves); n > 0 && b.moves[n-1].To == sq {
		b.moves[n-1].Promotion = kind
	}
	b.snapshots[len(b.snapshots)-1] = b.Snapshot()
	return id
}

// Commit appends the records of one player move, advances the clocks, passes
// the move to the other side and records the resulting snapshot.
func (b *Board) Commit(records ...MoveRecord) {
	reset := false
	for _, r := range records {
		reset = reset || r.ResetsClock
	}
	b.moves = append(b.moves, records...)
	if reset {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}
	b.PlayerMoves++
	b.ToMove = b.ToMove.Opposite()
	b.snapshots = append(b.snapshots, b.Snapshot())
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := &Board{}
	*nb = *b
	nb.arena = append([]pieceRecord(nil), b.arena...)
	nb.free = append([]slot(nil), b.free...)
	nb.moves = append([]MoveRecord(nil), b.moves...)
	nb.snapshots = append([]Snapshot(nil), b.snapshots...)
	return nb
}
