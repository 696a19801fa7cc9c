package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MoveOption configures ApplyMove.
type MoveOption func(*moveOptions)

type moveOptions struct {
	promotion      chess.Kind
	deferPromotion bool
}

// WithPromotion sets the kind a pawn reaching its last rank becomes.
// The default is a queen.
func WithPromotion(kind chess.Kind) MoveOption {
	return func(o *moveOptions) {
		o.promotion = kind
	}
}

// WithDeferredPromotion leaves a pawn that reaches its last rank on the board
// as a pawn. The caller must then choose its kind with Promote before any
// further move is accepted.
func WithDeferredPromotion() MoveOption {
	return func(o *moveOptions) {
		o.deferPromotion = true
	}
}

// ApplyMove validates and plays the move from-to for the side to move. On
// success it returns the record of the move (the king's record for a castle).
// On failure the board is unchanged and the error wraps one of
// ErrOutOfBounds, ErrNoPieceFound, ErrWrongTurn, ErrIllegalMove or
// ErrInvalidPromotion in a *errors.MoveError.
func ApplyMove(board *chess.Board, from, to chess.Square, opts ...MoveOption) (chess.MoveRecord, error) {
	o := moveOptions{promotion: chess.Queen}
	for _, opt := range opts {
		opt(&o)
	}

	fail := func(err error) (chess.MoveRecord, error) {
		return chess.MoveRecord{}, &errors.MoveError{
			Err:  err,
			From: from.String(),
			To:   to.String(),
			Ply:  board.PlayerMoves + 1,
		}
	}

	if !from.Valid() || !to.Valid() {
		return fail(errors.ErrOutOfBounds)
	}
	piece := board.At(from)
	if piece.IsEmpty() {
		return fail(errors.ErrNoPieceFound)
	}
	if piece.Colour != board.ToMove {
		return fail(errors.ErrWrongTurn)
	}
	if sq := PendingPromotion(board); sq != chess.NoSquare {
		return fail(errors.Wrapf(errors.ErrInvalidPromotion, "pawn on %s awaits promotion", sq))
	}
	if !IsLegal(board, from, to) {
		return fail(errors.ErrIllegalMove)
	}

	if kingside, ok := castleSide(board, from, to); ok {
		return applyCastle(board, piece, from, to, kingside), nil
	}

	promoting := isPromotionMove(board, from, to) && !o.deferPromotion
	if promoting && !o.promotion.CanPromoteTo() {
		return fail(errors.Wrapf(errors.ErrInvalidPromotion, "cannot promote to %v", o.promotion))
	}

	rec := chess.MoveRecord{
		From:        from,
		To:          to,
		Piece:       piece,
		ResetsClock: piece.Kind == chess.Pawn,
	}

	switch {
	case isEnPassantCapture(board, from, to):
		board.Remove(chess.Sq(to.File, from.Rank))
		rec.Captured = chess.Pawn
		rec.EnPassant = true
	case board.IsOccupied(to):
		rec.Captured = board.Remove(to).Kind
	}
	if rec.IsCapture() {
		rec.ResetsClock = true
	}

	board.Relocate(from, to)
	if promoting {
		board.Replace(to, o.promotion)
		rec.Promotion = o.promotion
	}

	revokeCastlingRights(&board.Castling, from, to)
	board.EnPassant = chess.NoSquare
	if rec.IsDoublePawnPush() {
		board.EnPassant = from.Offset(0, piece.Colour.Direction())
	}

	board.Commit(rec)
	return rec, nil
}

// applyCastle moves king and rook, appends both records and takes one snapshot.
func applyCastle(board *chess.Board, king chess.Piece, from, to chess.Square, kingside bool) chess.MoveRecord {
	rookFile, rookToFile := chess.CastleRookFiles(kingside)
	rookFrom := chess.Sq(rookFile, from.Rank)
	rookTo := chess.Sq(rookToFile, from.Rank)

	kingRec := chess.MoveRecord{From: from, To: to, Piece: king, Castle: true}
	rookRec := chess.MoveRecord{From: rookFrom, To: rookTo, Piece: board.At(rookFrom), Castle: true}

	board.Relocate(from, to)
	board.Relocate(rookFrom, rookTo)
	board.Castling.RevokeAll(king.Colour)
	board.EnPassant = chess.NoSquare

	board.Commit(kingRec, rookRec)
	return kingRec
}

// revokeCastlingRights drops every right tied to a king or rook home square
// that the move left or landed on.
func revokeCastlingRights(rights *chess.CastlingRights, squares ...chess.Square) {
	for _, sq := range squares {
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			if sq.Rank != colour.HomeRank() {
				continue
			}
			switch sq.File {
			case chess.KingFile:
				rights.RevokeAll(colour)
			case chess.KingsideRookFile:
				rights.Set(colour, true, false)
			case chess.QueensideRookFile:
				rights.Set(colour, false, false)
			}
		}
	}
}

// Promote replaces the pawn standing on its last rank at sq with a new piece
// of the given kind. It is used after a move played WithDeferredPromotion, or
// on a position set up with such a pawn. The latest move record and snapshot
// are updated; no extra snapshot is taken.
func Promote(board *chess.Board, sq chess.Square, kind chess.Kind) error {
	if !sq.Valid() {
		return errors.Wrapf(errors.ErrOutOfBounds, "promote on %v", sq)
	}
	pawn := board.At(sq)
	if pawn.Kind != chess.Pawn || sq.Rank != pawn.Colour.LastRank() {
		return errors.Wrapf(errors.ErrInvalidPromotion, "no pawn to promote on %s", sq)
	}
	if !kind.CanPromoteTo() {
		return errors.Wrapf(errors.ErrInvalidPromotion, "cannot promote to %v", kind)
	}
	board.Amend(sq, kind)
	return nil
}

// PendingPromotion returns the square of a pawn standing on its last rank, or
// chess.NoSquare.
func PendingPromotion(v chess.View) chess.Square {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		rank := colour.LastRank()
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			if v.At(sq).Is(chess.Pawn, colour) {
				return sq
			}
		}
	}
	return chess.NoSquare
}
