package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Zobrist keys. The generator is seeded with constants so hashes are stable
// across runs and may be stored.
var (
	pieceKeys    [2][chess.King + 1][chess.BoardSize][chess.BoardSize]uint64
	whiteToMove  uint64
	castlingKeys [4]uint64
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewPCG(0x9E3779B97F4A7C15, 0xC2B2AE3D27D4EB4F))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for f := range pieceKeys[c][k] {
				for rk := range pieceKeys[c][k][f] {
					pieceKeys[c][k][f][rk] = r.Uint64()
				}
			}
		}
	}
	whiteToMove = r.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = r.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = r.Uint64()
	}
}

// PositionHash returns the Zobrist hash of a snapshot. Equal snapshots hash
// equal; the side to move, castling rights and en-passant file all count.
func PositionHash(s chess.Snapshot) uint64 {
	var h uint64
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			p := s.Grid[file][rank]
			if p.IsEmpty() {
				continue
			}
			h ^= pieceKeys[p.Colour][p.Kind][file][rank]
		}
	}
	if s.ToMove == chess.White {
		h ^= whiteToMove
	}
	for i, allowed := range []bool{
		s.Castling.WhiteKingside, s.Castling.WhiteQueenside,
		s.Castling.BlackKingside, s.Castling.BlackQueenside,
	} {
		if allowed {
			h ^= castlingKeys[i]
		}
	}
	if s.EnPassant.Valid() {
		h ^= epFileKeys[s.EnPassant.File]
	}
	return h
}

// BoardHash returns the Zobrist hash of the board's current position.
func BoardHash(b *chess.Board) uint64 {
	return PositionHash(b.Snapshot())
}
