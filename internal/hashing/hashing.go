// Package hashing provides position hashing and duplicate detection for
// replayed games.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// DuplicateDetector tracks the signatures of games already seen.
type DuplicateDetector struct {
	// hashTable stores signatures by final position hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same move sequence
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	uniqueCount    int
	// maxCapacity limits stored signatures (0 = unlimited)
	maxCapacity int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// PlyCount is the number of player moves in the game
	PlyCount int
	// MoveHash is a hash of the move sequence
	MoveHash uint64
}

// Signature computes the signature of the game played on b.
func Signature(b *chess.Board) GameSignature {
	return GameSignature{
		Hash:     BoardHash(b),
		PlyCount: b.PlayerMoves,
		MoveHash: hashMoveSequence(b.Moves()),
	}
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks if a game is a duplicate and records it if not.
// Returns true if the game is a duplicate. Once the detector is full new
// signatures are checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.uniqueCount++
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.PlyCount != b.PlyCount {
		return false
	}
	if d.useExactMatch && a.MoveHash != b.MoveHash {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
	d.uniqueCount = 0
}

// hashMoveSequence creates a hash from the coordinate text of the moves.
func hashMoveSequence(moves []chess.MoveRecord) uint64 {
	var hash uint64
	multiplier := uint64(31)

	for _, m := range moves {
		for _, c := range m.String() {
			hash = hash*multiplier + uint64(c)
		}
	}

	return hash
}
