package hashing

import (
	"sync"
	"testing"
)

func TestThreadSafeDuplicateDetector_Concurrent(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)
	sig := Signature(playedBoard(t, "e2e4", "c7c5"))

	const numGames = 100
	const numWorkers = 10
	gamesPerWorker := numGames / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < gamesPerWorker; j++ {
				detector.CheckAndAdd(sig)
			}
		}()
	}
	wg.Wait()

	if detector.DuplicateCount() != 99 {
		t.Errorf("Expected 99 duplicates, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("Expected 1 unique, got %d", detector.UniqueCount())
	}
}

func TestThreadSafeDuplicateDetector_MaxCapacity(t *testing.T) {
	const capacity = 50
	const numWorkers = 10
	const gamesPerWorker = 100

	detector := NewThreadSafeDuplicateDetector(false, capacity)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := 0; j < gamesPerWorker; j++ {
				detector.CheckAndAdd(GameSignature{Hash: uint64(workerID*gamesPerWorker + j)})
			}
		}(i)
	}
	wg.Wait()

	if !detector.IsFull() {
		t.Error("Expected detector to be full")
	}
	if detector.UniqueCount() != capacity {
		t.Errorf("UniqueCount() = %d, want %d", detector.UniqueCount(), capacity)
	}
}
