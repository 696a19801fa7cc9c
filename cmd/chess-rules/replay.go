// replay.go - Replaying move files through the worker pool
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/matching"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/storage"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// replayInput is one named source of move scripts.
type replayInput struct {
	name string
	r    io.Reader
}

// replayCounts tallies what happened to the replayed games.
type replayCounts struct {
	total      int
	reported   int
	duplicates int
	broken     int
	archived   int
}

// replayer owns the state shared by the replay workers and the consumer.
type replayer struct {
	cfg       *config.Config
	tags      *matching.TagMatcher
	detector  *hashing.ThreadSafeDuplicateDetector
	archive   *storage.Archive
	writer    output.GameWriter
	dupWriter output.GameWriter
	counts    replayCounts
}

// runReplay replays each named file, or stdin when none are given. Games
// whose tags fail tm are not reported; tm may be nil.
func runReplay(cfg *config.Config, tm *matching.TagMatcher, files []string) error {
	var inputs []replayInput
	if len(files) == 0 {
		inputs = append(inputs, replayInput{name: "stdin", r: os.Stdin})
	}
	for _, filename := range files {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
			continue
		}
		defer file.Close() //nolint:errcheck // read-only
		inputs = append(inputs, replayInput{name: filename, r: file})
	}

	archive, err := openArchive(cfg)
	if err != nil {
		return err
	}
	if archive != nil {
		defer archive.Close()
	}

	start := time.Now()
	rp := newReplayer(cfg, tm, archive)
	if err := rp.replay(inputs); err != nil {
		return err
	}
	rp.report(time.Since(start))
	return nil
}

func newReplayer(cfg *config.Config, tm *matching.TagMatcher, archive *storage.Archive) *replayer {
	rp := &replayer{
		cfg:     cfg,
		tags:    tm,
		archive: archive,
		writer:  output.NewGameWriter(cfg.OutputFile, cfg),
	}

	dup := cfg.Duplicate
	if dup.Suppress || dup.SuppressOriginals || dup.DuplicateFile != nil {
		rp.detector = hashing.NewThreadSafeDuplicateDetector(dup.ExactMatch, dup.MaxCapacity)
	}
	if dup.DuplicateFile != nil {
		rp.dupWriter = output.NewGameWriter(dup.DuplicateFile, cfg)
	}
	return rp
}

// replay feeds every script to the pool and reports results in input order.
func (rp *replayer) replay(inputs []replayInput) error {
	pool := worker.New(rp.process,
		worker.WithWorkers(rp.cfg.Workers),
		worker.WithBufferSize(rp.cfg.Workers*4),
	)
	if rp.cfg.Verbosity > 1 {
		fmt.Fprintf(rp.cfg.LogFile, "Replaying with %d worker(s)\n", pool.Workers())
	}
	pool.Start()

	var readErr, writeErr error
	go func() {
		defer pool.Close()
		index := 0
		for _, in := range inputs {
			if rp.cfg.Verbosity > 1 {
				fmt.Fprintf(rp.cfg.LogFile, "Reading %s\n", in.name)
			}
			sr := notation.NewScriptReader(in.r, in.name)
			for {
				s, ok := sr.Next()
				if !ok || !pool.Submit(worker.WorkItem{Script: s, Index: index}) {
					break
				}
				index++
			}
			if err := sr.Err(); err != nil && readErr == nil {
				readErr = errors.Wrapf(err, "reading %s", in.name)
			}
		}
	}()

	// Workers finish out of order; hold results until their turn.
	pending := make(map[int]worker.ProcessResult)
	next := 0
	for res := range pool.Results() {
		pending[res.Index] = res
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if pool.Stopped() {
				continue
			}
			if err := rp.handle(r); err != nil {
				pool.Stop()
				writeErr = err
				continue
			}
			if limit := rp.cfg.Filter.MaxMatches; limit > 0 && uint(rp.counts.reported) >= limit {
				pool.Stop()
			}
		}
	}

	if err := rp.writer.Close(); err != nil && writeErr == nil {
		writeErr = err
	}
	if rp.dupWriter != nil {
		if err := rp.dupWriter.Close(); err != nil && writeErr == nil {
			writeErr = err
		}
	}
	if writeErr != nil {
		return writeErr
	}
	return readErr
}

// process runs on the pool workers. A game that failed to replay is never
// a duplicate and is not remembered as an original.
func (rp *replayer) process(item worker.WorkItem) worker.ProcessResult {
	res := worker.Replay(item)
	res.Matched = rp.matches(res)
	if res.Matched && res.Error == nil && rp.detector != nil {
		res.OutputToDup = rp.detector.CheckAndAdd(res.Signature)
	}
	res.ShouldOutput = res.Matched && rp.shouldOutput(res.OutputToDup)
	return res
}

// matches applies the game filters.
func (rp *replayer) matches(res worker.ProcessResult) bool {
	f := rp.cfg.Filter
	if res.Error != nil && !f.KeepBrokenGames {
		return false
	}
	if rp.tags != nil && !rp.tags.Match(res.Script.Tags) {
		return false
	}
	if !f.MatchesLength(res.Plies) {
		return false
	}
	return f.MatchesEnding(
		res.Status == engine.Checkmate,
		res.Status == engine.Stalemate,
		res.Status.IsDraw(),
	)
}

// shouldOutput decides whether a matched game goes to the main output.
func (rp *replayer) shouldOutput(duplicate bool) bool {
	dup := rp.cfg.Duplicate
	if duplicate {
		return dup.SuppressOriginals || !dup.Suppress
	}
	return !dup.SuppressOriginals
}

// handle writes and archives one result. It runs on a single goroutine.
func (rp *replayer) handle(res worker.ProcessResult) error {
	rp.counts.total++
	if res.Error != nil {
		rp.counts.broken++
		if rp.cfg.Verbosity > 1 {
			fmt.Fprintf(rp.cfg.LogFile, "%v\n", res.Error)
		}
	}
	if !res.Matched {
		return nil
	}

	if res.OutputToDup {
		rp.counts.duplicates++
		if rp.dupWriter != nil {
			if err := rp.dupWriter.WriteGame(res); err != nil {
				return err
			}
		}
	}
	if !res.ShouldOutput {
		return nil
	}

	if err := rp.writer.WriteGame(res); err != nil {
		return err
	}
	rp.counts.reported++

	if rp.archive != nil && res.Error == nil && res.Status.IsOver() {
		rec := storage.RecordFromBoard(res.Board, res.Script.Tags)
		if _, err := rp.archive.Save(&rec); err != nil {
			return err
		}
		rp.counts.archived++
	}
	return nil
}

// report prints the summary to the log.
func (rp *replayer) report(elapsed time.Duration) {
	if rp.cfg.Verbosity == 0 {
		return
	}

	p := message.NewPrinter(language.English)
	c := rp.counts
	if rp.detector != nil {
		p.Fprintf(rp.cfg.LogFile, "%d game(s) output, %d duplicate(s) out of %d", c.reported, c.duplicates, c.total)
	} else {
		p.Fprintf(rp.cfg.LogFile, "%d game(s) matched out of %d", c.reported, c.total)
	}
	if c.broken > 0 {
		p.Fprintf(rp.cfg.LogFile, ", %d with errors", c.broken)
	}
	if rp.archive != nil {
		p.Fprintf(rp.cfg.LogFile, ", %d archived", c.archived)
	}
	p.Fprintf(rp.cfg.LogFile, " (%.3fs)\n", elapsed.Seconds())
}
