package worker

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Replay plays a script's moves from the standard starting position. The
// first move that fails ends the replay and is reported in Error; the board
// keeps the moves before it. A parse error in the script is reported once
// the moves read before it have been played.
func Replay(item WorkItem) ProcessResult {
	s := item.Script
	g := game.New()
	res := ProcessResult{Script: s, Index: item.Index}

	for i, m := range s.Moves {
		var opts []engine.MoveOption
		if m.Promotion != chess.NoKind {
			opts = append(opts, engine.WithPromotion(m.Promotion))
		}
		if _, err := g.ApplyMove(m.From, m.To, opts...); err != nil {
			res.Error = &errors.GameError{
				Err:      err,
				GameNum:  s.Number,
				PlyNum:   i + 1,
				MoveText: m.String(),
			}
			break
		}
	}
	if res.Error == nil {
		res.Error = s.Err
	}

	res.Board = g.Board()
	res.Status = engine.GetStatus(res.Board)
	res.Signature = hashing.Signature(res.Board)
	res.Plies = res.Board.PlayerMoves
	return res
}

// ResultMismatch reports whether the script declared a result other than
// the one reached on the board. An unfinished declaration ("*" or none)
// never mismatches.
func (r ProcessResult) ResultMismatch() bool {
	if r.Board == nil || r.Script.Result == "" || r.Script.Result == "*" {
		return false
	}
	return r.Script.Result != engine.Result(r.Board)
}
