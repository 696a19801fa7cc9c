// Package output writes replay reports as text or JSON.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/render"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// SummaryLine returns the one-line report for a replayed game.
func SummaryLine(res worker.ProcessResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "game %d: %d plies, %s, %s", res.Script.Number, res.Plies, res.Status, result(res))
	if res.ResultMismatch() {
		fmt.Fprintf(&sb, " (declared %s)", res.Script.Result)
	}
	if res.Error != nil {
		fmt.Fprintf(&sb, ", error: %v", res.Error)
	}
	return sb.String()
}

func result(res worker.ProcessResult) string {
	if res.Board == nil {
		return "*"
	}
	return engine.Result(res.Board)
}

// OutputGame writes a replayed game in the configured text format.
func OutputGame(res worker.ProcessResult, cfg *config.Config, w io.Writer) {
	switch cfg.Output.Format {
	case config.Moves:
		outputTags(res, w)
		outputMoves(res, cfg, w)
		if res.Error != nil {
			fmt.Fprintf(w, "%% %v\n", res.Error)
		}
	default:
		fmt.Fprintln(w, SummaryLine(res))
	}

	if cfg.Output.ShowBoard && res.Board != nil {
		fmt.Fprint(w, render.Draw(res.Board, render.Options{
			Colour:  cfg.Output.Colour,
			Unicode: cfg.Output.Unicode,
			Flip:    cfg.Output.Flip,
		}))
	}

	if cfg.Output.Format == config.Moves {
		fmt.Fprintln(w)
	}
}

// outputTags writes the predefined tags in their fixed order, then any
// other tags sorted by name. Result and PlyCount reflect the board.
func outputTags(res worker.ProcessResult, w io.Writer) {
	tags := chess.Tags{}
	for k, v := range res.Script.Tags {
		tags[k] = v
	}
	tags.Set(chess.ResultTag, result(res))
	tags.Set(chess.PlyCountTag, fmt.Sprint(res.Plies))

	for name := chess.TagName(0); name < chess.NumberOfTags; name++ {
		if v, ok := tags[name.String()]; ok {
			fmt.Fprintln(w, notation.FormatTag(name.String(), v))
		}
	}

	var extra []string
	for k := range tags {
		if _, ok := chess.StringToTagName[k]; !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		fmt.Fprintln(w, notation.FormatTag(k, tags[k]))
	}
}

// outputMoves writes the moves played with move numbers, wrapped to the
// configured line length, followed by the result.
func outputMoves(res worker.ProcessResult, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))

	if res.Board != nil {
		for i, mv := range strings.Fields(notation.FormatMoves(res.Board.Moves())) {
			if i%2 == 0 {
				ow.Write(fmt.Sprintf("%d.", i/2+1))
			}
			ow.Write(mv)
		}
	}
	ow.Write(result(res))
	ow.NewLine()
}
