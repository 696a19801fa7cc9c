// Package render draws boards for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Options controls how a board is drawn.
type Options struct {
	// Colour shades the squares and highlights the last move. A king in
	// check is marked in either mode.
	Colour bool
	// Unicode draws figurines instead of letters.
	Unicode bool
	// Flip draws the board from Black's side.
	Flip bool
}

var figurines = map[chess.Piece]string{
	chess.W(chess.Pawn):   "♙",
	chess.W(chess.Knight): "♘",
	chess.W(chess.Bishop): "♗",
	chess.W(chess.Rook):   "♖",
	chess.W(chess.Queen):  "♕",
	chess.W(chess.King):   "♔",
	chess.B(chess.Pawn):   "♟",
	chess.B(chess.Knight): "♞",
	chess.B(chess.Bishop): "♝",
	chess.B(chess.Rook):   "♜",
	chess.B(chess.Queen):  "♛",
	chess.B(chess.King):   "♚",
}

// Symbol returns the character drawn for p.
func Symbol(p chess.Piece, unicode bool) string {
	if p.IsEmpty() {
		return " "
	}
	if unicode {
		return figurines[p]
	}
	return string(p.Letter())
}

type palette struct {
	light, dark, lastMove, check, label *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		light:    color.New(color.FgBlack, color.BgHiWhite),
		dark:     color.New(color.FgBlack, color.BgGreen),
		lastMove: color.New(color.FgBlack, color.BgYellow),
		check:    color.New(color.FgWhite, color.BgRed),
		label:    color.New(color.Bold),
	}
	if !enabled {
		p.light.DisableColor()
		p.dark.DisableColor()
		p.lastMove.DisableColor()
		p.check.DisableColor()
		p.label.DisableColor()
	}
	return p
}

// Draw returns the board as text, rank 8 at the top unless opts.Flip is set.
// With colour off the board is drawn as a ruled grid.
func Draw(v chess.View, opts Options) string {
	if !opts.Colour {
		return drawPlain(v, opts)
	}

	pal := newPalette(true)
	last, hasLast := v.LastMove()

	var sb strings.Builder
	for _, rank := range ranks(opts.Flip) {
		sb.WriteString(pal.label.Sprintf(" %d ", rank+1))
		for _, file := range files(opts.Flip) {
			sq := chess.Sq(file, rank)
			cell := pal.dark
			if sq.IsLight() {
				cell = pal.light
			}
			switch {
			case kingInCheck(v, sq):
				cell = pal.check
			case hasLast && (sq == last.From || sq == last.To):
				cell = pal.lastMove
			}
			sb.WriteString(cell.Sprintf(" %s ", Symbol(v.At(sq), opts.Unicode)))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for _, file := range files(opts.Flip) {
		sb.WriteString(pal.label.Sprintf(" %c ", 'a'+file))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func drawPlain(v chess.View, opts Options) string {
	const rule = "   +---+---+---+---+---+---+---+---+\n"

	var sb strings.Builder
	for _, rank := range ranks(opts.Flip) {
		sb.WriteString(rule)
		fmt.Fprintf(&sb, " %d |", rank+1)
		for _, file := range files(opts.Flip) {
			sq := chess.Sq(file, rank)
			mark := ' '
			if kingInCheck(v, sq) {
				mark = '*'
			}
			fmt.Fprintf(&sb, "%c%s |", mark, Symbol(v.At(sq), opts.Unicode))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(rule)
	sb.WriteString("   ")
	for _, file := range files(opts.Flip) {
		fmt.Fprintf(&sb, "  %c ", 'a'+file)
	}
	sb.WriteByte('\n')
	return sb.String()
}

// kingInCheck reports whether sq holds a king the other side attacks.
func kingInCheck(v chess.View, sq chess.Square) bool {
	p := v.At(sq)
	return p.Kind == chess.King && engine.IsSquareAttacked(v, sq, p.Colour.Opposite())
}

func ranks(flip bool) []int {
	r := []int{7, 6, 5, 4, 3, 2, 1, 0}
	if flip {
		r = []int{0, 1, 2, 3, 4, 5, 6, 7}
	}
	return r
}

func files(flip bool) []int {
	f := []int{0, 1, 2, 3, 4, 5, 6, 7}
	if flip {
		f = []int{7, 6, 5, 4, 3, 2, 1, 0}
	}
	return f
}

// StatusLine summarises the position: side to move and the game status, or
// the result once the game is over.
func StatusLine(b *chess.Board, useColour bool) string {
	status := engine.GetStatus(b)

	c := color.New(color.FgCyan)
	switch {
	case status == engine.Check:
		c = color.New(color.FgYellow, color.Bold)
	case status.IsOver():
		c = color.New(color.FgRed, color.Bold)
	}
	if !useColour {
		c.DisableColor()
	}

	if status.IsOver() {
		return c.Sprintf("%s (%s)", status, engine.Result(b))
	}
	return c.Sprintf("%s to move, %s", b.ToMove, status)
}
