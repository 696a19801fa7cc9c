// play.go - Interactive game at the terminal
package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/render"
	"github.com/lgbarn/chess-rules-go/internal/storage"
)

// playSession reads moves from in and prints the board after each one.
type playSession struct {
	cfg     *config.Config
	g       *game.Game
	in      *bufio.Scanner
	out     io.Writer
	archive *storage.Archive
}

// runPlay runs an interactive game until the input ends, "quit" is entered
// or the game finishes.
func runPlay(cfg *config.Config, in io.Reader) error {
	archive, err := openArchive(cfg)
	if err != nil {
		return err
	}
	if archive != nil {
		defer archive.Close()
	}

	s := &playSession{
		cfg:     cfg,
		g:       game.New(),
		in:      bufio.NewScanner(in),
		out:     cfg.OutputFile,
		archive: archive,
	}
	return s.run()
}

func (s *playSession) run() error {
	s.showPosition()

	for s.prompt() {
		line := strings.TrimSpace(s.in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help", "?":
			s.printHelp()
			continue
		case "board":
			s.showPosition()
			continue
		case "moves":
			s.listMoves()
			continue
		case "history":
			s.printHistory()
			continue
		}

		if err := s.playMove(line); err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			continue
		}
		s.showPosition()

		if !s.g.Status().IsOver() {
			continue
		}
		if err := s.finish(); err != nil {
			return err
		}
		if s.cfg.Play.StopAtGameEnd {
			return nil
		}
		fmt.Fprintln(s.out, "New game.")
		s.g.Reset()
		s.showPosition()
	}
	return s.in.Err()
}

func (s *playSession) prompt() bool {
	fmt.Fprintf(s.out, "%s> ", s.g.ToMove())
	return s.in.Scan()
}

// playMove applies one move typed by the player.
func (s *playSession) playMove(text string) error {
	m, err := notation.ParseMove(text)
	if err != nil {
		return err
	}

	var opts []engine.MoveOption
	switch {
	case m.Promotion != chess.NoKind:
		opts = append(opts, engine.WithPromotion(m.Promotion))
	case !s.cfg.Play.AutoQueen:
		opts = append(opts, engine.WithDeferredPromotion())
	}

	if _, err := s.g.ApplyMove(m.From, m.To, opts...); err != nil {
		return err
	}
	if sq := s.g.PendingPromotion(); sq != chess.NoSquare {
		return s.choosePromotion(sq)
	}
	return nil
}

// choosePromotion asks until the player names a piece the pawn may become.
// A queen is taken if the input ends first.
func (s *playSession) choosePromotion(sq chess.Square) error {
	for {
		fmt.Fprintf(s.out, "Promote on %s to (q, r, b, n): ", sq)
		if !s.in.Scan() {
			return s.g.Promote(sq, chess.Queen)
		}

		text := strings.ToLower(strings.TrimSpace(s.in.Text()))
		if len(text) == 1 {
			if err := s.g.Promote(sq, chess.KindFromLetter(text[0])); err == nil {
				return nil
			}
		}
		fmt.Fprintln(s.out, "Choose q, r, b or n.")
	}
}

func (s *playSession) showPosition() {
	b := s.g.Board()
	fmt.Fprint(s.out, render.Draw(b, render.Options{
		Colour:  s.cfg.Output.Colour,
		Unicode: s.cfg.Output.Unicode,
		Flip:    s.cfg.Output.Flip,
	}))
	fmt.Fprintln(s.out, render.StatusLine(b, s.cfg.Output.Colour))
}

func (s *playSession) listMoves() {
	moves := s.g.LegalMoves()
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	sort.Strings(names)

	ow := output.NewOutputWriter(s.out, int(s.cfg.Output.MaxLineLength))
	for _, name := range names {
		ow.Write(name)
	}
	ow.NewLine()
}

func (s *playSession) printHistory() {
	ow := output.NewOutputWriter(s.out, int(s.cfg.Output.MaxLineLength))
	for _, tok := range strings.Fields(notation.FormatMoves(s.g.Moves())) {
		ow.Write(tok)
	}
	ow.NewLine()
}

func (s *playSession) printHelp() {
	fmt.Fprintln(s.out, "Enter moves as from and to squares: e2e4, e1g1 to castle, e7e8n to underpromote.")
	fmt.Fprintln(s.out, "  board    show the position")
	fmt.Fprintln(s.out, "  moves    list legal moves")
	fmt.Fprintln(s.out, "  history  list the moves played")
	fmt.Fprintln(s.out, "  quit     leave")
}

// finish reports the result and archives the game.
func (s *playSession) finish() error {
	fmt.Fprintf(s.out, "Game over: %s %s\n", s.g.Status(), s.g.Result())
	if s.archive == nil {
		return nil
	}

	tags := chess.Tags{}
	tags.Set(chess.EventTag, "Casual game")
	tags.Set(chess.SiteTag, "chess-rules play")
	tags.Set(chess.DateTag, time.Now().Format("2006.01.02"))
	tags.Set(chess.TerminationTag, s.g.Status().String())

	rec := storage.RecordFromBoard(s.g.Board(), tags)
	id, err := s.archive.Save(&rec)
	if err != nil {
		return err
	}
	if s.cfg.Verbosity > 0 {
		fmt.Fprintf(s.cfg.LogFile, "Saved game %s\n", id)
	}
	return nil
}
