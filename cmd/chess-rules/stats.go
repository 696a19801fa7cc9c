// stats.go - Reading the game archive
package main

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/matching"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// runStats prints the archive totals.
func runStats(cfg *config.Config) error {
	archive, err := requireArchive(cfg)
	if err != nil {
		return err
	}
	defer archive.Close()

	s, err := archive.Stats()
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	w := cfg.OutputFile
	p.Fprintf(w, "Games:         %d\n", s.Games)
	if s.Games == 0 {
		return nil
	}
	p.Fprintf(w, "White wins:    %d\n", s.WhiteWins)
	p.Fprintf(w, "Black wins:    %d\n", s.BlackWins)
	p.Fprintf(w, "Draws:         %d (%.1f%%)\n", s.Draws, s.DrawRate())
	p.Fprintf(w, "Unfinished:    %d\n", s.Unfinished)
	p.Fprintf(w, "White score:   %.1f%%\n", s.WhiteScore())
	p.Fprintf(w, "Average plies: %.1f\n", s.AveragePlies())
	p.Fprintf(w, "Longest game:  %d plies\n", s.LongestGame)

	for _, status := range sortedKeys(s.ByStatus) {
		p.Fprintf(w, "  %-30s %d\n", status, s.ByStatus[status])
	}
	return nil
}

// runList prints one line per archived game whose tags satisfy tm, which
// may be nil.
func runList(cfg *config.Config, tm *matching.TagMatcher) error {
	archive, err := requireArchive(cfg)
	if err != nil {
		return err
	}
	defer archive.Close()

	records, err := archive.List()
	if err != nil {
		return err
	}
	for _, rec := range records {
		if tm != nil && !tm.Match(rec.Tags) {
			continue
		}
		players := ""
		if white, black := rec.Tags.Get(chess.WhiteTag), rec.Tags.Get(chess.BlackTag); white != "" || black != "" {
			players = "  " + white + " - " + black
		}
		fmt.Fprintf(cfg.OutputFile, "%s  %s  %3d plies  %-7s  %s%s\n",
			rec.ID, rec.Recorded.Local().Format("2006-01-02"), rec.Plies, rec.Result, rec.Status, players)
	}
	return nil
}

// runShow prints an archived game as tags and moves.
func runShow(cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return errors.Wrap(errors.ErrInvalidConfig, "show needs one game id")
	}

	archive, err := requireArchive(cfg)
	if err != nil {
		return err
	}
	defer archive.Close()

	rec, err := archive.Get(args[0])
	if err != nil {
		return err
	}

	for tag := chess.TagName(0); tag < chess.NumberOfTags; tag++ {
		if v, ok := rec.Tags[tag.String()]; ok {
			fmt.Fprintln(cfg.OutputFile, notation.FormatTag(tag.String(), v))
		}
	}
	for _, name := range sortedKeys(rec.Tags) {
		if _, known := chess.StringToTagName[name]; !known {
			fmt.Fprintln(cfg.OutputFile, notation.FormatTag(name, rec.Tags[name]))
		}
	}
	fmt.Fprintln(cfg.OutputFile)

	ow := output.NewOutputWriter(cfg.OutputFile, int(cfg.Output.MaxLineLength))
	for i, m := range rec.Moves {
		if i%2 == 0 {
			ow.Write(fmt.Sprintf("%d.", i/2+1))
		}
		ow.Write(m)
	}
	ow.Write(rec.Result)
	ow.NewLine()
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
