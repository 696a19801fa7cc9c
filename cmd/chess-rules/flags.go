// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output replayed games as JSON lines")
	movesFormat  = flag.Bool("moves", false, "Report replayed games as tags and moves instead of a summary line")
	lineLength   = flag.Int("w", 80, "Maximum line length")
	showBoard    = flag.Bool("board", false, "Print the final position of each replayed game")

	// Board drawing
	noColour = flag.Bool("nocolour", false, "Draw boards without terminal colours")
	unicode  = flag.Bool("unicode", false, "Draw pieces as Unicode figurines")
	flip     = flag.Bool("flip", false, "Draw boards from Black's side")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate games")
	duplicateFile      = flag.String("d", "", "Output duplicates to this file")
	outputDupsOnly     = flag.Bool("U", false, "Output only duplicates (suppress unique games)")
	exactDuplicates    = flag.Bool("exact", false, "Duplicates must share the whole move sequence, not just the final position")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Tag filters
	tagFile      = flag.String("t", "", "Tag criteria file for filtering")
	playerFilter = flag.String("p", "", "Filter by player name (either color)")
	whiteFilter  = flag.String("Tw", "", "Filter by White player")
	blackFilter  = flag.String("Tb", "", "Filter by Black player")
	resultFilter = flag.String("Tr", "", "Filter by declared result (1-0, 0-1, 1/2-1/2)")
	useSoundex   = flag.Bool("S", false, "Use Soundex for player name matching")
	tagSubstring = flag.Bool("tagsubstr", false, "Match tag values anywhere (substring)")

	// Filtering options
	minPly          = flag.Int("minply", 0, "Minimum ply count")
	maxPly          = flag.Int("maxply", 0, "Maximum ply count (0 = no limit)")
	checkmateFilter = flag.Bool("checkmate", false, "Only report games ending in checkmate")
	stalemateFilter = flag.Bool("stalemate", false, "Only report games ending in stalemate")
	drawFilter      = flag.Bool("draw", false, "Only report drawn games")
	strictMode      = flag.Bool("strict", false, "Only report games whose every move is legal")
	stopAfter       = flag.Int("stopafter", 0, "Stop after reporting N games")

	// Interactive play
	choosePromotion = flag.Bool("choose-promotion", false, "Ask which piece to promote to instead of making a queen")
	keepPlaying     = flag.Bool("continue", false, "Start a new game after mate or a draw")

	// Perft
	perftDepth  = flag.Int("depth", 3, "Perft search depth")
	perftDivide = flag.Bool("divide", false, "Print perft node counts per root move")

	// Archive
	archiveDir     = flag.String("archive", "", "Archive directory for finished games")
	defaultArchive = flag.Bool("archive-default", false, "Use the archive in the user data directory")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	verbose = flag.Bool("v", false, "Running commentary on stderr")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of replay workers (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyPlyBoundsFlags(cfg)
	applyFilterFlags(cfg)
	applyDuplicateFlags(cfg)
	applyPlayFlags(cfg)

	cfg.Workers = *workers
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	cfg.ArchiveDir = *archiveDir

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyOutputFlags configures output and board drawing settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.MaxLineLength = uint(*lineLength)
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.Colour = !*noColour
	cfg.Output.Unicode = *unicode
	cfg.Output.Flip = *flip
	if *movesFormat {
		cfg.Output.Format = config.Moves
	}
}

// applyPlyBoundsFlags configures ply bounds.
func applyPlyBoundsFlags(cfg *config.Config) {
	if *minPly <= 0 && *maxPly <= 0 {
		return
	}

	cfg.Filter.CheckPlyBounds = true
	cfg.Filter.MinPlies = uint(max(*minPly, 0))
	cfg.Filter.MaxPlies = ^uint(0) >> 1
	if *maxPly > 0 {
		cfg.Filter.MaxPlies = uint(*maxPly)
	}
}

// applyFilterFlags configures game filter settings.
func applyFilterFlags(cfg *config.Config) {
	cfg.Filter.MatchCheckmate = *checkmateFilter
	cfg.Filter.MatchStalemate = *stalemateFilter
	cfg.Filter.MatchDraw = *drawFilter
	cfg.Filter.KeepBrokenGames = !*strictMode
	if *stopAfter > 0 {
		cfg.Filter.MaxMatches = uint(*stopAfter)
	}
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.SuppressOriginals = *outputDupsOnly
	cfg.Duplicate.ExactMatch = *exactDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}

// applyPlayFlags configures interactive play.
func applyPlayFlags(cfg *config.Config) {
	cfg.Play.AutoQueen = !*choosePromotion
	cfg.Play.StopAtGameEnd = !*keepPlaying
}
