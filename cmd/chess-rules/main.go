// chess-rules plays, replays and checks chess games under the full rules of
// chess.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/matching"
	"github.com/lgbarn/chess-rules-go/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)
	setupArchiveDir(cfg)

	tagMatcher := setupTagMatcher()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch command, rest := args[0], args[1:]; command {
	case "play":
		err = runPlay(cfg, os.Stdin)
	case "replay":
		err = runReplay(cfg, tagMatcher, rest)
	case "perft":
		err = runPerft(cfg, *perftDepth, *perftDivide)
	case "stats":
		err = runStats(cfg)
	case "list":
		err = runList(cfg, tagMatcher)
	case "show":
		err = runShow(cfg, rest)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", command)
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
	cfg.OutputFilename = *outputFile

	// Board colours are terminal escapes.
	cfg.Output.Colour = false
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// setupArchiveDir resolves -archive-default to the per-user data directory.
func setupArchiveDir(cfg *config.Config) {
	if !*defaultArchive || cfg.ArchiveDir != "" {
		return
	}

	dir, err := storage.DefaultArchiveDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating archive directory: %v\n", err)
		os.Exit(1)
	}
	cfg.ArchiveDir = dir
}

// setupTagMatcher builds the tag filter from the command-line criteria.
func setupTagMatcher() *matching.TagMatcher {
	tm := matching.NewTagMatcher()
	tm.SetUseSoundex(*useSoundex)
	tm.SetSubstringMatch(*tagSubstring)

	if *tagFile != "" {
		file, err := os.Open(*tagFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening tag file %s: %v\n", *tagFile, err)
			os.Exit(1)
		}
		err = tm.Load(file)
		file.Close() //nolint:errcheck,gosec // read-only
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading tag file %s: %v\n", *tagFile, err)
			os.Exit(1)
		}
	}

	var err error
	if *playerFilter != "" {
		err = tm.AddPlayerCriterion(*playerFilter)
	}
	if *whiteFilter != "" && err == nil {
		err = addNameCriterion(tm, "White", *whiteFilter)
	}
	if *blackFilter != "" && err == nil {
		err = addNameCriterion(tm, "Black", *blackFilter)
	}
	if *resultFilter != "" && err == nil {
		err = tm.AddCriterion("Result", *resultFilter, matching.OpEqual)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	return tm
}

// addNameCriterion matches one player's name as a substring or by soundex.
func addNameCriterion(tm *matching.TagMatcher, tag, name string) error {
	op := matching.OpContains
	if *useSoundex {
		op = matching.OpSoundex
	}
	return tm.AddCriterion(tag, name, op)
}

// openArchive opens the configured archive, or returns nil when archiving
// is off.
func openArchive(cfg *config.Config) (*storage.Archive, error) {
	if !cfg.Archiving() {
		return nil, nil
	}
	return storage.Open(cfg.ArchiveDir)
}

// requireArchive opens the archive for commands that only read it.
func requireArchive(cfg *config.Config) (*storage.Archive, error) {
	if !cfg.Archiving() {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "no archive given (use -archive or -archive-default)")
	}
	return storage.Open(cfg.ArchiveDir)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] command [args...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays and checks chess games under the full rules of chess.\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  play            Play a game at the terminal, moves as e2e4 or e7e8n\n")
	fmt.Fprintf(os.Stderr, "  replay [files]  Replay move files (stdin if none) and report each game\n")
	fmt.Fprintf(os.Stderr, "  perft           Count leaf nodes of the move tree from the start position\n")
	fmt.Fprintf(os.Stderr, "  stats           Summarise the archive\n")
	fmt.Fprintf(os.Stderr, "  list            List archived games\n")
	fmt.Fprintf(os.Stderr, "  show id         Print an archived game\n")
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
}
