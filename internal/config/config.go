// Package config provides configuration for the chess-rules command.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Workers is the number of games replayed in parallel.
	Workers int

	Output    *OutputConfig
	Filter    *FilterConfig
	Duplicate *DuplicateConfig
	Play      *PlayConfig

	// ArchiveDir is the badger directory finished games are saved to.
	// Empty disables archiving.
	ArchiveDir string

	// File handling
	OutputFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    1,
		Output:     NewOutputConfig(),
		Filter:     NewFilterConfig(),
		Duplicate:  NewDuplicateConfig(),
		Play:       NewPlayConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer results are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer diagnostics are printed to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the settings for contradictions.
func (c *Config) Validate() error {
	return c.Filter.Validate()
}

// Archiving reports whether finished games should be saved.
func (c *Config) Archiving() bool {
	return c.ArchiveDir != ""
}
