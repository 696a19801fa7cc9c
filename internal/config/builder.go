package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithBoardStyle sets how boards are drawn.
func (b *ConfigBuilder) WithBoardStyle(colour, unicode, flip bool) *ConfigBuilder {
	b.cfg.Output.Colour = colour
	b.cfg.Output.Unicode = unicode
	b.cfg.Output.Flip = flip
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithExactDuplicates compares whole move sequences when detecting duplicates.
func (b *ConfigBuilder) WithExactDuplicates(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.ExactMatch = enabled
	return b
}

// WithPlyBounds sets ply bounds for filtering.
func (b *ConfigBuilder) WithPlyBounds(lower, upper uint) *ConfigBuilder {
	b.cfg.Filter.CheckPlyBounds = true
	b.cfg.Filter.MinPlies = lower
	b.cfg.Filter.MaxPlies = upper
	return b
}

// WithCheckmateFilter enables checkmate-only filtering.
func (b *ConfigBuilder) WithCheckmateFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchCheckmate = enabled
	return b
}

// WithAutoQueen controls automatic queen promotion in play.
func (b *ConfigBuilder) WithAutoQueen(enabled bool) *ConfigBuilder {
	b.cfg.Play.AutoQueen = enabled
	return b
}

// WithArchive sets the archive directory.
func (b *ConfigBuilder) WithArchive(dir string) *ConfigBuilder {
	b.cfg.ArchiveDir = dir
	return b
}

// WithWorkers sets the number of replay workers. Values below 1 are ignored.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	if n >= 1 {
		b.cfg.Workers = n
	}
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
