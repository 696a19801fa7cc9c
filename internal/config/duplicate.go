package config

import "io"

// DuplicateConfig holds settings for duplicate game detection.
type DuplicateConfig struct {
	// Suppress enables duplicate suppression
	Suppress bool

	// SuppressOriginals reports only games that were seen more than once
	SuppressOriginals bool

	// ExactMatch compares the whole move sequence, not just the final
	// position and length
	ExactMatch bool

	// MaxCapacity bounds the number of remembered games (0 = unlimited)
	MaxCapacity int

	// DuplicateFile receives the duplicates (nil discards them)
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
