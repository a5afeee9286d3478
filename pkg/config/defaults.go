package config

import (
	"os"
	"time"
)

// Default values for configuration.
const (
	DefaultInput        = "musor.txt"
	DefaultHitsFile     = "keres.txt"
	DefaultStationCount = 3
	DefaultSpanStation  = 1
	DefaultSpanAuthor   = "Eric Clapton"
	DefaultTargetAuthor = "Omega"
	DefaultTargetTitle  = "Legenda"
	DefaultPadding      = time.Minute
	DefaultBreakOffset  = 3 * time.Minute
	DefaultLogLevel     = "warn"
	DefaultLogMaxSizeMB = 10
	DefaultLogBackups   = 3
)

// Environment variable names.
const (
	EnvInput    = "ONAIR_INPUT"
	EnvHitsFile = "ONAIR_HITS_FILE"
	EnvLogLevel = "ONAIR_LOG_LEVEL"
)

// DefaultConfig returns the configuration of the standard broadcast puzzle.
func DefaultConfig() *Config {
	return &Config{
		Input:        DefaultInput,
		HitsFile:     DefaultHitsFile,
		StationCount: DefaultStationCount,
		Span: SpanConfig{
			Station: DefaultSpanStation,
			Author:  DefaultSpanAuthor,
		},
		Neighbors: NeighborsConfig{
			Author: DefaultTargetAuthor,
			Title:  DefaultTargetTitle,
		},
		Adjusted: AdjustedConfig{
			Station:     1,
			Padding:     DefaultPadding,
			BreakOffset: DefaultBreakOffset,
		},
		Log: LogConfig{
			Level:      DefaultLogLevel,
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogBackups,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv(EnvInput); v != "" {
		c.Input = v
	}
	if v := os.Getenv(EnvHitsFile); v != "" {
		c.HitsFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}
