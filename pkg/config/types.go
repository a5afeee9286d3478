// Package config provides configuration loading and validation for onair.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Input is the broadcast log to analyze.
	Input string `yaml:"input" validate:"required"`

	// HitsFile receives the search term and matching broadcasts.
	HitsFile string `yaml:"hits_file" validate:"required"`

	// StationCount is the number of valid station ids.
	StationCount int `yaml:"station_count" validate:"gte=1,lte=255"`

	Span      SpanConfig      `yaml:"span"`
	Neighbors NeighborsConfig `yaml:"neighbors"`
	Adjusted  AdjustedConfig  `yaml:"adjusted"`
	Log       LogConfig       `yaml:"log"`
}

// SpanConfig selects the artist whose airtime span is measured.
type SpanConfig struct {
	Station int    `yaml:"station" validate:"gte=1"`
	Author  string `yaml:"author" validate:"required"`
}

// NeighborsConfig selects the broadcast whose concurrent broadcasts are listed.
type NeighborsConfig struct {
	Author string `yaml:"author" validate:"required"`
	Title  string `yaml:"title" validate:"required"`
}

// AdjustedConfig controls the padded schedule computation.
type AdjustedConfig struct {
	Station int `yaml:"station" validate:"gte=1"`

	// Padding is added to every broadcast's duration.
	Padding time.Duration `yaml:"padding" validate:"gte=0"`

	// BreakOffset is where the schedule snaps to within a new hour.
	BreakOffset time.Duration `yaml:"break_offset" validate:"gte=0,lt=1h"`
}

// LogConfig controls diagnostic logging. Reports are never written to the log.
type LogConfig struct {
	// Level is a zap level name (debug, info, warn, error).
	Level string `yaml:"level" validate:"oneof=debug info warn error"`

	// File, when set, also writes JSON logs to a rotating file.
	File string `yaml:"file,omitempty"`

	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int `yaml:"max_size_mb,omitempty" validate:"gte=0"`

	// MaxBackups is the number of rotated files kept.
	MaxBackups int `yaml:"max_backups,omitempty" validate:"gte=0"`
}
