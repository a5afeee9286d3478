package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrRecordCount means the leading record count is missing, invalid, or
	// disagrees with the number of records that follow.
	ErrRecordCount = errors.New("invalid record count")

	// ErrMalformedRecord means a record line lacks its leading fields or free text.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInvalidNumber means a station or duration field is not a non-negative integer.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrStationRange means a station id is outside [1, station count].
	ErrStationRange = errors.New("station out of range")

	// ErrMissingSeparator means the free text has no colon between author and title.
	ErrMissingSeparator = errors.New("missing author:title separator")
)

// ParseError reports a failure on a specific line of the log.
type ParseError struct {
	Source string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
