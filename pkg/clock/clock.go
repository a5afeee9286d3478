// Package clock provides an hour:minute:second value used both as a point
// on a station's schedule and as an elapsed duration.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrUnderflow is returned when a subtraction would produce a negative clock.
var ErrUnderflow = errors.New("clock underflow")

// Clock is an h:m:s value. Minute and Second stay in [0,60) for values built
// through New or FromSeconds; Hour is unbounded and never wraps at 24.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// Zero is the start of every station's schedule.
var Zero = Clock{}

// New builds a canonical clock from possibly overflowing fields.
// Negative totals are clamped to zero.
func New(hour, minute, second int) Clock {
	total := hour*3600 + minute*60 + second
	if total < 0 {
		total = 0
	}
	return FromSeconds(total)
}

// FromSeconds converts a non-negative number of seconds into a Clock.
func FromSeconds(total int) Clock {
	return Clock{
		Hour:   total / 3600,
		Minute: total % 3600 / 60,
		Second: total % 60,
	}
}

// FromDuration converts d into a Clock, truncating to whole seconds.
func FromDuration(d time.Duration) Clock {
	if d < 0 {
		return Zero
	}
	return FromSeconds(int(d / time.Second))
}

// ToSeconds returns the total number of seconds represented by c.
func (c Clock) ToSeconds() int {
	return c.Hour*3600 + c.Minute*60 + c.Second
}

// Duration returns c as a time.Duration.
func (c Clock) Duration() time.Duration {
	return time.Duration(c.ToSeconds()) * time.Second
}

// Add returns c + other.
func (c Clock) Add(other Clock) Clock {
	return FromSeconds(c.ToSeconds() + other.ToSeconds())
}

// Sub returns c - other. It fails with ErrUnderflow when other is later than c.
func (c Clock) Sub(other Clock) (Clock, error) {
	diff := c.ToSeconds() - other.ToSeconds()
	if diff < 0 {
		return Zero, fmt.Errorf("%w: %s - %s", ErrUnderflow, c, other)
	}
	return FromSeconds(diff), nil
}

// Before reports whether c is strictly earlier than other.
func (c Clock) Before(other Clock) bool {
	return c.ToSeconds() < other.ToSeconds()
}

// String renders c as unpadded colon-joined fields, e.g. "2:3:30".
func (c Clock) String() string {
	return fmt.Sprintf("%d:%d:%d", c.Hour, c.Minute, c.Second)
}

// Parse reads a clock written as "h:m:s" or "m:s".
func Parse(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Zero, fmt.Errorf("invalid clock %q", s)
	}

	fields := make([]int, 3)
	offset := 3 - len(parts)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Zero, fmt.Errorf("invalid clock %q: field %q", s, p)
		}
		fields[offset+i] = n
	}

	return New(fields[0], fields[1], fields[2]), nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Clock) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
