package schedule

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/ccollicutt/onair/pkg/clock"
)

// Parser reads broadcast logs.
type Parser struct {
	stationCount int
	source       string
	logger       *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithStationCount sets the number of valid station ids (default 3).
func WithStationCount(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.stationCount = n
		}
	}
}

// WithSource names the log in error messages.
func WithSource(name string) Option {
	return func(p *Parser) {
		p.source = name
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewParser creates a Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		stationCount: DefaultStationCount,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads a broadcast log from r.
func Parse(ctx context.Context, r io.Reader, opts ...Option) (*Schedule, error) {
	return NewParser(opts...).Parse(ctx, r)
}

// ParseFile reads the broadcast log stored at path.
func ParseFile(ctx context.Context, path string, opts ...Option) (*Schedule, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening broadcast log %s: %w", path, err)
	}
	defer f.Close()

	opts = append([]Option{WithSource(path)}, opts...)
	return NewParser(opts...).Parse(ctx, f)
}

// Parse reads the record count line followed by that many records and
// reconstructs each record's start time. Any malformed line aborts the parse.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (*Schedule, error) {
	lines := newLineReader(r)

	sched := &Schedule{
		StationCount: p.stationCount,
		Source:       p.source,
	}

	countLine, ok, err := lines.next(ctx)
	if err != nil {
		return nil, p.readError(err)
	}
	if !ok {
		return nil, p.lineError(1, fmt.Errorf("%w: empty log", ErrRecordCount))
	}

	declared, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil || declared < 0 {
		return nil, p.lineError(lines.lineNum, fmt.Errorf("%w: %q", ErrRecordCount, countLine))
	}
	sched.Declared = declared
	sched.Broadcasts = make([]Broadcast, 0, declared)

	// Next start time per station, indexed by station-1.
	next := make([]clock.Clock, p.stationCount)

	for {
		text, ok, err := lines.next(ctx)
		if err != nil {
			return nil, p.readError(err)
		}
		if !ok {
			break
		}

		if len(sched.Broadcasts) == declared {
			return nil, p.lineError(lines.lineNum,
				fmt.Errorf("%w: declared %d records, found more", ErrRecordCount, declared))
		}

		rec, err := parseRecord(text, p.stationCount)
		if err != nil {
			return nil, p.lineError(lines.lineNum, err)
		}

		idx := rec.station - 1
		sched.Broadcasts = append(sched.Broadcasts, Broadcast{
			Station:  rec.station,
			Start:    next[idx],
			Duration: rec.duration,
			Author:   rec.author,
			Title:    rec.title,
			Line:     lines.lineNum,
		})
		next[idx] = next[idx].Add(rec.duration)
	}

	if len(sched.Broadcasts) != declared {
		return nil, p.lineError(lines.lineNum,
			fmt.Errorf("%w: declared %d records, found %d", ErrRecordCount, declared, len(sched.Broadcasts)))
	}

	p.logger.Debug("parsed broadcast log",
		zap.String("source", p.source),
		zap.Int("records", len(sched.Broadcasts)),
		zap.Int("stations", p.stationCount))

	return sched, nil
}

func (p *Parser) lineError(line int, err error) error {
	return &ParseError{Source: p.source, Line: line, Err: err}
}

func (p *Parser) readError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	name := p.source
	if name == "" {
		name = "broadcast log"
	}
	return fmt.Errorf("reading %s: %w", name, err)
}

type record struct {
	station  int
	duration clock.Clock
	author   string
	title    string
}

// parseRecord splits "<station> <minutes> <seconds> <author>:<title>".
// The first three whitespace-delimited tokens are numeric; the remainder is
// free text split at its first colon.
func parseRecord(line string, stationCount int) (record, error) {
	var fields [3]string
	rest := line
	for i := range fields {
		tok, remaining := nextToken(rest)
		if tok == "" {
			return record{}, fmt.Errorf("%w: expected station, minutes and seconds before the title", ErrMalformedRecord)
		}
		fields[i] = tok
		rest = remaining
	}

	text := strings.TrimLeftFunc(rest, unicode.IsSpace)
	if text == "" {
		return record{}, fmt.Errorf("%w: missing author and title", ErrMalformedRecord)
	}

	author, title, found := strings.Cut(text, ":")
	if !found {
		return record{}, fmt.Errorf("%w in %q", ErrMissingSeparator, text)
	}

	station, err := parseNonNegative("station", fields[0])
	if err != nil {
		return record{}, err
	}
	if station < 1 || station > stationCount {
		return record{}, fmt.Errorf("%w: %d (expected 1..%d)", ErrStationRange, station, stationCount)
	}

	minutes, err := parseNonNegative("minutes", fields[1])
	if err != nil {
		return record{}, err
	}
	seconds, err := parseNonNegative("seconds", fields[2])
	if err != nil {
		return record{}, err
	}

	return record{
		station:  station,
		duration: clock.New(0, minutes, seconds),
		author:   author,
		title:    strings.TrimSpace(title),
	}, nil
}

// nextToken returns the first whitespace-delimited token of s and whatever
// follows it.
func nextToken(s string) (string, string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}

func parseNonNegative(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidNumber, field, s)
	}
	return n, nil
}

// lineReader yields non-blank lines with their 1-based line numbers.
type lineReader struct {
	scanner *bufio.Scanner
	lineNum int
}

func newLineReader(r io.Reader) *lineReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	return &lineReader{scanner: s}
}

func (lr *lineReader) next(ctx context.Context) (string, bool, error) {
	for {
		select {
		case <-ctx.Done():
			return "", false, ctx.Err()
		default:
		}

		if !lr.scanner.Scan() {
			return "", false, lr.scanner.Err()
		}
		lr.lineNum++

		line := strings.TrimRight(lr.scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		return line, true, nil
	}
}
