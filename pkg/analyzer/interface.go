package analyzer

import (
	"context"

	"github.com/ccollicutt/onair/pkg/schedule"
)

// Query is one independent pass over a schedule.
// Implementations must not modify the schedule.
type Query interface {
	// Type returns the query type for reporting.
	Type() QueryType

	// Run computes the query's result.
	Run(ctx context.Context, sched *schedule.Schedule) (*Result, error)
}

// TermSource supplies the search term. It is only consulted when the search
// query runs, so interactive sources block at that point and no earlier.
type TermSource interface {
	Term(ctx context.Context) (string, error)
}

// TermFunc adapts a function to TermSource.
type TermFunc func(ctx context.Context) (string, error)

// Term calls f.
func (f TermFunc) Term(ctx context.Context) (string, error) {
	return f(ctx)
}

// StaticTerm is a TermSource that always returns the same term.
type StaticTerm string

// Term returns the term.
func (s StaticTerm) Term(context.Context) (string, error) {
	return string(s), nil
}

// HitSink persists search results.
type HitSink interface {
	// WriteHits stores the term and every hit, replacing earlier content.
	// It must be durable when it returns.
	WriteHits(ctx context.Context, term string, hits []schedule.Broadcast) error

	// Destination names where hits are written.
	Destination() string
}
