package analyzer

import (
	"context"
	"fmt"

	"github.com/ccollicutt/onair/pkg/schedule"
)

// SpanQuery measures how long one author's broadcasts cover on a station,
// from the start of the first to the end of the last.
type SpanQuery struct {
	station int
	author  string
}

// NewSpanQuery creates a span query for author on station.
func NewSpanQuery(station int, author string) (*SpanQuery, error) {
	if station < 1 {
		return nil, fmt.Errorf("span query: invalid station %d", station)
	}
	if author == "" {
		return nil, fmt.Errorf("span query: author is required")
	}
	return &SpanQuery{station: station, author: author}, nil
}

// Type returns the query type.
func (q *SpanQuery) Type() QueryType {
	return QuerySpan
}

// Run finds the author's first and last broadcast. Author comparison is exact.
func (q *SpanQuery) Run(_ context.Context, sched *schedule.Schedule) (*Result, error) {
	res := &SpanResult{Station: q.station, Author: q.author}
	stats := QueryStats{}

	var first, last *schedule.Broadcast
	for i := range sched.Broadcasts {
		b := &sched.Broadcasts[i]
		if b.Station != q.station {
			continue
		}
		stats.Examined++

		if b.Author != q.author {
			continue
		}
		stats.Matched++

		if first == nil {
			first = b
		}
		last = b
	}

	if first != nil {
		span, err := last.End().Sub(first.Start)
		if err != nil {
			return nil, fmt.Errorf("span of %q on station %d: %w", q.author, q.station, err)
		}

		f, l := *first, *last
		res.Found = true
		res.First = &f
		res.Last = &l
		res.Span = span
	}

	return &Result{Query: QuerySpan, Span: res, Stats: stats}, nil
}
