package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/ccollicutt/onair/pkg/fuzzy"
	"github.com/ccollicutt/onair/pkg/schedule"
)

// SearchQuery selects broadcasts whose author followed by title contains the
// search term as a case-insensitive subsequence, and persists them.
type SearchQuery struct {
	terms TermSource
	sink  HitSink
}

// NewSearchQuery creates a search query reading its term from terms and
// writing hits to sink.
func NewSearchQuery(terms TermSource, sink HitSink) (*SearchQuery, error) {
	if terms == nil {
		return nil, fmt.Errorf("search query: term source is required")
	}
	if sink == nil {
		return nil, fmt.Errorf("search query: hit sink is required")
	}
	return &SearchQuery{terms: terms, sink: sink}, nil
}

// Type returns the query type.
func (q *SearchQuery) Type() QueryType {
	return QuerySearch
}

// Run obtains the term, matches every broadcast and writes the hits. The sink
// is written even when nothing matches.
func (q *SearchQuery) Run(ctx context.Context, sched *schedule.Schedule) (*Result, error) {
	term, err := q.terms.Term(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading search term: %w", err)
	}
	term = strings.TrimSpace(term)

	hits := Search(sched, term)

	if err := q.sink.WriteHits(ctx, term, hits); err != nil {
		return nil, fmt.Errorf("writing search hits: %w", err)
	}

	return &Result{
		Query: QuerySearch,
		Search: &SearchResult{
			Term:        term,
			Hits:        hits,
			Destination: q.sink.Destination(),
		},
		Stats: QueryStats{
			Examined: len(sched.Broadcasts),
			Matched:  len(hits),
		},
	}, nil
}

// Search returns the broadcasts matching term in input order.
func Search(sched *schedule.Schedule, term string) []schedule.Broadcast {
	hits := make([]schedule.Broadcast, 0)
	for _, b := range sched.Broadcasts {
		if fuzzy.Match(b.Author+b.Title, term) {
			hits = append(hits, b)
		}
	}
	return hits
}
