// Package analyzer runs the read-only queries over a reconstructed broadcast
// schedule.
package analyzer

import (
	"time"

	"github.com/ccollicutt/onair/pkg/clock"
	"github.com/ccollicutt/onair/pkg/schedule"
)

// QueryType enumerates the available queries.
type QueryType string

const (
	QueryCounts    QueryType = "counts"
	QuerySpan      QueryType = "span"
	QueryNeighbors QueryType = "neighbors"
	QuerySearch    QueryType = "search"
	QueryAdjusted  QueryType = "adjusted"
)

// QueryOrder is the order queries run and report in.
var QueryOrder = []QueryType{QueryCounts, QuerySpan, QueryNeighbors, QuerySearch, QueryAdjusted}

// Result contains the outcome of one query. Exactly one of the
// query-specific fields is set, matching Query.
type Result struct {
	// Query identifies which query produced this result.
	Query QueryType `json:"query"`

	// Counts holds broadcasts per station, indexed by station-1.
	Counts []int `json:"counts,omitempty"`

	Span      *SpanResult      `json:"span,omitempty"`
	Neighbors *NeighborsResult `json:"neighbors,omitempty"`
	Search    *SearchResult    `json:"search,omitempty"`
	Adjusted  *AdjustedResult  `json:"adjusted,omitempty"`

	// Stats provides execution statistics.
	Stats QueryStats `json:"stats"`
}

// QueryStats contains execution statistics for a query.
type QueryStats struct {
	// Examined is the number of broadcasts the query looked at.
	Examined int `json:"examined"`

	// Matched is the number of broadcasts that satisfied the query's filter.
	Matched int `json:"matched"`

	// Elapsed is how long the query took.
	Elapsed time.Duration `json:"elapsed"`
}

// SpanResult is the airtime covered by one author on one station.
type SpanResult struct {
	Station int    `json:"station"`
	Author  string `json:"author"`

	// Found is false when the author never aired on the station.
	Found bool `json:"found"`

	// First and Last are the author's first and last broadcasts.
	First *schedule.Broadcast `json:"first,omitempty"`
	Last  *schedule.Broadcast `json:"last,omitempty"`

	// Span runs from First's start to Last's end.
	Span clock.Clock `json:"span"`
}

// NeighborsResult lists what every other station was airing when the
// target broadcast came up.
type NeighborsResult struct {
	Author string `json:"author"`
	Title  string `json:"title"`

	// Found is false when the target never aired.
	Found bool `json:"found"`

	// Match is the first broadcast with the target author and title.
	Match *schedule.Broadcast `json:"match,omitempty"`

	// Others holds one entry per other station, in station order.
	Others []Neighbor `json:"others,omitempty"`
}

// Station returns the station the target aired on, or 0 if not found.
func (n *NeighborsResult) Station() int {
	if n.Match == nil {
		return 0
	}
	return n.Match.Station
}

// Neighbor is the most recent broadcast of a station at the time of a match.
type Neighbor struct {
	Station int `json:"station"`

	// Broadcast is nil when the station had not aired anything yet.
	Broadcast *schedule.Broadcast `json:"broadcast,omitempty"`
}

// SearchResult lists the broadcasts matching a search term.
type SearchResult struct {
	Term string `json:"term"`

	// Hits are the matching broadcasts in input order.
	Hits []schedule.Broadcast `json:"hits"`

	// Destination names where the hits were written.
	Destination string `json:"destination"`
}

// AdjustedResult is the padded schedule total of one station.
type AdjustedResult struct {
	Station     int         `json:"station"`
	Padding     clock.Clock `json:"padding"`
	BreakOffset clock.Clock `json:"break_offset"`
	Total       clock.Clock `json:"total"`
}
