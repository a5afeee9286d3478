package analyzer

import (
	"context"
	"fmt"

	"github.com/ccollicutt/onair/pkg/schedule"
)

// NeighborsQuery reports, for the first airing of a given author and title,
// the broadcast most recently started on every other station.
type NeighborsQuery struct {
	author string
	title  string
}

// NewNeighborsQuery creates a neighbors query for the exact author and title.
func NewNeighborsQuery(author, title string) (*NeighborsQuery, error) {
	if author == "" || title == "" {
		return nil, fmt.Errorf("neighbors query: author and title are required")
	}
	return &NeighborsQuery{author: author, title: title}, nil
}

// Type returns the query type.
func (q *NeighborsQuery) Type() QueryType {
	return QueryNeighbors
}

// Run scans in input order and stops at the first match.
func (q *NeighborsQuery) Run(_ context.Context, sched *schedule.Schedule) (*Result, error) {
	res := &NeighborsResult{Author: q.author, Title: q.title}
	stats := QueryStats{}

	// Most recent broadcast per station, indexed by station-1.
	current := make([]*schedule.Broadcast, stationCount(sched))

	for i := range sched.Broadcasts {
		b := &sched.Broadcasts[i]
		if b.Station < 1 || b.Station > len(current) {
			return nil, fmt.Errorf("broadcast on line %d has station %d outside 1..%d", b.Line, b.Station, len(current))
		}
		stats.Examined++
		current[b.Station-1] = b

		if b.Author != q.author || b.Title != q.title {
			continue
		}
		stats.Matched++

		match := *b
		res.Found = true
		res.Match = &match

		for idx, cur := range current {
			station := idx + 1
			if station == b.Station {
				continue
			}
			n := Neighbor{Station: station}
			if cur != nil {
				c := *cur
				n.Broadcast = &c
			}
			res.Others = append(res.Others, n)
		}
		break
	}

	return &Result{Query: QueryNeighbors, Neighbors: res, Stats: stats}, nil
}
