package analyzer

import (
	"context"
	"fmt"

	"github.com/ccollicutt/onair/pkg/schedule"
)

// CountsQuery tallies broadcasts per station.
type CountsQuery struct{}

// NewCountsQuery creates a per-station count query.
func NewCountsQuery() *CountsQuery {
	return &CountsQuery{}
}

// Type returns the query type.
func (q *CountsQuery) Type() QueryType {
	return QueryCounts
}

// Run counts the broadcasts of every station.
func (q *CountsQuery) Run(_ context.Context, sched *schedule.Schedule) (*Result, error) {
	counts := make([]int, stationCount(sched))

	for _, b := range sched.Broadcasts {
		if b.Station < 1 || b.Station > len(counts) {
			return nil, fmt.Errorf("broadcast on line %d has station %d outside 1..%d", b.Line, b.Station, len(counts))
		}
		counts[b.Station-1]++
	}

	return &Result{
		Query:  QueryCounts,
		Counts: counts,
		Stats: QueryStats{
			Examined: len(sched.Broadcasts),
			Matched:  len(sched.Broadcasts),
		},
	}, nil
}

func stationCount(sched *schedule.Schedule) int {
	if sched.StationCount > 0 {
		return sched.StationCount
	}
	return schedule.DefaultStationCount
}
