package analyzer

import (
	"context"
	"fmt"

	"github.com/ccollicutt/onair/pkg/clock"
	"github.com/ccollicutt/onair/pkg/schedule"
)

// AdjustedQuery computes a station's schedule length when every broadcast is
// padded and each hour opens with a studio break.
//
// For each broadcast, delta is its duration plus the padding. If running +
// delta would land in a later hour, the schedule snaps to BreakOffset within
// that new hour and delta is applied from there; the remainder that crossed
// the hour boundary is discarded.
type AdjustedQuery struct {
	station     int
	padding     clock.Clock
	breakOffset clock.Clock
}

// NewAdjustedQuery creates an adjusted schedule query.
func NewAdjustedQuery(station int, padding, breakOffset clock.Clock) (*AdjustedQuery, error) {
	if station < 1 {
		return nil, fmt.Errorf("adjusted query: invalid station %d", station)
	}
	if breakOffset.Hour != 0 {
		return nil, fmt.Errorf("adjusted query: break offset %s must be within the hour", breakOffset)
	}
	return &AdjustedQuery{station: station, padding: padding, breakOffset: breakOffset}, nil
}

// Type returns the query type.
func (q *AdjustedQuery) Type() QueryType {
	return QueryAdjusted
}

// Run folds the station's broadcasts into the adjusted total.
func (q *AdjustedQuery) Run(_ context.Context, sched *schedule.Schedule) (*Result, error) {
	stats := QueryStats{}
	running := clock.Zero

	for _, b := range sched.Broadcasts {
		if b.Station != q.station {
			continue
		}
		stats.Examined++
		stats.Matched++

		running = q.step(running, b.Duration)
	}

	return &Result{
		Query: QueryAdjusted,
		Adjusted: &AdjustedResult{
			Station:     q.station,
			Padding:     q.padding,
			BreakOffset: q.breakOffset,
			Total:       running,
		},
		Stats: stats,
	}, nil
}

func (q *AdjustedQuery) step(running, duration clock.Clock) clock.Clock {
	delta := duration.Add(q.padding)
	candidate := running.Add(delta)
	if candidate.Hour > running.Hour {
		return delta.Add(clock.Clock{Hour: candidate.Hour}.Add(q.breakOffset))
	}
	return candidate
}
