package output

import (
	"time"

	"github.com/ccollicutt/onair/pkg/analyzer"
	"github.com/ccollicutt/onair/pkg/clock"
	"github.com/ccollicutt/onair/pkg/schedule"
)

var (
	layla = schedule.Broadcast{Station: 1, Start: clock.Clock{Minute: 5}, Duration: clock.Clock{Minute: 3}, Author: "Eric Clapton", Title: "Layla", Line: 3}
	tears = schedule.Broadcast{Station: 1, Start: clock.Clock{Minute: 10}, Duration: clock.Clock{Minute: 4}, Author: "Eric Clapton", Title: "Tears in Heaven", Line: 8}
	abba  = schedule.Broadcast{Station: 3, Start: clock.Zero, Duration: clock.Clock{Minute: 2, Second: 30}, Author: "ABBA", Title: "Waterloo", Line: 7}
	omega = schedule.Broadcast{Station: 2, Start: clock.Clock{Minute: 7, Second: 10}, Duration: clock.Clock{Minute: 5}, Author: "Omega", Title: "Legenda", Line: 9}
)

func createTestResults() []*analyzer.Result {
	return []*analyzer.Result{
		{Query: analyzer.QueryCounts, Counts: []int{4, 4, 2}},
		{Query: analyzer.QuerySpan, Span: &analyzer.SpanResult{
			Station: 1, Author: "Eric Clapton", Found: true,
			First: &layla, Last: &tears, Span: clock.Clock{Minute: 9},
		}},
		{Query: analyzer.QueryNeighbors, Neighbors: &analyzer.NeighborsResult{
			Author: "Omega", Title: "Legenda", Found: true, Match: &omega,
			Others: []analyzer.Neighbor{{Station: 1, Broadcast: &tears}, {Station: 3, Broadcast: &abba}},
		}},
		{Query: analyzer.QuerySearch, Search: &analyzer.SearchResult{
			Term: "omega", Hits: []schedule.Broadcast{omega}, Destination: "keres.txt",
		}},
		{Query: analyzer.QueryAdjusted, Adjusted: &analyzer.AdjustedResult{
			Station: 1, Padding: clock.Clock{Minute: 1}, BreakOffset: clock.Clock{Minute: 3}, Total: clock.Clock{Minute: 18},
		}},
	}
}

func createTestReport() *Report {
	baseTime := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	return &Report{
		Summary: Summary{
			QueriesRun: 5,
			Broadcasts: 10,
			Stations:   3,
			SearchHits: 1,
		},
		Results: createTestResults(),
		Metadata: Metadata{
			Source:     "musor.txt",
			ConfigFile: "onair.yaml",
			AnalyzedAt: baseTime,
			Duration:   100 * time.Millisecond,
		},
	}
}
