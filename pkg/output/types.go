// Package output provides report formatting and the search hits file.
package output

import (
	"time"

	"github.com/ccollicutt/onair/pkg/analyzer"
)

// Report is the complete analysis output.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Results contains one entry per query, in run order.
	Results []*analyzer.Result `json:"results"`

	// Metadata provides context about the analysis.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// QueriesRun is the number of queries that were executed.
	QueriesRun int `json:"queries_run"`

	// Broadcasts is the number of broadcasts in the log.
	Broadcasts int `json:"broadcasts"`

	// Stations is the number of stations in the log.
	Stations int `json:"stations"`

	// SearchHits is the number of search matches, or -1 if search did not run.
	SearchHits int `json:"search_hits"`
}

// Metadata provides context about the analysis run.
type Metadata struct {
	// Source is the analyzed broadcast log.
	Source string `json:"source"`

	// ConfigFile is the configuration file used, if any.
	ConfigFile string `json:"config_file,omitempty"`

	// AnalyzedAt is when the analysis finished.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Duration is how long the analysis took.
	Duration time.Duration `json:"duration"`
}

// NewReport creates a Report from analysis results.
func NewReport(result *analyzer.AnalysisResult, configFile string) *Report {
	report := &Report{
		Results: result.Results,
		Metadata: Metadata{
			Source:     result.Metadata.Source,
			ConfigFile: configFile,
			AnalyzedAt: result.Metadata.EndTime,
			Duration:   result.Metadata.EndTime.Sub(result.Metadata.StartTime),
		},
		Summary: Summary{
			QueriesRun: len(result.Results),
			Broadcasts: result.Metadata.Broadcasts,
			Stations:   result.Metadata.StationCount,
			SearchHits: -1,
		},
	}

	for _, r := range result.Results {
		if r.Search != nil {
			report.Summary.SearchHits = len(r.Search.Hits)
		}
	}

	return report
}
