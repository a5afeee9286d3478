package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ccollicutt/onair/pkg/clock"
	"github.com/ccollicutt/onair/pkg/config"
	"github.com/ccollicutt/onair/pkg/schedule"
)

// Analyzer runs the configured queries over a schedule in QueryOrder.
type Analyzer struct {
	queries []Query

	// Options
	queryFilter map[QueryType]bool // nil means all queries
	logger      *zap.Logger
}

// AnalyzerOption configures analyzer behavior.
type AnalyzerOption func(*Analyzer)

// WithQueryFilter limits analysis to the named queries.
func WithQueryFilter(queries []QueryType) AnalyzerOption {
	return func(a *Analyzer) {
		if len(queries) > 0 {
			a.queryFilter = make(map[QueryType]bool)
			for _, q := range queries {
				a.queryFilter[q] = true
			}
		}
	}
}

// WithLogger sets the logger for per-query diagnostics.
func WithLogger(l *zap.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// ParseQueryTypes converts query names into QueryTypes. Names may be
// comma-separated.
func ParseQueryTypes(names []string) ([]QueryType, error) {
	var out []QueryType
	for _, raw := range names {
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(strings.ToLower(name))
			if name == "" {
				continue
			}
			qt := QueryType(name)
			if !isKnownQuery(qt) {
				return nil, fmt.Errorf("unknown query %q (use counts, span, neighbors, search or adjusted)", name)
			}
			out = append(out, qt)
		}
	}
	return out, nil
}

func isKnownQuery(qt QueryType) bool {
	for _, known := range QueryOrder {
		if qt == known {
			return true
		}
	}
	return false
}

// NewAnalyzer creates an analyzer from configuration. terms and sink are
// only required when the search query is selected.
func NewAnalyzer(cfg *config.Config, terms TermSource, sink HitSink, opts ...AnalyzerOption) (*Analyzer, error) {
	a := &Analyzer{
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	for _, qt := range QueryOrder {
		if a.queryFilter != nil && !a.queryFilter[qt] {
			continue
		}

		q, err := createQuery(qt, cfg, terms, sink)
		if err != nil {
			return nil, fmt.Errorf("creating %s query: %w", qt, err)
		}
		a.queries = append(a.queries, q)
	}

	if len(a.queries) == 0 {
		return nil, fmt.Errorf("no queries to execute (check --query filter)")
	}

	return a, nil
}

// createQuery creates the query of the given type.
func createQuery(qt QueryType, cfg *config.Config, terms TermSource, sink HitSink) (Query, error) {
	switch qt {
	case QueryCounts:
		return NewCountsQuery(), nil
	case QuerySpan:
		return NewSpanQuery(cfg.Span.Station, cfg.Span.Author)
	case QueryNeighbors:
		return NewNeighborsQuery(cfg.Neighbors.Author, cfg.Neighbors.Title)
	case QuerySearch:
		return NewSearchQuery(terms, sink)
	case QueryAdjusted:
		return NewAdjustedQuery(cfg.Adjusted.Station,
			clock.FromDuration(cfg.Adjusted.Padding),
			clock.FromDuration(cfg.Adjusted.BreakOffset))
	default:
		return nil, fmt.Errorf("unknown query type: %s", qt)
	}
}

// Queries returns the types of the queries that will run, in order.
func (a *Analyzer) Queries() []QueryType {
	out := make([]QueryType, len(a.queries))
	for i, q := range a.queries {
		out[i] = q.Type()
	}
	return out
}

// AnalysisResult contains the complete analysis output.
type AnalysisResult struct {
	// Results contains one entry per query that ran, in run order.
	Results []*Result

	// Metadata provides context about the analysis.
	Metadata AnalysisMetadata
}

// AnalysisMetadata provides context about the analysis run.
type AnalysisMetadata struct {
	// Source is the broadcast log that was analyzed.
	Source string

	// Broadcasts is the number of broadcasts in the schedule.
	Broadcasts int

	// StationCount is the number of stations in the schedule.
	StationCount int

	// StartTime is when analysis began.
	StartTime time.Time

	// EndTime is when analysis completed.
	EndTime time.Time
}

// EmitFunc receives each result as soon as its query finishes.
type EmitFunc func(*Result) error

// Analyze runs every query in order. When emit is non-nil it is called after
// each query, before the next one starts; an emit error aborts the run.
func (a *Analyzer) Analyze(ctx context.Context, sched *schedule.Schedule, emit EmitFunc) (*AnalysisResult, error) {
	result := &AnalysisResult{
		Results: make([]*Result, 0, len(a.queries)),
		Metadata: AnalysisMetadata{
			Source:       sched.Source,
			Broadcasts:   len(sched.Broadcasts),
			StationCount: stationCount(sched),
			StartTime:    time.Now(),
		},
	}

	for _, q := range a.queries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		started := time.Now()
		res, err := q.Run(ctx, sched)
		if err != nil {
			return nil, fmt.Errorf("running %s query: %w", q.Type(), err)
		}
		res.Stats.Elapsed = time.Since(started)

		a.logger.Debug("query finished",
			zap.String("query", string(q.Type())),
			zap.Int("examined", res.Stats.Examined),
			zap.Int("matched", res.Stats.Matched),
			zap.Duration("elapsed", res.Stats.Elapsed))

		result.Results = append(result.Results, res)

		if emit != nil {
			if err := emit(res); err != nil {
				return nil, fmt.Errorf("reporting %s result: %w", q.Type(), err)
			}
		}
	}

	result.Metadata.EndTime = time.Now()

	return result, nil
}
