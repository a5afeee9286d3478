package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ccollicutt/onair/pkg/analyzer"
	"github.com/ccollicutt/onair/pkg/schedule"
)

// labels numbers each query's line of the text report.
var labels = map[analyzer.QueryType]string{
	analyzer.QueryCounts:    "2.",
	analyzer.QuerySpan:      "3.",
	analyzer.QueryNeighbors: "4.",
	analyzer.QuerySearch:    "5.",
	analyzer.QueryAdjusted:  "6.",
}

// TextFormatter formats results as human-readable text, one line per query.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Result writes the line for one query.
func (f *TextFormatter) Result(ctx context.Context, result *analyzer.Result, w io.Writer) error {
	if f.opts.Quiet {
		return nil
	}

	label := labels[result.Query]
	var err error
	switch {
	case result.Query == analyzer.QueryCounts:
		err = f.formatCounts(label, result.Counts, w)
	case result.Span != nil:
		err = f.formatSpan(label, result.Span, w)
	case result.Neighbors != nil:
		err = f.formatNeighbors(label, result.Neighbors, w)
	case result.Search != nil:
		err = f.formatSearch(label, result.Search, w)
	case result.Adjusted != nil:
		err = f.formatAdjusted(label, result.Adjusted, w)
	default:
		_, err = fmt.Fprintf(w, "%s %s: no result\n", label, result.Query)
	}
	return err
}

// Format writes the summary. It prints nothing in default mode, since every
// result has already been written.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	switch {
	case f.opts.Quiet:
		return f.formatQuiet(report, w)
	case f.opts.Verbose:
		return f.formatFooter(report, w)
	}
	return nil
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "onair: %d broadcasts on %d stations, %d queries run%s\n",
		report.Summary.Broadcasts,
		report.Summary.Stations,
		report.Summary.QueriesRun,
		searchSummary(report.Summary.SearchHits))
	return err
}

func searchSummary(hits int) string {
	if hits < 0 {
		return ""
	}
	return fmt.Sprintf(", %d search hits", hits)
}

func (f *TextFormatter) formatFooter(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Source: %s (%d broadcasts)\n", report.Metadata.Source, report.Summary.Broadcasts)
	_, err := fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	return err
}

func (f *TextFormatter) formatCounts(label string, counts []int, w io.Writer) error {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("station %d: %d", i+1, c)
	}
	_, err := fmt.Fprintf(w, "%s %s\n", label, strings.Join(parts, ", "))
	return err
}

func (f *TextFormatter) formatSpan(label string, span *analyzer.SpanResult, w io.Writer) error {
	if !span.Found {
		_, err := fmt.Fprintf(w, "%s no %s broadcasts found on station %d\n", label, span.Author, span.Station)
		return err
	}

	fmt.Fprintf(w, "%s %s\n", label, span.Span)
	if f.opts.Verbose {
		fmt.Fprintf(w, "   first: %s at %s\n", span.First.Label(), span.First.Start)
		fmt.Fprintf(w, "   last:  %s at %s, ends %s\n", span.Last.Label(), span.Last.Start, span.Last.End())
	}
	return nil
}

func (f *TextFormatter) formatNeighbors(label string, n *analyzer.NeighborsResult, w io.Writer) error {
	if !n.Found {
		_, err := fmt.Fprintf(w, "%s %s:%s was not broadcast\n", label, n.Author, n.Title)
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d", label, n.Station())
	for _, other := range n.Others {
		b.WriteString("; ")
		if other.Broadcast == nil {
			b.WriteString("-")
			continue
		}
		b.WriteString(other.Broadcast.Label())
	}
	b.WriteString("\n")

	if f.opts.Verbose {
		fmt.Fprintf(&b, "   %s started at %s on station %d\n", n.Match.Label(), n.Match.Start, n.Match.Station)
		for _, other := range n.Others {
			if other.Broadcast != nil {
				fmt.Fprintf(&b, "   station %d: started at %s\n", other.Station, other.Broadcast.Start)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (f *TextFormatter) formatSearch(label string, s *analyzer.SearchResult, w io.Writer) error {
	fmt.Fprintf(w, "%s %d hits for %q written to %s\n", label, len(s.Hits), s.Term, s.Destination)
	if f.opts.Verbose {
		for _, h := range s.Hits {
			formatHit(h, w)
		}
	}
	return nil
}

func formatHit(h schedule.Broadcast, w io.Writer) {
	fmt.Fprintf(w, "   [%d] %s at %s\n", h.Station, h.Label(), h.Start)
}

func (f *TextFormatter) formatAdjusted(label string, a *analyzer.AdjustedResult, w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s %s\n", label, a.Total)
	if err == nil && f.opts.Verbose {
		_, err = fmt.Fprintf(w, "   station %d, padding %s, hourly break at %s\n", a.Station, a.Padding, a.BreakOffset)
	}
	return err
}
