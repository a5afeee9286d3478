package schedule

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ccollicutt/onair/pkg/clock"
)

func TestParse_Example(t *testing.T) {
	input := "2\n1 0 30 Artist A:Song A\n1 1 0 Artist B:Song B\n"

	sched, err := Parse(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []Broadcast{
		{Station: 1, Start: clock.Zero, Duration: clock.Clock{Second: 30}, Author: "Artist A", Title: "Song A", Line: 2},
		{Station: 1, Start: clock.Clock{Second: 30}, Duration: clock.Clock{Minute: 1}, Author: "Artist B", Title: "Song B", Line: 3},
	}
	if diff := cmp.Diff(want, sched.Broadcasts); diff != "" {
		t.Errorf("Broadcasts mismatch (-want +got):\n%s", diff)
	}
	if sched.Declared != 2 {
		t.Errorf("Declared = %d, want 2", sched.Declared)
	}
	if sched.StationCount != DefaultStationCount {
		t.Errorf("StationCount = %d, want %d", sched.StationCount, DefaultStationCount)
	}
}

func TestParse_StartTimesPerStation(t *testing.T) {
	input := `6
1 5 0 A:one
2 3 10 B:two
1 4 59 C:three
3 0 1 D:four
2 2 50 E:five
1 0 1 F:six
`
	sched, err := Parse(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	starts := make([]string, len(sched.Broadcasts))
	for i, b := range sched.Broadcasts {
		starts[i] = b.Start.String()
	}
	want := []string{"0:0:0", "0:0:0", "0:5:0", "0:0:0", "0:3:10", "0:9:59"}
	if diff := cmp.Diff(want, starts); diff != "" {
		t.Errorf("start times mismatch (-want +got):\n%s", diff)
	}

	// Every start equals the sum of prior durations on the same station.
	sums := map[int]clock.Clock{}
	for _, b := range sched.Broadcasts {
		if b.Start != sums[b.Station] {
			t.Errorf("line %d: Start = %v, want %v", b.Line, b.Start, sums[b.Station])
		}
		sums[b.Station] = sums[b.Station].Add(b.Duration)
	}
}

func TestParse_FreeText(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		author string
		title  string
	}{
		{"basic", "1 3 0 Omega:Legenda", "Omega", "Legenda"},
		{"title trimmed", "1 3 0 Omega:   Legenda  ", "Omega", "Legenda"},
		{"first colon wins", "1 3 0 Ratt:Round: and Round", "Ratt", "Round: and Round"},
		{"spaces in author", "1 3 0 Eric Clapton:Layla", "Eric Clapton", "Layla"},
		{"extra spaces between fields", "1  3\t0   Eric Clapton:Layla", "Eric Clapton", "Layla"},
		{"empty title", "1 3 0 Nobody:", "Nobody", ""},
		{"crlf", "1 3 0 Omega:Legenda\r", "Omega", "Legenda"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched, err := Parse(context.Background(), strings.NewReader("1\n"+tt.line+"\n"))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			b := sched.Broadcasts[0]
			if b.Author != tt.author {
				t.Errorf("Author = %q, want %q", b.Author, tt.author)
			}
			if b.Title != tt.title {
				t.Errorf("Title = %q, want %q", b.Title, tt.title)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		line    int
	}{
		{"empty", "", ErrRecordCount, 1},
		{"count not a number", "two\n", ErrRecordCount, 1},
		{"negative count", "-1\n", ErrRecordCount, 1},
		{"too few records", "2\n1 0 30 A:B\n", ErrRecordCount, 2},
		{"too many records", "1\n1 0 30 A:B\n2 0 30 C:D\n", ErrRecordCount, 3},
		{"missing fields", "1\n1 0\n", ErrMalformedRecord, 2},
		{"missing free text", "1\n1 0 30\n", ErrMalformedRecord, 2},
		{"missing colon", "1\n1 0 30 Omega Legenda\n", ErrMissingSeparator, 2},
		{"station not numeric", "1\nx 0 30 A:B\n", ErrInvalidNumber, 2},
		{"minutes not numeric", "1\n1 m 30 A:B\n", ErrInvalidNumber, 2},
		{"negative seconds", "1\n1 0 -3 A:B\n", ErrInvalidNumber, 2},
		{"station zero", "1\n0 0 30 A:B\n", ErrStationRange, 2},
		{"station too large", "1\n4 0 30 A:B\n", ErrStationRange, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(context.Background(), strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse() error %T is not *ParseError", err)
			}
			if perr.Line != tt.line {
				t.Errorf("Line = %d, want %d", perr.Line, tt.line)
			}
		})
	}
}

func TestParse_StationCount(t *testing.T) {
	input := "2\n5 1 0 A:B\n4 1 0 C:D\n"

	if _, err := Parse(context.Background(), strings.NewReader(input)); !errors.Is(err, ErrStationRange) {
		t.Errorf("Parse() with default stations error = %v, want ErrStationRange", err)
	}

	sched, err := Parse(context.Background(), strings.NewReader(input), WithStationCount(5))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(sched.OnStation(5)) != 1 || len(sched.OnStation(4)) != 1 {
		t.Errorf("OnStation() counts wrong: %+v", sched.Broadcasts)
	}
}

func TestParse_SkipsBlankLines(t *testing.T) {
	input := "\n2\n\n1 0 30 A:B\n   \n2 0 30 C:D\n\n\n"
	sched, err := Parse(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(sched.Broadcasts) != 2 {
		t.Fatalf("len(Broadcasts) = %d, want 2", len(sched.Broadcasts))
	}
	if sched.Broadcasts[1].Line != 6 {
		t.Errorf("Line = %d, want 6", sched.Broadcasts[1].Line)
	}
}

func TestParse_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Parse(ctx, strings.NewReader("1\n1 0 30 A:B\n"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Parse() error = %v, want context.Canceled", err)
	}
}

func TestParse_NonCanonicalDuration(t *testing.T) {
	sched, err := Parse(context.Background(), strings.NewReader("1\n1 61 75 A:B\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := clock.Clock{Hour: 1, Minute: 2, Second: 15}
	if got := sched.Broadcasts[0].Duration; got != want {
		t.Errorf("Duration = %v, want %v", got, want)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "musor.txt")
	if err := os.WriteFile(path, []byte("1\n2 3 15 Omega:Legenda\n"), 0644); err != nil {
		t.Fatal(err)
	}

	sched, err := ParseFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if sched.Source != path {
		t.Errorf("Source = %q, want %q", sched.Source, path)
	}
	if sched.Broadcasts[0].End() != (clock.Clock{Minute: 3, Second: 15}) {
		t.Errorf("End() = %v", sched.Broadcasts[0].End())
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ParseFile() error = %v, want os.ErrNotExist", err)
	}
}

func TestParseFile_ErrorNamesSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("1\n1 0 30 no colon\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ParseFile(context.Background(), path)
	if err == nil || !strings.Contains(err.Error(), path+":2:") {
		t.Errorf("ParseFile() error = %v, want it to name %s:2", err, path)
	}
}

func TestBroadcast_Label(t *testing.T) {
	b := Broadcast{Author: "Omega", Title: "Legenda"}
	if b.Label() != "Omega:Legenda" {
		t.Errorf("Label() = %q", b.Label())
	}
}
