package output

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ccollicutt/onair/pkg/schedule"
)

// HitsFile writes search results to a file, replacing its previous content.
type HitsFile struct {
	path string
}

// NewHitsFile creates a sink writing to path.
func NewHitsFile(path string) *HitsFile {
	return &HitsFile{path: path}
}

// Destination returns the file path.
func (h *HitsFile) Destination() string {
	return h.path
}

// WriteHits writes the term on the first line and one "author:title" line
// per hit. The file is flushed and closed before returning.
func (h *HitsFile) WriteHits(_ context.Context, term string, hits []schedule.Broadcast) (err error) {
	f, err := os.Create(h.path) // #nosec G304 -- user-provided output path is expected
	if err != nil {
		return fmt.Errorf("creating hits file %s: %w", h.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing hits file %s: %w", h.path, cerr)
		}
	}()

	if err := WriteHits(f, term, hits); err != nil {
		return fmt.Errorf("writing hits file %s: %w", h.path, err)
	}
	return nil
}

// WriteHits writes the hits listing to w.
func WriteHits(w io.Writer, term string, hits []schedule.Broadcast) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, term); err != nil {
		return err
	}
	for _, hit := range hits {
		if _, err := fmt.Fprintln(bw, hit.Label()); err != nil {
			return err
		}
	}

	return bw.Flush()
}
