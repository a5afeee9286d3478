// Package schedule reads broadcast logs and reconstructs each broadcast's
// start time on its station.
package schedule

import "github.com/ccollicutt/onair/pkg/clock"

// DefaultStationCount is the number of stations in a standard log.
const DefaultStationCount = 3

// Broadcast is one scheduled item with its reconstructed start time.
type Broadcast struct {
	// Station is the 1-based station id.
	Station int `json:"station"`

	// Start is the sum of the durations of all earlier broadcasts on Station.
	Start clock.Clock `json:"start"`

	// Duration is how long the broadcast runs.
	Duration clock.Clock `json:"duration"`

	Author string `json:"author"`
	Title  string `json:"title"`

	// Line is the 1-based line number in the source log.
	Line int `json:"line"`
}

// End returns the time the broadcast finishes.
func (b Broadcast) End() clock.Clock {
	return b.Start.Add(b.Duration)
}

// Label renders the broadcast as "author:title".
func (b Broadcast) Label() string {
	return b.Author + ":" + b.Title
}

// Schedule is a fully reconstructed broadcast log.
type Schedule struct {
	// Broadcasts holds every record in input order.
	Broadcasts []Broadcast

	// StationCount is the number of stations ids were validated against.
	StationCount int

	// Declared is the record count from the first line of the log.
	Declared int

	// Source names where the log came from.
	Source string
}

// OnStation returns the broadcasts of one station in input order.
func (s *Schedule) OnStation(station int) []Broadcast {
	var out []Broadcast
	for _, b := range s.Broadcasts {
		if b.Station == station {
			out = append(out, b)
		}
	}
	return out
}
