// Package page holds the browser page state and the pure transitions the
// page controller applies to it on navigation, region and threshold events.
package page

import (
	"fmt"
	"time"

	"elektron/internal/chart"
	"elektron/internal/modules/prices/types"
)

type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

// State is everything a redraw needs. Transitions return a new State.
type State struct {
	// Date is midnight of the shown day in the viewer's location.
	Date       time.Time
	Region     types.Region
	Thresholds chart.Thresholds
	Points     []types.ChartPoint
	Status     Status
	Err        string
}

// New returns the loading state for the day containing now.
func New(now time.Time, region types.Region) State {
	return State{Date: midnight(now), Region: region, Status: StatusLoading}
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Shift moves the shown day by days and starts loading it.
func (s State) Shift(days int) State {
	y, m, d := s.Date.Date()
	s.Date = time.Date(y, m, d+days, 0, 0, 0, 0, s.Date.Location())
	return s.loading()
}

func (s State) PrevDay() State { return s.Shift(-1) }
func (s State) NextDay() State { return s.Shift(1) }

// Today jumps to the day containing now.
func (s State) Today(now time.Time) State {
	s.Date = midnight(now.In(s.Date.Location()))
	return s.loading()
}

func (s State) WithRegion(r types.Region) State {
	s.Region = r
	return s.loading()
}

// Toggle flips one threshold by name: "zero", "fifty" or "seventyFive".
// Unknown names leave the state unchanged. Points are kept: only a redraw is needed.
func (s State) Toggle(name string) State {
	switch name {
	case "zero":
		s.Thresholds.Zero = !s.Thresholds.Zero
	case "fifty":
		s.Thresholds.Fifty = !s.Thresholds.Fifty
	case "seventyFive":
		s.Thresholds.SeventyFive = !s.Thresholds.SeventyFive
	}
	return s
}

// Loaded stores fetched points. An empty set is a failure with a no-data message.
func (s State) Loaded(points []types.ChartPoint) State {
	s.Points = points
	if len(points) == 0 {
		s.Status = StatusFailed
		s.Err = "INGEN DATA TILGJENGELIG"
		return s
	}
	s.Status = StatusReady
	s.Err = ""
	return s
}

func (s State) Failed(err error) State {
	s.Points = nil
	s.Status = StatusFailed
	s.Err = err.Error()
	return s
}

func (s State) loading() State {
	s.Points = nil
	s.Status = StatusLoading
	s.Err = ""
	return s
}

// Query returns the date and region to load.
func (s State) Query() types.Query {
	return types.QueryFor(s.Date, s.Region)
}

// PricesPath is the API path for the shown day, e.g. /prices/2024/6/1/NO2.
func (s State) PricesPath() string {
	q := s.Query()
	return fmt.Sprintf("/prices/%d/%d/%d/%s", q.Year, q.Month, q.Day, q.Region)
}

// ChartOptions returns the draw options for a canvas of the given CSS size.
func (s State) ChartOptions(width, height float64) chart.Options {
	return chart.Options{
		Width:      width,
		Height:     height,
		Date:       s.Query().Date(),
		Thresholds: s.Thresholds,
	}
}

// Header is the page title line, e.g. "STRØMPRISER 01-06-2024 (NO2) - øre/kWh".
func (s State) Header() string {
	return fmt.Sprintf("STRØMPRISER %s (%s) - øre/kWh", s.Date.Format("02-01-2006"), s.Region)
}
