// Package chart holds the geometry of the hourly step chart: filtering a day,
// building the step series, scales, ticks, threshold lines and hover
// tooltips. Pixel output goes through Surface so the math can be tested
// without a canvas.
package chart

import (
	"fmt"
	"math"
	"strings"

	"elektron/internal/modules/prices/types"
)

const (
	// YTicks is the number of Y gridline intervals; YTicks+1 labels are drawn.
	YTicks = 6
	// MinPadding is the smallest half-range in øre used for a flat price day.
	MinPadding = 1.0

	paddingRatio = 0.1
	labelPadding = 4.0
)

type Margin struct {
	Top, Right, Bottom, Left float64
}

var DefaultMargin = Margin{Top: 30, Right: 30, Bottom: 40, Left: 60}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64 { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

type XY struct {
	X, Y float64
}

// Step is one point of the step series.
type Step struct {
	Hour  int
	Price float64
}

type Tick struct {
	Pos   float64
	Label string
	// Shown is false for X labels thinned out for lack of space.
	Shown bool
}

type ThresholdLine struct {
	Value float64
	Y     float64
	Label string
	Color string
}

// Options controls one full draw.
type Options struct {
	// Width and Height are in CSS pixels.
	Width, Height float64
	// Date selects points whose time starts with it, e.g. "2024-06-01".
	Date       string
	Thresholds Thresholds
	Margin     *Margin
}

// Frame is the computed geometry of one draw. It is immutable once built.
type Frame struct {
	Width, Height float64
	Empty         bool

	Plot  Rect
	Steps []Step
	// Min and Max are the padded price range mapped onto Plot.
	Min, Max float64

	YTicks     []Tick
	XTicks     []Tick
	XGrid      []float64
	Line       []XY
	Thresholds []ThresholdLine
}

// FilterDate returns the points whose time string starts with date.
func FilterDate(points []types.ChartPoint, date string) []types.ChartPoint {
	var out []types.ChartPoint
	for _, p := range points {
		if strings.HasPrefix(p.Time, date) {
			out = append(out, p)
		}
	}
	return out
}

// StepSeries copies daily into steps and appends a closing step one hour
// after the last point at the same price, so the last hour has a width.
func StepSeries(daily []types.ChartPoint) []Step {
	if len(daily) == 0 {
		return nil
	}
	steps := make([]Step, 0, len(daily)+1)
	for _, p := range daily {
		steps = append(steps, Step{Hour: p.Hour, Price: p.Price})
	}
	last := steps[len(steps)-1]
	return append(steps, Step{Hour: last.Hour + 1, Price: last.Price})
}

// PaddedRange returns the price range widened by 10% on each side. A flat
// series falls back to max(10% of |price|, MinPadding) so the range is never
// zero. When every price is non-negative the lower bound is clamped at 0.
func PaddedRange(prices []float64) (lo, hi float64) {
	if len(prices) == 0 {
		return 0, MinPadding
	}
	minP, maxP := prices[0], prices[0]
	for _, p := range prices[1:] {
		minP = math.Min(minP, p)
		maxP = math.Max(maxP, p)
	}

	pad := (maxP - minP) * paddingRatio
	if pad == 0 {
		pad = math.Max(math.Abs(maxP)*paddingRatio, MinPadding)
	}
	lo, hi = minP-pad, maxP+pad
	if minP >= 0 && lo < 0 {
		lo = 0
	}
	return lo, hi
}

// LabelStride returns 1, 2 or 4: how many hour slots each shown X label spans.
func LabelStride(slot, labelWidth float64) int {
	need := labelWidth + labelPadding
	switch {
	case slot >= need:
		return 1
	case slot*2 >= need:
		return 2
	default:
		return 4
	}
}

// Layout computes the frame for points on opts.Date. measure returns the
// rendered width of a label in the chart font.
func Layout(points []types.ChartPoint, opts Options, measure func(string) float64) Frame {
	f := Frame{Width: opts.Width, Height: opts.Height}

	daily := FilterDate(points, opts.Date)
	if len(daily) == 0 {
		f.Empty = true
		return f
	}

	m := DefaultMargin
	if opts.Margin != nil {
		m = *opts.Margin
	}
	f.Plot = Rect{
		X: m.Left,
		Y: m.Top,
		W: math.Max(opts.Width-m.Left-m.Right, 1),
		H: math.Max(opts.Height-m.Top-m.Bottom, 1),
	}

	f.Steps = StepSeries(daily)
	prices := make([]float64, len(f.Steps))
	for i, s := range f.Steps {
		prices[i] = s.Price
	}
	f.Min, f.Max = PaddedRange(prices)

	for i := 0; i <= YTicks; i++ {
		v := f.Min + (f.Max-f.Min)*float64(i)/YTicks
		f.YTicks = append(f.YTicks, Tick{Pos: f.Y(v), Label: fmt.Sprintf("%.1f", v), Shown: true})
	}

	stride := LabelStride(f.slot(), measure("00"))
	for i, s := range f.Steps {
		x := f.X(i)
		f.XTicks = append(f.XTicks, Tick{Pos: x, Label: fmt.Sprintf("%02d", s.Hour), Shown: i%stride == 0})
		if i%2 == 0 {
			f.XGrid = append(f.XGrid, x)
		}
	}

	for i := 0; i < len(f.Steps)-1; i++ {
		y := f.Y(f.Steps[i].Price)
		f.Line = append(f.Line, XY{X: f.X(i), Y: y}, XY{X: f.X(i + 1), Y: y})
	}

	for _, t := range opts.Thresholds.Enabled() {
		if t.Value < f.Min || t.Value > f.Max {
			continue
		}
		f.Thresholds = append(f.Thresholds, ThresholdLine{Value: t.Value, Y: f.Y(t.Value), Label: t.Label, Color: t.Color})
	}
	return f
}

// slot is the pixel width of one hour interval.
func (f Frame) slot() float64 {
	n := len(f.Steps) - 1
	if n < 1 {
		n = 1
	}
	return f.Plot.W / float64(n)
}

// X returns the pixel x of step i.
func (f Frame) X(i int) float64 {
	return f.Plot.X + f.slot()*float64(i)
}

// Y returns the pixel y of price; Max maps to the top of the plot.
func (f Frame) Y(price float64) float64 {
	return f.Plot.Bottom() - (price-f.Min)/(f.Max-f.Min)*f.Plot.H
}
