package chart

import (
	"fmt"
	"math"
)

// Tooltip describes what the overlay shows for one hover position.
type Tooltip struct {
	Index int
	Hour  int
	Price float64
	Text  string

	// Marker is the point on the step line, also the x of the guide line.
	Marker XY
	// TextAt is the text baseline origin; Box is the background around it.
	TextAt XY
	Box    Rect
}

// HoverAt returns the tooltip for pointer x (CSS pixels relative to the
// canvas), or nil for an empty frame. Positions outside the plot clamp to
// the first or last interval.
func (f Frame) HoverAt(x float64, measure func(string) float64) *Tooltip {
	if f.Empty || len(f.Steps) < 2 {
		return nil
	}
	idx := int(math.Floor((x - f.Plot.X) / f.slot()))
	if idx < 0 {
		idx = 0
	}
	if idx > len(f.Steps)-2 {
		idx = len(f.Steps) - 2
	}

	s := f.Steps[idx]
	t := &Tooltip{
		Index:  idx,
		Hour:   s.Hour,
		Price:  s.Price,
		Text:   fmt.Sprintf("%02d:00 - %.1f øre", s.Hour, s.Price),
		Marker: XY{X: f.X(idx), Y: f.Y(s.Price)},
	}

	w := measure(t.Text)
	tx := t.Marker.X + 10
	if tx+w > f.Width-10 {
		tx = t.Marker.X - w - 10
	}
	ty := t.Marker.Y - 15
	if ty < 20 {
		ty = t.Marker.Y + 25
	}
	t.TextAt = XY{X: tx, Y: ty}
	t.Box = Rect{X: tx - 5, Y: ty - 15, W: w + 10, H: 20}
	return t
}
