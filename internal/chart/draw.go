package chart

const (
	Font        = "12px JetBrainsMono"
	MessageFont = "14px JetBrainsMono"
	NoDataText  = "INGEN DATA FOR DENNE DATOEN"

	colorInk  = "#000000"
	colorGrid = "#cccccc"
	colorBg   = "#ffffff"
)

// Surface is the drawing target: a canvas 2D context in the browser, a
// recorder in tests. Coordinates are CSS pixels.
type Surface interface {
	Clear(w, h float64)
	SetFont(font string)
	SetFill(color string)
	SetStroke(color string, width float64)
	// SetText sets canvas textAlign and textBaseline.
	SetText(align, baseline string)
	FillText(text string, x, y float64)
	MeasureText(text string) float64
	Polyline(points []XY)
	FillRect(r Rect)
	StrokeRect(r Rect)
	FillCircle(center XY, radius float64)
}

// Draw renders f onto s, replacing whatever was there.
func Draw(s Surface, f Frame) {
	s.Clear(f.Width, f.Height)
	if f.Empty {
		s.SetFont(MessageFont)
		s.SetFill(colorInk)
		s.SetText("center", "middle")
		s.FillText(NoDataText, f.Width/2, f.Height/2)
		return
	}

	s.SetFont(Font)
	s.SetFill(colorInk)

	s.SetText("right", "middle")
	for i, t := range f.YTicks {
		s.FillText(t.Label, f.Plot.X-10, t.Pos)
		if i == 0 {
			s.SetStroke(colorInk, 2)
		} else {
			s.SetStroke(colorGrid, 1)
		}
		s.Polyline([]XY{{X: f.Plot.X, Y: t.Pos}, {X: f.Plot.Right(), Y: t.Pos}})
	}

	s.SetStroke(colorGrid, 1)
	for _, x := range f.XGrid {
		s.Polyline([]XY{{X: x, Y: f.Plot.Y}, {X: x, Y: f.Plot.Bottom()}})
	}

	s.SetText("center", "top")
	for _, t := range f.XTicks {
		if t.Shown {
			s.FillText(t.Label, t.Pos, f.Plot.Bottom()+10)
		}
	}

	s.SetStroke(colorInk, 3)
	s.Polyline(f.Line)

	s.SetText("right", "bottom")
	for _, th := range f.Thresholds {
		s.SetStroke(th.Color, 1.5)
		s.Polyline([]XY{{X: f.Plot.X, Y: th.Y}, {X: f.Plot.Right(), Y: th.Y}})
		s.SetFill(th.Color)
		s.FillText(th.Label, f.Plot.Right()-4, th.Y-3)
	}
}

// DrawTooltip clears the overlay and, for a non-nil t, draws the guide line,
// marker and tooltip box.
func DrawTooltip(s Surface, f Frame, t *Tooltip) {
	s.Clear(f.Width, f.Height)
	if t == nil {
		return
	}

	s.SetFont(Font)
	s.SetFill(colorBg)
	s.FillRect(t.Box)
	s.SetStroke(colorInk, 2)
	s.StrokeRect(t.Box)

	s.SetFill(colorInk)
	s.SetText("left", "alphabetic")
	s.FillText(t.Text, t.TextAt.X, t.TextAt.Y)

	s.Polyline([]XY{{X: t.Marker.X, Y: f.Plot.Y}, {X: t.Marker.X, Y: f.Plot.Bottom()}})
	s.FillCircle(t.Marker, 4)
}
