package chart

import (
	"sync"

	"elektron/internal/modules/prices/types"
)

// ChartView draws a day chart and answers pointer hover against the last draw.
type ChartView interface {
	Draw(points []types.ChartPoint, opts Options) Frame
	// OnHover returns nil when the last draw had no data.
	OnHover(x, y float64) *Tooltip
	OnLeave()
}

// View is a ChartView over a base surface and a transparent overlay.
// Draw may run from a timer goroutine while pointer events hover, so all
// surface access happens under mu.
type View struct {
	base    Surface
	overlay Surface

	mu    sync.Mutex
	frame Frame
}

func NewView(base, overlay Surface) *View {
	return &View{base: base, overlay: overlay, frame: Frame{Empty: true}}
}

func (v *View) Draw(points []types.ChartPoint, opts Options) Frame {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.base.SetFont(Font)
	v.frame = Layout(points, opts, v.base.MeasureText)
	Draw(v.base, v.frame)
	v.overlay.Clear(v.frame.Width, v.frame.Height)
	return v.frame
}

// OnHover ignores y: the tooltip follows the step interval under x.
func (v *View) OnHover(x, _ float64) *Tooltip {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.frame.Empty {
		return nil
	}
	v.overlay.SetFont(Font)
	t := v.frame.HoverAt(x, v.overlay.MeasureText)
	DrawTooltip(v.overlay, v.frame, t)
	return t
}

func (v *View) OnLeave() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.overlay.Clear(v.frame.Width, v.frame.Height)
}

// Frame returns the geometry of the last draw.
func (v *View) Frame() Frame {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.frame
}
