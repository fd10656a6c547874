//go:build js && wasm

// Package canvas implements chart.Surface over an HTML canvas 2D context.
package canvas

import (
	"math"
	"syscall/js"

	"elektron/internal/chart"
)

// Canvas draws in CSS pixels onto a backing store scaled by devicePixelRatio.
type Canvas struct {
	el  js.Value
	ctx js.Value
	dpr float64
}

var _ chart.Surface = (*Canvas)(nil)

func New(el js.Value) *Canvas {
	return &Canvas{el: el, ctx: el.Call("getContext", "2d"), dpr: 1}
}

// Size returns the element's CSS size.
func (c *Canvas) Size() (w, h float64) {
	rect := c.el.Call("getBoundingClientRect")
	return rect.Get("width").Float(), rect.Get("height").Float()
}

// Resize matches the backing store to the element's CSS size times the
// current devicePixelRatio and returns the CSS size.
func (c *Canvas) Resize() (w, h float64) {
	w, h = c.Size()
	c.dpr = devicePixelRatio()
	c.el.Set("width", int(math.Round(w*c.dpr)))
	c.el.Set("height", int(math.Round(h*c.dpr)))
	c.ctx.Call("setTransform", c.dpr, 0, 0, c.dpr, 0, 0)
	return w, h
}

func devicePixelRatio() float64 {
	v := js.Global().Get("devicePixelRatio")
	if v.Type() != js.TypeNumber || v.Float() <= 0 {
		return 1
	}
	return v.Float()
}

func (c *Canvas) Clear(w, h float64) {
	c.ctx.Call("clearRect", 0, 0, w, h)
}

func (c *Canvas) SetFont(font string) {
	c.ctx.Set("font", font)
}

func (c *Canvas) SetFill(color string) {
	c.ctx.Set("fillStyle", color)
}

func (c *Canvas) SetStroke(color string, width float64) {
	c.ctx.Set("strokeStyle", color)
	c.ctx.Set("lineWidth", width)
}

func (c *Canvas) SetText(align, baseline string) {
	c.ctx.Set("textAlign", align)
	c.ctx.Set("textBaseline", baseline)
}

func (c *Canvas) FillText(text string, x, y float64) {
	c.ctx.Call("fillText", text, x, y)
}

func (c *Canvas) MeasureText(text string) float64 {
	return c.ctx.Call("measureText", text).Get("width").Float()
}

func (c *Canvas) Polyline(points []chart.XY) {
	if len(points) < 2 {
		return
	}
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.ctx.Call("lineTo", p.X, p.Y)
	}
	c.ctx.Call("stroke")
}

func (c *Canvas) FillRect(r chart.Rect) {
	c.ctx.Call("fillRect", r.X, r.Y, r.W, r.H)
}

func (c *Canvas) StrokeRect(r chart.Rect) {
	c.ctx.Call("strokeRect", r.X, r.Y, r.W, r.H)
}

func (c *Canvas) FillCircle(center chart.XY, radius float64) {
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", center.X, center.Y, radius, 0, 2*math.Pi)
	c.ctx.Call("fill")
}
