//go:build js && wasm

// Command chartwasm is the browser side of elektron: it draws the price chart
// onto the page canvas and drives navigation, region and threshold controls.
package main

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"syscall/js"
	"time"

	"elektron/internal/chart"
	"elektron/internal/chart/canvas"
	"elektron/internal/modules/prices/types"
	"elektron/internal/page"
)

const fetchTimeout = 30 * time.Second

type app struct {
	doc     js.Value
	origin  string
	client  *http.Client
	base    *canvas.Canvas
	overlay *canvas.Canvas
	view    *chart.View
	resize  *page.Debouncer

	mu    sync.Mutex
	state page.State
	seq   int

	// drawMu serializes canvas resizes with hover drawing; redraw also runs from the resize timer.
	drawMu sync.Mutex

	// keep callbacks alive for the page lifetime
	funcs []js.Func
}

func main() {
	doc := js.Global().Get("document")
	a := &app{
		doc:     doc,
		origin:  js.Global().Get("location").Get("origin").String(),
		client:  &http.Client{Timeout: fetchTimeout},
		base:    canvas.New(doc.Call("getElementById", "priceGraph")),
		overlay: canvas.New(doc.Call("getElementById", "priceHover")),
	}
	a.view = chart.NewView(a.base, a.overlay)
	a.resize = page.NewDebouncer(page.ResizeDelay, a.redraw)

	a.state = a.initialState()
	a.bind()
	a.render()

	select {}
}

func (a *app) initialState() page.State {
	now := time.Now()
	region := types.RegionNO2

	in, err := page.DecodeInitial(a.byID("initial-data").Get("textContent").String())
	if err != nil {
		js.Global().Get("console").Call("error", err.Error())
		return page.New(now, region).Failed(err)
	}
	if r, ok := types.ParseRegion(string(in.Region)); ok {
		region = r
	}
	if d, err := time.ParseInLocation(time.DateOnly, in.Date, time.Local); err == nil {
		now = d
	}

	s := page.New(now, region)
	if in.Error != "" {
		return s.Failed(errors.New(in.Error))
	}
	return s.Loaded(in.Points)
}

func (a *app) bind() {
	for _, el := range a.all("[data-nav]") {
		nav := el.Get("dataset").Get("nav").String()
		a.on(el, "click", func(js.Value) {
			s := a.current()
			switch nav {
			case "prev":
				a.load(s.PrevDay())
			case "next":
				a.load(s.NextDay())
			case "today":
				a.load(s.Today(time.Now()))
			}
		})
	}

	sel := a.byID("region")
	sel.Set("value", string(a.current().Region))
	a.on(sel, "change", func(js.Value) {
		if r, ok := types.ParseRegion(sel.Get("value").String()); ok {
			a.load(a.current().WithRegion(r))
		}
	})

	for _, el := range a.all("[data-threshold]") {
		name := el.Get("dataset").Get("threshold").String()
		a.on(el, "click", func(js.Value) {
			a.mu.Lock()
			a.state = a.state.Toggle(name)
			a.mu.Unlock()
			a.render()
		})
	}

	price := a.byID("priceGraph")
	a.on(price, "mousemove", func(ev js.Value) {
		rect := price.Call("getBoundingClientRect")
		x := ev.Get("clientX").Float() - rect.Get("left").Float()
		y := ev.Get("clientY").Float() - rect.Get("top").Float()
		a.drawMu.Lock()
		defer a.drawMu.Unlock()
		a.view.OnHover(x, y)
	})
	a.on(price, "mouseleave", func(js.Value) {
		a.drawMu.Lock()
		defer a.drawMu.Unlock()
		a.view.OnLeave()
	})

	a.on(js.Global(), "resize", func(js.Value) { a.resize.Trigger() })
}

func (a *app) on(target js.Value, event string, fn func(ev js.Value)) {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	a.funcs = append(a.funcs, f)
	target.Call("addEventListener", event, f)
}

func (a *app) current() page.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// load switches to s and fetches its day. Results of superseded loads are dropped.
func (a *app) load(s page.State) {
	a.mu.Lock()
	a.seq++
	seq := a.seq
	a.state = s
	a.mu.Unlock()
	a.render()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		points, err := page.FetchPoints(ctx, a.client, a.origin+s.PricesPath())

		a.mu.Lock()
		if seq != a.seq {
			a.mu.Unlock()
			return
		}
		if err != nil {
			a.state = a.state.Failed(err)
		} else {
			a.state = a.state.Loaded(points)
		}
		a.mu.Unlock()
		a.render()
	}()
}

func (a *app) render() {
	s := a.current()

	a.byID("header").Set("textContent", s.Header())
	for _, el := range a.all("[data-threshold]") {
		on := enabled(s.Thresholds, el.Get("dataset").Get("threshold").String())
		el.Get("classList").Call("toggle", "active", on)
		el.Call("setAttribute", "aria-pressed", on)
	}

	switch s.Status {
	case page.StatusLoading:
		a.show("loading", true)
		a.show("graphContainer", false)
		a.show("error", false)
		a.show("statistics", false)
	case page.StatusFailed:
		a.show("loading", false)
		a.show("graphContainer", false)
		a.byID("error").Set("textContent", s.Err)
		a.show("error", true)
		a.show("statistics", false)
	case page.StatusReady:
		a.show("loading", false)
		a.show("error", false)
		a.show("graphContainer", true)
		if st, ok := page.ComputeStats(s.Points); ok {
			a.byID("statistics").Set("textContent", st.String())
			a.show("statistics", true)
		}
		a.redraw()
	}
}

// redraw resizes both canvases to the container and draws the current state.
func (a *app) redraw() {
	s := a.current()
	if s.Status != page.StatusReady {
		return
	}
	a.drawMu.Lock()
	defer a.drawMu.Unlock()
	w, h := a.base.Resize()
	a.overlay.Resize()
	a.view.Draw(s.Points, s.ChartOptions(w, h))
}

func enabled(t chart.Thresholds, name string) bool {
	switch name {
	case "zero":
		return t.Zero
	case "fifty":
		return t.Fifty
	case "seventyFive":
		return t.SeventyFive
	}
	return false
}

func (a *app) byID(id string) js.Value {
	return a.doc.Call("getElementById", id)
}

func (a *app) all(selector string) []js.Value {
	list := a.doc.Call("querySelectorAll", selector)
	out := make([]js.Value, list.Length())
	for i := range out {
		out[i] = list.Index(i)
	}
	return out
}

func (a *app) show(id string, visible bool) {
	display := "none"
	if visible {
		display = "block"
	}
	a.byID(id).Get("style").Set("display", display)
}
