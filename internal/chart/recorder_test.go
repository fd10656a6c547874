package chart

import (
	"fmt"
	"unicode/utf8"
)

// recorder is a Surface that keeps every call for inspection.
type recorder struct {
	ops    []string
	texts  []string
	lines  [][]XY
	stroke string
	fill   string
}

// measure is the fixed-width font used by tests: 7px per rune.
func measure(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * 7
}

func (r *recorder) Clear(w, h float64) {
	r.ops = append(r.ops, fmt.Sprintf("clear %.0fx%.0f", w, h))
}
func (r *recorder) SetFont(font string) { r.ops = append(r.ops, "font "+font) }
func (r *recorder) SetFill(color string) { r.fill = color }
func (r *recorder) SetStroke(color string, width float64) {
	r.stroke = fmt.Sprintf("%s/%g", color, width)
}
func (r *recorder) SetText(align, baseline string) {
	r.ops = append(r.ops, "text "+align+" "+baseline)
}
func (r *recorder) FillText(text string, x, y float64) {
	r.texts = append(r.texts, text)
	r.ops = append(r.ops, fmt.Sprintf("fillText %q %.1f,%.1f %s", text, x, y, r.fill))
}
func (r *recorder) MeasureText(text string) float64 { return measure(text) }
func (r *recorder) Polyline(points []XY) {
	r.lines = append(r.lines, points)
	r.ops = append(r.ops, fmt.Sprintf("polyline %d %s", len(points), r.stroke))
}
func (r *recorder) FillRect(rect Rect) { r.ops = append(r.ops, fmt.Sprintf("fillRect %+v", rect)) }
func (r *recorder) StrokeRect(rect Rect) { r.ops = append(r.ops, fmt.Sprintf("strokeRect %+v", rect)) }
func (r *recorder) FillCircle(c XY, radius float64) {
	r.ops = append(r.ops, fmt.Sprintf("circle %.1f,%.1f r%g", c.X, c.Y, radius))
}

func (r *recorder) hasText(s string) bool {
	for _, t := range r.texts {
		if t == s {
			return true
		}
	}
	return false
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, op := range r.ops {
		if len(op) >= len(prefix) && op[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}
