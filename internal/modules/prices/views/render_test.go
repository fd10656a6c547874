package views

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"elektron/internal/modules/prices/types"
	"elektron/internal/page"
)

func TestLoadTemplates_success(t *testing.T) {
	err := LoadTemplates()
	if err != nil {
		t.Fatalf("LoadTemplates() = %v; want nil", err)
	}
	if indexTmpl == nil {
		t.Fatal("LoadTemplates() left indexTmpl nil")
	}
}

func TestLoadTemplates_failure_sub(t *testing.T) {
	// Empty FS has no "templates" directory; fs.Sub fails.
	emptyFS := fstest.MapFS{}
	err := loadTemplatesFromFS(emptyFS, "templates")
	if err == nil {
		t.Fatal("loadTemplatesFromFS(emptyFS, \"templates\") = nil; want error")
	}
}

func TestLoadTemplates_failure_parse(t *testing.T) {
	badFS := fstest.MapFS{
		"templates/index.html": {Data: []byte("{{ .")},
	}
	err := loadTemplatesFromFS(badFS, "templates")
	if err == nil {
		t.Fatal("loadTemplatesFromFS(badFS, \"templates\") = nil; want error")
	}
}

func TestRenderIndex_notLoaded(t *testing.T) {
	prev := indexTmpl
	indexTmpl = nil
	t.Cleanup(func() { indexTmpl = prev })

	var buf bytes.Buffer
	err := RenderIndex(&buf, &IndexData{})
	if err == nil {
		t.Fatal("RenderIndex() = nil; want error when templates not loaded")
	}
	if !strings.Contains(err.Error(), "not loaded") {
		t.Errorf("err = %q; want message containing \"not loaded\"", err.Error())
	}
}

func render(t *testing.T, data *IndexData) string {
	t.Helper()
	if err := LoadTemplates(); err != nil {
		t.Fatalf("LoadTemplates(): %v", err)
	}
	var buf bytes.Buffer
	if err := RenderIndex(&buf, data); err != nil {
		t.Fatalf("RenderIndex() = %v; want nil", err)
	}
	return buf.String()
}

func TestRenderIndex_withData(t *testing.T) {
	s := page.New(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), types.RegionNO3)
	points := []types.ChartPoint{{Hour: 0, Price: 50, Time: "2024-06-01T00:00:00+02:00", PriceNOK: 0.5, PriceEUR: 0.04}}
	out := render(t, NewIndexData(s, points, ""))

	for _, want := range []string{
		"<!DOCTYPE html>",
		"STRØMPRISER 01-06-2024 (NO3) - øre/kWh",
		`<option value="NO3" selected>`,
		`data-threshold="seventyFive"`,
		`id="priceGraph"`,
		`id="priceHover"`,
		"/static/wasm_exec.js",
		"/static/chart.wasm",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	raw := between(out, `<script id="initial-data" type="application/json">`, "</script>")
	in, err := page.DecodeInitial(raw)
	if err != nil {
		t.Fatalf("inlined data %q: %v", raw, err)
	}
	if in.Date != "2024-06-01" || in.Region != types.RegionNO3 || len(in.Points) != 1 || in.Points[0].Price != 50 {
		t.Errorf("inlined data = %+v", in)
	}
}

func TestRenderIndex_upstreamFailure(t *testing.T) {
	s := page.New(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), types.RegionNO2)
	out := render(t, NewIndexData(s, nil, "Kunne ikke hente strømpriser"))

	raw := between(out, `<script id="initial-data" type="application/json">`, "</script>")
	in, err := page.DecodeInitial(raw)
	if err != nil {
		t.Fatalf("inlined data %q: %v", raw, err)
	}
	if in.Points != nil || in.Error != "Kunne ikke hente strømpriser" {
		t.Errorf("inlined data = %+v; want null points and error", in)
	}
	if !strings.Contains(out, `"points":null`) {
		t.Errorf("inlined data %q; want null points", raw)
	}
}

func between(s, start, end string) string {
	_, after, ok := strings.Cut(s, start)
	if !ok {
		return ""
	}
	inner, _, _ := strings.Cut(after, end)
	return inner
}
