package views

import (
	"errors"
	"html/template"
	"io"
	"io/fs"

	"elektron/internal/chart"
	"elektron/internal/modules/prices/types"
	"elektron/internal/page"
)

var indexTmpl *template.Template

// loadTemplatesFromFS loads the page template from the given fs and dir.
// Used by LoadTemplates and by tests to simulate failure scenarios.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	indexTmpl, err = template.ParseFS(sub, "*.html")
	if err != nil {
		return err
	}
	return nil
}

// LoadTemplates loads the embedded page template. Call during startup before
// serving requests; if it returns an error, do not start the server.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

// ThresholdToggle is the view model for one reference-line button.
type ThresholdToggle struct {
	Name  string
	Label string
	Color string
}

// Toggles lists the threshold buttons in display order. Names match page.State.Toggle.
var Toggles = []ThresholdToggle{
	{Name: "zero", Label: chart.ThresholdZero.Label, Color: chart.ThresholdZero.Color},
	{Name: "fifty", Label: chart.ThresholdFifty.Label, Color: chart.ThresholdFifty.Color},
	{Name: "seventyFive", Label: chart.ThresholdSeventyFive.Label, Color: chart.ThresholdSeventyFive.Color},
}

type IndexData struct {
	Header     string
	Regions    []types.Region
	Thresholds []ThresholdToggle
	// Initial is inlined as JSON for the chart client.
	Initial page.Initial
}

// NewIndexData builds the page model for the day and region of s.
func NewIndexData(s page.State, points []types.ChartPoint, loadErr string) *IndexData {
	return &IndexData{
		Header:     s.Header(),
		Regions:    types.Regions,
		Thresholds: Toggles,
		Initial: page.Initial{
			Date:   s.Query().Date(),
			Region: s.Region,
			Points: points,
			Error:  loadErr,
		},
	}
}

func RenderIndex(w io.Writer, data *IndexData) error {
	if indexTmpl == nil {
		return errors.New("index template not loaded: call views.LoadTemplates during startup")
	}
	return indexTmpl.ExecuteTemplate(w, "index.html", data)
}
