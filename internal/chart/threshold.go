package chart

// Threshold is a fixed reference price drawn across the plot.
type Threshold struct {
	Value float64
	Label string
	Color string
}

var (
	ThresholdZero        = Threshold{Value: 0, Label: "0 øre", Color: "#1565c0"}
	ThresholdFifty       = Threshold{Value: 50, Label: "50 øre", Color: "#ef6c00"}
	ThresholdSeventyFive = Threshold{Value: 75, Label: "75 øre", Color: "#c62828"}
)

// Thresholds records which reference lines are switched on.
type Thresholds struct {
	Zero        bool
	Fifty       bool
	SeventyFive bool
}

// Enabled returns the switched-on thresholds in ascending price order.
func (t Thresholds) Enabled() []Threshold {
	var out []Threshold
	if t.Zero {
		out = append(out, ThresholdZero)
	}
	if t.Fifty {
		out = append(out, ThresholdFifty)
	}
	if t.SeventyFive {
		out = append(out, ThresholdSeventyFive)
	}
	return out
}
