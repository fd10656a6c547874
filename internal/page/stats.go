package page

import (
	"fmt"

	"elektron/internal/modules/prices/types"
)

type Stats struct {
	Min, Avg, Max float64
}

// ComputeStats returns min/avg/max price in øre, and false for no points.
func ComputeStats(points []types.ChartPoint) (Stats, bool) {
	if len(points) == 0 {
		return Stats{}, false
	}
	st := Stats{Min: points[0].Price, Max: points[0].Price}
	var sum float64
	for _, p := range points {
		sum += p.Price
		st.Min = min(st.Min, p.Price)
		st.Max = max(st.Max, p.Price)
	}
	st.Avg = sum / float64(len(points))
	return st, true
}

func (s Stats) String() string {
	return fmt.Sprintf("MAKS: %.1f • SNITT: %.1f • MIN: %.1f", s.Max, s.Avg, s.Min)
}
