package transform

import (
	"time"

	"elektron/internal/modules/prices/types"
)

// ToChart maps upstream records to chart points, preserving order and length.
// The hour is read in loc; a nil loc keeps the offset carried by the timestamp.
// Records whose time_start does not parse get hour 0.
func ToChart(records []types.PriceRecord, loc *time.Location) []types.ChartPoint {
	points := make([]types.ChartPoint, 0, len(records))
	for _, rec := range records {
		points = append(points, types.ChartPoint{
			Hour:     hourOf(rec.TimeStart, loc),
			Price:    rec.NOKPerKWh * 100,
			Time:     rec.TimeStart,
			PriceNOK: rec.NOKPerKWh,
			PriceEUR: rec.EURPerKWh,
		})
	}
	return points
}

func hourOf(ts string, loc *time.Location) int {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return 0
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Hour()
}
