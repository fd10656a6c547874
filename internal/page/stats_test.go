package page

import (
	"testing"

	"elektron/internal/modules/prices/types"
)

func TestComputeStats(t *testing.T) {
	if _, ok := ComputeStats(nil); ok {
		t.Error("ComputeStats(nil) ok = true")
	}

	st, ok := ComputeStats([]types.ChartPoint{{Price: 12.5}, {Price: -2.5}, {Price: 50}})
	if !ok {
		t.Fatal("ComputeStats() ok = false")
	}
	if st != (Stats{Min: -2.5, Avg: 20, Max: 50}) {
		t.Errorf("ComputeStats() = %+v", st)
	}
	if got := st.String(); got != "MAKS: 50.0 • SNITT: 20.0 • MIN: -2.5" {
		t.Errorf("String() = %q", got)
	}
}
