package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"elektron/internal/modules/prices/types"
)

const sampleBody = `[
  {"NOK_per_kWh":0.5,"EUR_per_kWh":0.04,"EXR":11.5,"time_start":"2024-06-01T00:00:00+02:00","time_end":"2024-06-01T01:00:00+02:00"},
  {"NOK_per_kWh":0.75,"EUR_per_kWh":0.065,"EXR":11.5,"time_start":"2024-06-01T01:00:00+02:00","time_end":"2024-06-01T02:00:00+02:00"}
]`

func TestClient_URL(t *testing.T) {
	c := NewClient("https://example.com/api/v1", 0, nil, nil)

	got := c.URL(types.Query{Year: 2024, Month: 6, Day: 1, Region: types.RegionNO2})
	want := "https://example.com/api/v1/prices/2024/06-01_NO2.json"
	if got != want {
		t.Errorf("URL() = %q; want %q", got, want)
	}

	got = c.URL(types.Query{Year: 2025, Month: 12, Day: 24, Region: types.RegionNO5})
	want = "https://example.com/api/v1/prices/2025/12-24_NO5.json"
	if got != want {
		t.Errorf("URL() = %q; want %q", got, want)
	}
}

func TestClient_GetPrices(t *testing.T) {
	t.Run("decodes records on success", func(t *testing.T) {
		var gotPath string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(sampleBody))
		}))
		t.Cleanup(ts.Close)

		c := NewClient(ts.URL+"/api/v1", 0, nil, nil)
		records, err := c.GetPrices(context.Background(), types.Query{Year: 2024, Month: 6, Day: 1, Region: types.RegionNO2})
		if err != nil {
			t.Fatalf("GetPrices() error = %v; want nil", err)
		}
		if gotPath != "/api/v1/prices/2024/06-01_NO2.json" {
			t.Errorf("path = %q; want /api/v1/prices/2024/06-01_NO2.json", gotPath)
		}
		if len(records) != 2 {
			t.Fatalf("len(records) = %d; want 2", len(records))
		}
		if records[0].NOKPerKWh != 0.5 || records[0].EURPerKWh != 0.04 || records[0].TimeStart != "2024-06-01T00:00:00+02:00" {
			t.Errorf("records[0] = %+v", records[0])
		}
		if records[1].TimeEnd != "2024-06-01T02:00:00+02:00" {
			t.Errorf("records[1].TimeEnd = %q", records[1].TimeEnd)
		}
	})

	t.Run("empty array is not an error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		t.Cleanup(ts.Close)

		c := NewClient(ts.URL, 0, nil, nil)
		records, err := c.GetPrices(context.Background(), types.Query{Year: 2024, Month: 6, Day: 1, Region: types.RegionNO1})
		if err != nil {
			t.Fatalf("GetPrices() error = %v; want nil", err)
		}
		if len(records) != 0 {
			t.Errorf("len(records) = %d; want 0", len(records))
		}
	})

	failures := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{name: "not found", handler: func(w http.ResponseWriter, r *http.Request) { http.NotFound(w, r) }},
		{name: "server error", handler: func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{name: "malformed body", handler: func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"not":"an array"`))
		}},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			t.Cleanup(ts.Close)

			c := NewClient(ts.URL, 0, nil, nil)
			_, err := c.GetPrices(context.Background(), types.Query{Year: 2024, Month: 6, Day: 1, Region: types.RegionNO2})
			if !errors.Is(err, ErrUpstreamUnavailable) {
				t.Errorf("GetPrices() error = %v; want ErrUpstreamUnavailable", err)
			}
		})
	}

	t.Run("network failure", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := ts.URL
		ts.Close()

		c := NewClient(url, 0, nil, nil)
		_, err := c.GetPrices(context.Background(), types.Query{Year: 2024, Month: 6, Day: 1, Region: types.RegionNO2})
		if !errors.Is(err, ErrUpstreamUnavailable) {
			t.Errorf("GetPrices() error = %v; want ErrUpstreamUnavailable", err)
		}
	})
}

func TestClient_metrics(t *testing.T) {
	var failing atomic.Bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			http.Error(w, "down", http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(sampleBody))
	}))
	t.Cleanup(ts.Close)

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	c := NewClient(ts.URL, 0, nil, m)
	q := types.Query{Year: 2024, Month: 6, Day: 1, Region: types.RegionNO3}

	_, _ = c.GetPrices(context.Background(), q)
	failing.Store(true)
	_, _ = c.GetPrices(context.Background(), q)

	if got := testutil.ToFloat64(m.Requests.WithLabelValues("NO3", "ok")); got != 1 {
		t.Errorf("ok requests = %v; want 1", got)
	}
	if got := testutil.ToFloat64(m.Requests.WithLabelValues("NO3", "error")); got != 1 {
		t.Errorf("error requests = %v; want 1", got)
	}
}
