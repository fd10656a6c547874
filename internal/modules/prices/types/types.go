package types

import (
	"fmt"
	"strings"
	"time"
)

// PriceRecord is one hourly entry as returned by the upstream price API.
type PriceRecord struct {
	NOKPerKWh float64 `json:"NOK_per_kWh"`
	EURPerKWh float64 `json:"EUR_per_kWh"`
	EXR       float64 `json:"EXR,omitempty"`
	TimeStart string  `json:"time_start"`
	TimeEnd   string  `json:"time_end,omitempty"`
}

// ChartPoint is the hourly shape consumed by the chart. Price is in øre/kWh.
type ChartPoint struct {
	Hour     int     `json:"hour"`
	Price    float64 `json:"price"`
	Time     string  `json:"time"`
	PriceNOK float64 `json:"price_nok"`
	PriceEUR float64 `json:"price_eur"`
}

type Region string

const (
	RegionNO1 Region = "NO1"
	RegionNO2 Region = "NO2"
	RegionNO3 Region = "NO3"
	RegionNO4 Region = "NO4"
	RegionNO5 Region = "NO5"
)

// Regions lists the Norwegian price zones in display order.
var Regions = []Region{RegionNO1, RegionNO2, RegionNO3, RegionNO4, RegionNO5}

// ParseRegion matches s exactly against the known zones.
func ParseRegion(s string) (Region, bool) {
	for _, r := range Regions {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// RegionList returns the zones joined for use in messages, e.g. "NO1, NO2, ...".
func RegionList() string {
	names := make([]string, len(Regions))
	for i, r := range Regions {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}

// Query is a validated date and region.
type Query struct {
	Year   int
	Month  int
	Day    int
	Region Region
}

// QueryFor returns the query for the calendar day of t in its own location.
func QueryFor(t time.Time, region Region) Query {
	return Query{Year: t.Year(), Month: int(t.Month()), Day: t.Day(), Region: region}
}

// Date returns the ISO date, e.g. "2024-06-01".
func (q Query) Date() string {
	return fmt.Sprintf("%04d-%02d-%02d", q.Year, q.Month, q.Day)
}
