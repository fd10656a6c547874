package validator

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"elektron/internal/modules/prices/types"
)

func TestParse_valid(t *testing.T) {
	tests := []struct {
		name                     string
		year, month, day, region string
		want                     types.Query
	}{
		{name: "lower bound", year: "2020", month: "1", day: "1", region: "NO1", want: types.Query{Year: 2020, Month: 1, Day: 1, Region: types.RegionNO1}},
		{name: "upper bound", year: "2030", month: "12", day: "31", region: "NO5", want: types.Query{Year: 2030, Month: 12, Day: 31, Region: types.RegionNO5}},
		{name: "leap day", year: "2024", month: "2", day: "29", region: "NO2", want: types.Query{Year: 2024, Month: 2, Day: 29, Region: types.RegionNO2}},
		{name: "zero padded", year: "2024", month: "06", day: "01", region: "NO3", want: types.Query{Year: 2024, Month: 6, Day: 1, Region: types.RegionNO3}},
		{name: "thirty day month end", year: "2025", month: "4", day: "30", region: "NO4", want: types.Query{Year: 2025, Month: 4, Day: 30, Region: types.RegionNO4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.year, tt.month, tt.day, tt.region)
			if err != nil {
				t.Fatalf("Parse() error = %v, want nil", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParse_everyValidDay(t *testing.T) {
	for y := MinYear; y <= MaxYear; y++ {
		for m := 1; m <= 12; m++ {
			for d := 1; d <= DaysInMonth(y, m); d++ {
				got, err := Parse(strconv.Itoa(y), strconv.Itoa(m), strconv.Itoa(d), "NO2")
				if err != nil {
					t.Fatalf("Parse(%d, %d, %d) error = %v", y, m, d, err)
				}
				if got.Year != y || got.Month != m || got.Day != d {
					t.Fatalf("Parse(%d, %d, %d) = %+v", y, m, d, got)
				}
			}
		}
	}
}

func TestParse_invalid(t *testing.T) {
	tests := []struct {
		name                     string
		year, month, day, region string
		kind                     Kind
		contains                 string
	}{
		{name: "year not a number", year: "abc", month: "1", day: "1", region: "NO1", kind: InvalidNumber},
		{name: "month not a number", year: "2024", month: "x", day: "1", region: "NO1", kind: InvalidNumber},
		{name: "day empty", year: "2024", month: "1", day: "", region: "NO1", kind: InvalidNumber},
		{name: "fractional day", year: "2024", month: "1", day: "1.5", region: "NO1", kind: InvalidNumber},
		{name: "plus-signed year", year: "+2024", month: "6", day: "1", region: "NO2", kind: InvalidNumber},
		{name: "plus-signed month", year: "2024", month: "+6", day: "1", region: "NO2", kind: InvalidNumber},
		{name: "minus-signed day", year: "2024", month: "6", day: "-1", region: "NO2", kind: InvalidNumber},
		{name: "year too low", year: "2019", month: "1", day: "1", region: "NO1", kind: YearOutOfRange, contains: "2020"},
		{name: "year too high", year: "2031", month: "1", day: "1", region: "NO1", kind: YearOutOfRange, contains: "2030"},
		{name: "month zero", year: "2024", month: "0", day: "1", region: "NO1", kind: MonthOutOfRange, contains: "12"},
		{name: "month thirteen", year: "2024", month: "13", day: "1", region: "NO2", kind: MonthOutOfRange, contains: "12"},
		{name: "day zero", year: "2024", month: "1", day: "0", region: "NO1", kind: DayOutOfRange, contains: "31"},
		{name: "leap year feb 30", year: "2024", month: "2", day: "30", region: "NO2", kind: DayOutOfRange, contains: "29"},
		{name: "common year feb 29", year: "2023", month: "2", day: "29", region: "NO2", kind: DayOutOfRange, contains: "28"},
		{name: "april 31", year: "2024", month: "4", day: "31", region: "NO2", kind: DayOutOfRange, contains: "30"},
		{name: "unknown region", year: "2024", month: "1", day: "1", region: "NO6", kind: InvalidRegion, contains: "NO1, NO2, NO3, NO4, NO5"},
		{name: "lowercase region", year: "2024", month: "1", day: "1", region: "no1", kind: InvalidRegion},
		{name: "number checked before region", year: "x", month: "1", day: "1", region: "SE3", kind: InvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.year, tt.month, tt.day, tt.region)
			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("Parse() error = %v, want *Error", err)
			}
			if verr.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", verr.Kind, tt.kind)
			}
			if tt.contains != "" && !strings.Contains(verr.Message, tt.contains) {
				t.Errorf("Message = %q, want it to mention %q", verr.Message, tt.contains)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		y, m, want int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{2000, 2, 29},
		{2100, 2, 28},
		{2024, 1, 31},
		{2024, 4, 30},
		{2024, 12, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.y, tt.m); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.y, tt.m, got, tt.want)
		}
	}
}
