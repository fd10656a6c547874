package validator

import (
	"fmt"
	"strconv"
	"time"

	"elektron/internal/modules/prices/types"
)

const (
	MinYear = 2020
	MaxYear = 2030
)

type Kind string

const (
	InvalidNumber   Kind = "invalid_number"
	YearOutOfRange  Kind = "year_out_of_range"
	MonthOutOfRange Kind = "month_out_of_range"
	DayOutOfRange   Kind = "day_out_of_range"
	InvalidRegion   Kind = "invalid_region"
)

// Error is a user-correctable problem with the requested date or region.
// Message is the Norwegian text returned to the client.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Parse validates raw path parameters and returns the typed query.
// Checks run in order: numbers, year, month, day, region.
func Parse(year, month, day, region string) (types.Query, error) {
	y, errY := atoi(year)
	m, errM := atoi(month)
	d, errD := atoi(day)
	if errY != nil || errM != nil || errD != nil {
		return types.Query{}, &Error{Kind: InvalidNumber, Message: "Ugyldig tall i dato"}
	}

	if y < MinYear || y > MaxYear {
		return types.Query{}, &Error{
			Kind:    YearOutOfRange,
			Message: fmt.Sprintf("År må være mellom %d og %d", MinYear, MaxYear),
		}
	}
	if m < 1 || m > 12 {
		return types.Query{}, &Error{Kind: MonthOutOfRange, Message: "Måned må være mellom 1 og 12"}
	}
	if n := DaysInMonth(y, m); d < 1 || d > n {
		return types.Query{}, &Error{
			Kind:    DayOutOfRange,
			Message: fmt.Sprintf("Dag må være mellom 1 og %d", n),
		}
	}

	r, ok := types.ParseRegion(region)
	if !ok {
		return types.Query{}, &Error{
			Kind:    InvalidRegion,
			Message: "Ugyldig region. Gyldige regioner: " + types.RegionList(),
		}
	}

	return types.Query{Year: y, Month: m, Day: d, Region: r}, nil
}

// atoi accepts unsigned decimal digits only; strconv.Atoi alone would take a sign.
func atoi(s string) (int, error) {
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// DaysInMonth returns the Gregorian length of month m in year y.
func DaysInMonth(y, m int) int {
	// Day 0 of the following month normalises to the last day of m.
	return time.Date(y, time.Month(m)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
