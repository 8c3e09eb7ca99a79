package day

import (
	"fmt"
	"time"
)

// Unit names a calendar or clock unit.
type Unit string

const (
	Millisecond Unit = "millisecond"
	Second      Unit = "second"
	Minute      Unit = "minute"
	Hour        Unit = "hour"
	Day         Unit = "day"
	Week        Unit = "week"
	Month       Unit = "month"
	Year        Unit = "year"
)

// Span lengths used for durations; months and years are the usual
// 30 and 365 day approximations.
const (
	msSecond = 1000.0
	msMinute = 60 * msSecond
	msHour   = 60 * msMinute
	msDay    = 24 * msHour
	msWeek   = 7 * msDay
	msMonth  = 30 * msDay
	msYear   = 365 * msDay
)

var unitAliases = map[string]Unit{
	"ms": Millisecond, "millisecond": Millisecond, "milliseconds": Millisecond,
	"s": Second, "second": Second, "seconds": Second,
	"m": Minute, "minute": Minute, "minutes": Minute,
	"h": Hour, "hour": Hour, "hours": Hour,
	"d": Day, "day": Day, "days": Day,
	"w": Week, "week": Week, "weeks": Week,
	"M": Month, "month": Month, "months": Month,
	"y": Year, "year": Year, "years": Year,
}

// ParseUnit accepts singular, plural and short unit names.
// "m" is minutes and "M" is months.
func ParseUnit(s string) (Unit, error) {
	if u, ok := unitAliases[s]; ok {
		return u, nil
	}
	return "", fmt.Errorf("%w: unknown unit %q", ErrInvalidArgument, s)
}

func (u Unit) milliseconds() (float64, bool) {
	switch u {
	case Millisecond:
		return 1, true
	case Second:
		return msSecond, true
	case Minute:
		return msMinute, true
	case Hour:
		return msHour, true
	case Day:
		return msDay, true
	case Week:
		return msWeek, true
	case Month:
		return msMonth, true
	case Year:
		return msYear, true
	}
	return 0, false
}

func (u Unit) clock() (time.Duration, bool) {
	switch u {
	case Millisecond:
		return time.Millisecond, true
	case Second:
		return time.Second, true
	case Minute:
		return time.Minute, true
	case Hour:
		return time.Hour, true
	}
	return 0, false
}
