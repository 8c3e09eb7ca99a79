package day

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Span is a signed length of time measured in milliseconds. Months and years
// use 30 and 365 day approximations.
type Span struct {
	ms     float64
	engine *Engine
	locale *Locale
}

// Duration creates a span of amount units. Requires the Duration capability.
func (e *Engine) Duration(amount float64, u Unit) (Span, error) {
	if !e.Has(Duration) {
		return Span{}, fmt.Errorf("%w: %s", ErrCapabilityDisabled, Duration)
	}
	per, ok := u.milliseconds()
	if !ok {
		return Span{}, fmt.Errorf("%w: unknown unit %q", ErrInvalidArgument, u)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Span{}, fmt.Errorf("%w: amount %v", ErrInvalidArgument, amount)
	}
	return Span{ms: amount * per, engine: e, locale: e.defaultLocaleData()}, nil
}

// DurationOf wraps a time.Duration. Requires the Duration capability.
func (e *Engine) DurationOf(d time.Duration) (Span, error) {
	return e.Duration(float64(d.Milliseconds()), Millisecond)
}

// Milliseconds returns the span length in milliseconds.
func (s Span) Milliseconds() float64 { return s.ms }

// Std converts to time.Duration, truncating below a millisecond. Spans
// beyond the time.Duration range saturate at its bounds.
func (s Span) Std() time.Duration {
	ns := math.Trunc(s.ms) * float64(time.Millisecond)
	switch {
	case ns >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case ns <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(math.Trunc(s.ms)) * time.Millisecond
}

// As returns the span measured in u. Unknown units return milliseconds.
func (s Span) As(u Unit) float64 {
	per, ok := u.milliseconds()
	if !ok {
		return s.ms
	}
	return s.ms / per
}

// Add returns s + o.
func (s Span) Add(o Span) Span {
	s.ms += o.ms
	return s
}

// Subtract returns s - o.
func (s Span) Subtract(o Span) Span {
	s.ms -= o.ms
	return s
}

// Compare returns -1, 0 or +1.
func (s Span) Compare(o Span) int {
	switch {
	case s.ms < o.ms:
		return -1
	case s.ms > o.ms:
		return 1
	default:
		return 0
	}
}

// Locale returns a copy humanized in the given loaded locale.
func (s Span) Locale(tag string) (Span, error) {
	loc, err := s.engine.Locale(tag)
	if err != nil {
		return s, err
	}
	s.locale = loc
	return s, nil
}

// Humanize renders the span the way relative time renders an instant that
// far from now: "3 hours", or with suffix "in 3 hours" / "3 hours ago".
// Requires the RelativeTime capability.
func (s Span) Humanize(withSuffix bool) (string, error) {
	if !s.engine.Has(RelativeTime) {
		return "", fmt.Errorf("%w: %s", ErrCapabilityDisabled, RelativeTime)
	}
	if math.Abs(s.ms) > maxHumanizeMs {
		return "", fmt.Errorf("%w: span of %v years", ErrInvalidArgument, s.As(Year))
	}
	now := s.engine.now()
	target := shift(now, s.ms)
	return s.engine.relative(s.locale, func(u Unit) float64 { return diff(target, now, u) }, !withSuffix), nil
}

// maxHumanizeMs bounds Humanize to spans time.Time can represent from now.
const maxHumanizeMs = 1e6 * msYear

// shift adds ms to t in whole days plus a remainder, so spans longer than
// time.Duration can hold keep their sign.
func shift(t time.Time, ms float64) time.Time {
	days := math.Trunc(ms / msDay)
	rest := ms - days*msDay
	return t.AddDate(0, 0, int(days)).Add(time.Duration(rest) * time.Millisecond)
}

// ISO renders an ISO 8601 duration such as "PT3H" or "P1Y2M3DT4H5M6S".
func (s Span) ISO() string {
	ms := s.ms
	sign := ""
	if ms < 0 {
		sign = "-"
		ms = -ms
	}

	years := math.Floor(ms / msYear)
	ms -= years * msYear
	months := math.Floor(ms / msMonth)
	ms -= months * msMonth
	days := math.Floor(ms / msDay)
	ms -= days * msDay
	hours := math.Floor(ms / msHour)
	ms -= hours * msHour
	minutes := math.Floor(ms / msMinute)
	ms -= minutes * msMinute
	seconds := ms / msSecond

	var date, clock strings.Builder
	writePart(&date, years, "Y")
	writePart(&date, months, "M")
	writePart(&date, days, "D")
	writePart(&clock, hours, "H")
	writePart(&clock, minutes, "M")
	writePart(&clock, seconds, "S")

	if date.Len() == 0 && clock.Len() == 0 {
		return "P0D"
	}

	out := sign + "P" + date.String()
	if clock.Len() > 0 {
		out += "T" + clock.String()
	}
	return out
}

func writePart(b *strings.Builder, v float64, suffix string) {
	if v == 0 {
		return
	}
	b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	b.WriteString(suffix)
}
