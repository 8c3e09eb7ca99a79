package day

import (
	"fmt"
	"strings"
	"time"
)

// Time is an instant bound to an engine and a locale. The zero value is not
// usable; obtain instances from an Engine.
type Time struct {
	t      time.Time
	engine *Engine
	locale *Locale
}

// Time returns the underlying time.Time.
func (t Time) Time() time.Time { return t.t }

// Unix returns seconds since the Unix epoch.
func (t Time) Unix() int64 { return t.t.Unix() }

// IsZero reports whether t carries the zero instant.
func (t Time) IsZero() bool { return t.t.IsZero() }

// String renders RFC 3339.
func (t Time) String() string { return t.t.Format(time.RFC3339) }

// LocaleTag returns the tag used by Format and relative rendering.
func (t Time) LocaleTag() string {
	if t.locale == nil {
		return ""
	}
	return t.locale.tag
}

// Locale returns a copy rendered in the given loaded locale.
func (t Time) Locale(tag string) (Time, error) {
	loc, err := t.engine.Locale(tag)
	if err != nil {
		return t, err
	}
	t.locale = loc
	return t, nil
}

// In converts to the named IANA zone. Requires the Timezone capability.
func (t Time) In(tz string) (Time, error) {
	if !t.engine.Has(Timezone) {
		return t, fmt.Errorf("%w: %s", ErrCapabilityDisabled, Timezone)
	}
	loc, err := loadZone(tz)
	if err != nil {
		return t, err
	}
	t.t = t.t.In(loc)
	return t, nil
}

// UTC converts to UTC. Requires the UTC capability.
func (t Time) UTC() (Time, error) {
	if !t.engine.Has(UTC) {
		return t, fmt.Errorf("%w: %s", ErrCapabilityDisabled, UTC)
	}
	t.t = t.t.UTC()
	return t, nil
}

// Local converts to the process local zone.
func (t Time) Local() Time {
	t.t = t.t.Local()
	return t
}

// Add moves t by n units. Months and years clamp to the end of the target
// month (Jan 31 + 1 month is the last day of February).
// Unknown units leave t unchanged.
func (t Time) Add(n int, u Unit) Time {
	if d, ok := u.clock(); ok {
		t.t = t.t.Add(time.Duration(n) * d)
		return t
	}
	switch u {
	case Day:
		t.t = t.t.AddDate(0, 0, n)
	case Week:
		t.t = t.t.AddDate(0, 0, 7*n)
	case Month:
		t.t = addMonths(t.t, n)
	case Year:
		t.t = addMonths(t.t, 12*n)
	}
	return t
}

// Subtract moves t back by n units.
func (t Time) Subtract(n int, u Unit) Time {
	return t.Add(-n, u)
}

// Diff returns t - o measured in u, with a fractional part.
// Day and week differences ignore DST offset changes between the two instants.
func (t Time) Diff(o Time, u Unit) float64 {
	return diff(t.t, o.t, u)
}

// IsBefore reports whether t is before o.
func (t Time) IsBefore(o Time) bool { return t.t.Before(o.t) }

// IsAfter reports whether t is after o.
func (t Time) IsAfter(o Time) bool { return t.t.After(o.t) }

// Equal reports whether t and o are the same instant.
func (t Time) Equal(o Time) bool { return t.t.Equal(o.t) }

// Format renders t with a Go layout. Month and weekday names ("January",
// "Jan", "Monday", "Mon") are replaced by the locale's names.
func (t Time) Format(layout string) string {
	if t.locale == nil {
		return t.t.Format(layout)
	}

	var b strings.Builder
	for layout != "" {
		idx, tok := nextNameToken(layout)
		if idx < 0 {
			b.WriteString(t.t.Format(layout))
			break
		}
		if idx > 0 {
			b.WriteString(t.t.Format(layout[:idx]))
		}
		switch tok {
		case "January":
			b.WriteString(t.locale.months[t.t.Month()-1])
		case "Jan":
			b.WriteString(t.locale.monthsShort[t.t.Month()-1])
		case "Monday":
			b.WriteString(t.locale.weekdays[t.t.Weekday()])
		case "Mon":
			b.WriteString(t.locale.weekdaysShort[t.t.Weekday()])
		}
		layout = layout[idx+len(tok):]
	}
	return b.String()
}

// FromNow renders t relative to the engine clock ("3 hari yang lalu").
// Requires the RelativeTime capability.
func (t Time) FromNow() (string, error) {
	return t.From(t.engine.From(t.engine.now()))
}

// From renders t relative to o.
func (t Time) From(o Time) (string, error) {
	return t.relativeTo(func(u Unit) float64 { return diff(t.t, o.t, u) }, false)
}

// ToNow renders the engine clock relative to t ("in 3 days" for a past t).
func (t Time) ToNow() (string, error) {
	return t.To(t.engine.From(t.engine.now()))
}

// To renders o relative to t.
func (t Time) To(o Time) (string, error) {
	return t.relativeTo(func(u Unit) float64 { return diff(o.t, t.t, u) }, false)
}

// FromNowShort is FromNow without the "ago"/"in" wrapper ("3 hari").
func (t Time) FromNowShort() (string, error) {
	now := t.engine.now()
	return t.relativeTo(func(u Unit) float64 { return diff(t.t, now, u) }, true)
}

func (t Time) relativeTo(d func(Unit) float64, withoutSuffix bool) (string, error) {
	if !t.engine.Has(RelativeTime) {
		return "", fmt.Errorf("%w: %s", ErrCapabilityDisabled, RelativeTime)
	}
	return t.engine.relative(t.locale, d, withoutSuffix), nil
}

var nameTokens = []string{"January", "Monday", "Jan", "Mon"}

// nextNameToken finds the earliest month/weekday name token in layout,
// preferring the longer token on a tie.
func nextNameToken(layout string) (int, string) {
	best, bestTok := -1, ""
	for _, tok := range nameTokens {
		i := strings.Index(layout, tok)
		if i < 0 {
			continue
		}
		if best < 0 || i < best || (i == best && len(tok) > len(bestTok)) {
			best, bestTok = i, tok
		}
	}
	return best, bestTok
}

func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

func diff(a, b time.Time, u Unit) float64 {
	switch u {
	case Month:
		return monthDiff(a, b)
	case Year:
		return monthDiff(a, b) / 12
	case Day, Week:
		_, offA := a.Zone()
		_, offB := b.Zone()
		ms := float64(a.Sub(b).Milliseconds()) + float64(offA-offB)*msSecond
		if u == Week {
			return ms / msWeek
		}
		return ms / msDay
	}
	per, ok := u.milliseconds()
	if !ok {
		per = 1
	}
	return float64(a.Sub(b).Milliseconds()) / per
}

// monthDiff returns a - b in months, interpolating the partial month
// against the length of the month it falls in.
func monthDiff(a, b time.Time) float64 {
	if a.Day() < b.Day() {
		return -monthDiff(b, a)
	}

	whole := (b.Year()-a.Year())*12 + int(b.Month()-a.Month())
	anchor := addMonths(a, whole)
	behind := b.Before(anchor)

	step := 1
	if behind {
		step = -1
	}
	anchor2 := addMonths(a, whole+step)

	span := anchor2.Sub(anchor)
	if behind {
		span = anchor.Sub(anchor2)
	}
	if span == 0 {
		return -float64(whole)
	}

	return -(float64(whole) + float64(b.Sub(anchor))/float64(span))
}
