package day

import (
	"embed"
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// DefaultLocale is the locale every engine starts with.
const DefaultLocale = "en"

// Locale carries the names and relative-time phrases of one language.
// Built once by LoadLocale and read-only afterwards.
type Locale struct {
	tag           string
	localizer     *i18n.Localizer
	months        [12]string
	monthsShort   [12]string
	weekdays      [7]string
	weekdaysShort [7]string
}

// Tag returns the base language tag, e.g. "id".
func (l *Locale) Tag() string {
	return l.tag
}

// MonthName returns the localized full month name.
func (l *Locale) MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return l.months[m-1]
}

// WeekdayName returns the localized full weekday name, Sunday is 0.
func (l *Locale) WeekdayName(d int) string {
	if d < 0 || d > 6 {
		return ""
	}
	return l.weekdays[d]
}

func newBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return b
}

// normalizeTag reduces a BCP 47 tag to its base language ("id-ID" -> "id").
func normalizeTag(tag string) (string, error) {
	if tag == "" {
		return "", fmt.Errorf("%w: empty locale tag", ErrInvalidArgument)
	}
	t, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("%w: locale %q: %v", ErrInvalidArgument, tag, err)
	}
	base, _ := t.Base()
	return base.String(), nil
}

// loadLocale reads locales/<tag>.toml into the bundle and resolves the names.
// Callers hold the engine write lock.
func loadLocale(bundle *i18n.Bundle, tag string) (*Locale, error) {
	if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+tag+".toml"); err != nil {
		return nil, fmt.Errorf("%w: locale %q is not available", ErrInvalidArgument, tag)
	}

	loc := &Locale{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag),
	}

	for i := range 12 {
		n := strconv.Itoa(i + 1)
		loc.months[i] = loc.message("month_" + n)
		loc.monthsShort[i] = loc.message("month_short_" + n)
	}
	for i := range 7 {
		n := strconv.Itoa(i)
		loc.weekdays[i] = loc.message("weekday_" + n)
		loc.weekdaysShort[i] = loc.message("weekday_short_" + n)
	}

	return loc, nil
}

func (l *Locale) message(id string) string {
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return s
}

func (l *Locale) counted(id string, n int) string {
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  n,
		TemplateData: map[string]any{"Count": n},
	})
	if err != nil {
		return strconv.Itoa(n) + " " + id
	}
	return s
}

func (l *Locale) wrap(id, value string) string {
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: map[string]any{"Value": value},
	})
	if err != nil {
		return value
	}
	return s
}
