package day

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"
	_ "time/tzdata" // IANA zones must resolve on hosts without zoneinfo

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/kenali/kenali/core/logger"
)

// Engine is a configured date/time service: a capability set, loaded
// locales and a clock. Safe for concurrent use.
type Engine struct {
	mu            sync.RWMutex
	caps          []Capability
	bundle        *i18n.Bundle
	locales       map[string]*Locale
	defaultLocale string
	clock         func() time.Time
	logger        *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces time.Now. Used by tests and by callers that need a
// frozen "now" for relative output.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithLogger sets the logger for registration events.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDefaultLocale sets the locale new instants are created with.
// The locale is loaded by New; an unavailable tag is logged and ignored.
func WithDefaultLocale(tag string) Option {
	return func(e *Engine) {
		e.defaultLocale = tag
	}
}

// New creates a standalone engine with the "en" locale and no capabilities.
func New(opts ...Option) *Engine {
	e := &Engine{
		bundle:  newBundle(),
		locales: make(map[string]*Locale),
		clock:   time.Now,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(e)
	}
	requested := e.defaultLocale
	e.defaultLocale = DefaultLocale

	// The embedded English pack always parses.
	if err := e.LoadLocale(DefaultLocale); err != nil {
		panic(err)
	}

	if requested != "" {
		tag, err := normalizeTag(requested)
		if err == nil {
			err = e.LoadLocale(tag)
		}
		if err != nil {
			e.logger.Warn("default locale unavailable, keeping en",
				logger.Component("day"), logger.Locale(requested), logger.Error(err))
		} else {
			e.defaultLocale = tag
		}
	}

	return e
}

// Extend registers a capability. It reports whether the capability was newly
// added; registering twice is a no-op.
func (e *Engine) Extend(c Capability) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if slices.Contains(e.caps, c) {
		return false
	}
	e.caps = append(e.caps, c)
	e.logger.Debug("capability registered", logger.Component("day"), slog.String("capability", c.String()))
	return true
}

// Has reports whether c is registered.
func (e *Engine) Has(c Capability) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Contains(e.caps, c)
}

// Capabilities returns the registered capabilities in registration order.
func (e *Engine) Capabilities() []Capability {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.caps)
}

// LoadLocale makes a locale available for formatting. Loading an already
// loaded locale is a no-op. Tags are reduced to their base language.
func (e *Engine) LoadLocale(tag string) error {
	base, err := normalizeTag(tag)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.locales[base]; ok {
		return nil
	}

	loc, err := loadLocale(e.bundle, base)
	if err != nil {
		return err
	}
	e.locales[base] = loc
	e.logger.Debug("locale loaded", logger.Component("day"), logger.Locale(base))
	return nil
}

// Locales returns the loaded locale tags, sorted.
func (e *Engine) Locales() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	tags := make([]string, 0, len(e.locales))
	for tag := range e.locales {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// DefaultLocale returns the tag new instants are created with.
func (e *Engine) DefaultLocale() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.defaultLocale
}

// Locale returns a loaded locale. Unknown or malformed tags fail with
// ErrInvalidArgument.
func (e *Engine) Locale(tag string) (*Locale, error) {
	base, err := normalizeTag(tag)
	if err != nil {
		return nil, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	loc, ok := e.locales[base]
	if !ok {
		return nil, fmt.Errorf("%w: locale %q is not loaded", ErrInvalidArgument, tag)
	}
	return loc, nil
}

// Now returns the current instant in the local zone.
func (e *Engine) Now() Time {
	return e.From(e.clock())
}

// From wraps a time.Time.
func (e *Engine) From(t time.Time) Time {
	return Time{t: t, engine: e, locale: e.defaultLocaleData()}
}

// Unix wraps a Unix timestamp in seconds.
func (e *Engine) Unix(sec int64) Time {
	return e.From(time.Unix(sec, 0))
}

var defaultLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse reads value in the local zone. Without layouts it tries RFC 3339 and
// the common ISO-like forms; with layouts only those are tried.
func (e *Engine) Parse(value string, layouts ...string) (Time, error) {
	return e.parseIn(value, time.Local, layouts)
}

// ParseInZone reads a wall-clock value as a time in the named zone.
// Requires the Timezone capability.
func (e *Engine) ParseInZone(value, tz string, layouts ...string) (Time, error) {
	if !e.Has(Timezone) {
		return Time{}, fmt.Errorf("%w: %s", ErrCapabilityDisabled, Timezone)
	}
	loc, err := loadZone(tz)
	if err != nil {
		return Time{}, err
	}
	return e.parseIn(value, loc, layouts)
}

func (e *Engine) parseIn(value string, loc *time.Location, layouts []string) (Time, error) {
	if len(layouts) == 0 {
		layouts = defaultLayouts
	}

	var lastErr error
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return e.From(t), nil
		}
		lastErr = err
	}
	return Time{}, fmt.Errorf("%w: parse %q: %v", ErrInvalidArgument, value, lastErr)
}

func (e *Engine) defaultLocaleData() *Locale {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.locales[e.defaultLocale]
}

func (e *Engine) now() time.Time {
	return e.clock()
}

func loadZone(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty timezone name", ErrInvalidArgument)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidArgument, name, err)
	}
	return loc, nil
}
