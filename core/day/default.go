package day

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/kenali/kenali/core/logger"
)

// PreloadedLocale is loaded by Configure in addition to "en".
const PreloadedLocale = "id"

var (
	initOnce      sync.Once
	initialized   atomic.Bool
	defaultEngine *Engine
)

// Init builds the process-wide engine exactly once: Configure is applied to
// a New engine built from opts. Later calls return the same engine and
// ignore their options.
func Init(opts ...Option) *Engine {
	first := false
	initOnce.Do(func() {
		defaultEngine = Configure(New(opts...))
		initialized.Store(true)
		first = true
	})

	if !first && len(opts) > 0 {
		defaultEngine.logger.Debug("engine already initialized, options ignored", logger.Component("day"))
	}
	return defaultEngine
}

// Default returns the process-wide engine, initializing it on first use.
func Default() *Engine {
	if initialized.Load() {
		return defaultEngine
	}
	return Init()
}

// Initialized reports whether Init has run.
func Initialized() bool {
	return initialized.Load()
}

// Configure registers every capability and loads the "id" locale.
// Each step is idempotent, so configuring an engine twice changes nothing.
func Configure(e *Engine) *Engine {
	e.Extend(Duration)
	e.Extend(RelativeTime)
	e.Extend(Timezone)
	e.Extend(UTC)

	if err := e.LoadLocale(PreloadedLocale); err != nil {
		e.logger.Error("failed to load locale",
			logger.Component("day"), logger.Locale(PreloadedLocale), logger.Error(err))
	}
	return e
}
