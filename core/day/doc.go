// Package day is the application's date/time facade: one pre-configured
// engine with duration arithmetic, relative-time rendering, IANA timezone
// conversion and UTC handling, plus the Indonesian ("id") locale.
//
// The process-wide engine is built once:
//
//	d := day.Init(day.WithLogger(log))
//
//	ago, _ := d.Now().Subtract(3, day.Day).Locale("id")
//	s, _ := ago.FromNow() // "3 hari yang lalu"
//
//	jkt, err := d.Now().In("Asia/Jakarta")
//	if errors.Is(err, day.ErrInvalidArgument) { ... }
//
//	span, _ := d.Duration(3, day.Hour)
//	s, _ = span.Humanize(true) // "in 3 hours"
//
// Capabilities and locales are registered on the engine, not on instants.
// Init, Configure, Extend and LoadLocale are idempotent. Locale packs are
// go-i18n TOML message files embedded in the binary.
//
// Errors from bad caller input (timezone names, locale tags, units, parse
// input) wrap ErrInvalidArgument. Operations whose capability is missing
// fail with ErrCapabilityDisabled.
package day
