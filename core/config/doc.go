// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file on first use and uses the caarlos0/env library
// for parsing environment variables into struct fields.
//
//	type ShellConfig struct {
//		Timezone string `env:"APP_TIMEZONE" envDefault:"Asia/Jakarta"`
//		Locale   string `env:"APP_LOCALE" envDefault:"id"`
//	}
//
//	var cfg ShellConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Different types are cached independently; a second Load of the same type
// returns the cached value even if the environment changed in between.
package config
