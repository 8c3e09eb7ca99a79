package shell

import "github.com/kenali/kenali/core/server"

// Config is the process configuration, read from the environment.
type Config struct {
	AppName   string `env:"APP_NAME" envDefault:"Kenali"`
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Timezone and Locale used to render times on pages.
	Timezone string `env:"APP_TIMEZONE" envDefault:"Asia/Jakarta"`
	Locale   string `env:"APP_LOCALE" envDefault:"id"`

	// BasePath mounts the pages under a prefix, like a history base.
	BasePath string `env:"ROUTER_BASE" envDefault:"/"`

	Server server.Config
}
