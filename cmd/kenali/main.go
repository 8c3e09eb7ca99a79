package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kenali/kenali/core/config"
	"github.com/kenali/kenali/core/day"
	"github.com/kenali/kenali/core/logger"
	"github.com/kenali/kenali/core/nav"
	"github.com/kenali/kenali/core/server"
	"github.com/kenali/kenali/internal/routes"
	"github.com/kenali/kenali/internal/shell"
)

func main() {
	started := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg shell.Config
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithLevelString(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithService(cfg.AppName, cfg.Env),
	)

	engine := day.Init(day.WithLogger(log), day.WithDefaultLocale(cfg.Locale))

	table, err := routes.Table(nil)
	if err != nil {
		log.Error("Failed to build navigation table", logger.Component("nav"), logger.Error(err))
		os.Exit(1)
	}
	ctrl := nav.NewController(table, nav.WithBase(cfg.BasePath), nav.WithLogger(log))

	app, err := shell.New(ctrl, engine,
		shell.WithLogger(log),
		shell.WithAppName(cfg.AppName),
		shell.WithTimezone(cfg.Timezone),
		shell.WithLocale(cfg.Locale),
		shell.WithStartTime(started),
		shell.WithMenu(routes.Menu()...),
	)
	if err != nil {
		log.Error("Failed to create shell", logger.Component("shell"), logger.Error(err))
		os.Exit(1)
	}

	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log.With(logger.Component("server"))))
	if err != nil {
		log.Error("Failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(s.Run(ctx, app))

	if err := eg.Wait(); err != nil {
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}
