// Package logger provides structured logging utilities built on log/slog.
//
// New builds a logger from options:
//
//	log := logger.New(
//		logger.WithLevelString("debug"),
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithService("kenali", "production"),
//	)
//
//	log.Info("server starting", logger.Component("server"), logger.Event("startup"))
//
// Attribute helpers are nil safe: logger.Error(nil) yields an empty attribute
// that slog drops.
package logger
