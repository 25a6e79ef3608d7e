package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// dbLogger forwards gorm's log output to zerolog.
type dbLogger struct {
	log zerolog.Logger
}

// LogMode is a no-op, filtering is left to the zerolog level.
func (l *dbLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *dbLogger) Info(_ context.Context, msg string, args ...interface{}) {
	l.log.Info().Msgf(msg, args...)
}

func (l *dbLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	l.log.Warn().Msgf(msg, args...)
}

func (l *dbLogger) Error(_ context.Context, msg string, args ...interface{}) {
	l.log.Error().Msgf(msg, args...)
}

// Trace logs every statement with its runtime and affected row count.
// A not-found result is an expected outcome, not an error.
func (l *dbLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()

	event := l.log.Debug()
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		event = l.log.Error().Err(err)
	}

	event.Str("sql", sql).Int64("rows", rows).Dur("elapsed", time.Since(begin)).Msg("database query")
}
