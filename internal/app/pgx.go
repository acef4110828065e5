package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/guttosm/findata/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// pgxLogAdapter routes pgx trace output into the application logger.
type pgxLogAdapter struct {
	log *zerolog.Logger
}

// Log implements tracelog.Logger.
func (a pgxLogAdapter) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	var ev *zerolog.Event
	switch level {
	case tracelog.LogLevelTrace:
		ev = a.log.Trace()
	case tracelog.LogLevelDebug:
		ev = a.log.Debug()
	case tracelog.LogLevelInfo:
		ev = a.log.Info()
	case tracelog.LogLevelWarn:
		ev = a.log.Warn()
	case tracelog.LogLevelError:
		ev = a.log.Error()
	default:
		ev = a.log.Info()
	}
	ev.Str("component", "pgx").Fields(data).Msg(msg)
}

// traceLevel maps the logger level onto pgx's so that statements are only
// traced when debug logging is on.
func traceLevel(l zerolog.Level) tracelog.LogLevel {
	switch {
	case l <= zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case l == zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case l == zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	default:
		return tracelog.LogLevelError
	}
}

// openPgx builds a *sql.DB on top of the pgx stdlib adapter with a query tracer attached.
func openPgx(dsn string) (*sql.DB, error) {
	cc, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	l := logger.L()
	cc.Tracer = &tracelog.TraceLog{
		Logger:   pgxLogAdapter{log: l},
		LogLevel: traceLevel(l.GetLevel()),
	}
	return stdlib.OpenDB(*cc), nil
}

// openDB opens driver with dsn. "pgx" goes through openPgx so the tracer is
// installed; any other name is handed to sql.Open.
func openDB(driver, dsn string) (*sql.DB, error) {
	if driver == "pgx" {
		return openPgx(dsn)
	}
	return sql.Open(driver, dsn)
}
