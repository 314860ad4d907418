package logger

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Init points the global zerolog logger at a console writer on stderr.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// SetLevel applies a configured level name; unknown names keep the current level.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		log.Warn().Str("level", level).Msg("Unknown log level, keeping current")
		return
	}
	zerolog.SetGlobalLevel(lvl)
}

// Gorm adapts gorm's query logging to zerolog.
type Gorm struct {
	SlowThreshold time.Duration
}

func NewGorm() *Gorm {
	return &Gorm{SlowThreshold: 200 * time.Millisecond}
}

func (g *Gorm) LogMode(gormlogger.LogLevel) gormlogger.Interface { return g }

func (g *Gorm) Info(_ context.Context, msg string, args ...interface{}) {
	log.Info().Msgf(msg, args...)
}

func (g *Gorm) Warn(_ context.Context, msg string, args ...interface{}) {
	log.Warn().Msgf(msg, args...)
}

func (g *Gorm) Error(_ context.Context, msg string, args ...interface{}) {
	log.Error().Msgf(msg, args...)
}

func (g *Gorm) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		log.Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("gorm query failed")
	case g.SlowThreshold > 0 && elapsed > g.SlowThreshold:
		sql, rows := fc()
		log.Warn().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("gorm slow query")
	case zerolog.GlobalLevel() <= zerolog.TraceLevel:
		sql, rows := fc()
		log.Trace().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("gorm query")
	}
}
