package logx

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Testing     Environment = "testing"
)

var DefaultLoggerOpts = &LoggerOpts{
	Environment: Development,
}

type LoggerOpts struct {
	Environment Environment
}

func safe(opts ...LoggerOpts) *LoggerOpts {
	if len(opts) == 0 {
		return DefaultLoggerOpts
	}
	return &opts[0]
}

// Init configures the global logger. Production logs JSON at info level,
// testing only logs errors, everything else gets a console writer at debug.
func Init(opts ...LoggerOpts) {
	switch safe(opts...).Environment {
	case Production:
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	case Testing:
		log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(zerolog.ErrorLevel)
	default:
		log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Caller().Logger().Level(zerolog.DebugLevel)
	}
}

// Logger returns a copy of the global logger tagged with a component name,
// for handing to types that take their logger explicitly.
func Logger(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
