// Package logging is a trimmed adaptation of the teacher's structured
// logging package, carrying only the constructor triad and the leveled
// key/value logging methods (birrt itself calls Debugw, Warnw and With).
package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Logger is a structured, leveled logger. Every method accepts a message
// plus an even number of key/value pairs, matching the zap "sugared"
// calling convention.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// With returns a derived Logger that always includes keysAndValues.
	With(keysAndValues ...interface{}) Logger
}

type impl struct {
	name string
	zl   *zap.SugaredLogger
}

func (l *impl) Debugw(msg string, kv ...interface{}) { l.zl.Debugw(msg, kv...) }
func (l *impl) Infow(msg string, kv ...interface{})  { l.zl.Infow(msg, kv...) }
func (l *impl) Warnw(msg string, kv ...interface{})  { l.zl.Warnw(msg, kv...) }
func (l *impl) Errorw(msg string, kv ...interface{}) { l.zl.Errorw(msg, kv...) }

func (l *impl) With(kv ...interface{}) Logger {
	return &impl{name: l.name, zl: l.zl.With(kv...)}
}

func newLoggerConfig() zap.Config {
	// from https://github.com/uber-go/zap/blob/2314926ec34c23ee21f3dd4399438469668f8097/config.go
	// but with stacktraces disabled and color levels, matching the teacher's console encoder.
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(zap.InfoLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

// NewLogger returns a logger that emits Info+ logs to stdout, named name.
func NewLogger(name string) Logger {
	cfg := newLoggerConfig()
	zl, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return &impl{name: name, zl: zl.Sugar().Named(name)}
}

// NewDevelopmentLogger returns a logger that emits Debug+ logs to stdout,
// matching the teacher's NewDebugLogger.
func NewDevelopmentLogger(name string) Logger {
	cfg := newLoggerConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	zl, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return &impl{name: name, zl: zl.Sugar().Named(name)}
}

// NewTestLogger returns a Debug+ logger that writes through tb.Logf, so
// output is captured per-test rather than interleaved on stdout.
func NewTestLogger(tb testing.TB) Logger {
	zl := zaptest.NewLogger(tb, zaptest.Level(zap.DebugLevel))
	return &impl{name: "test", zl: zl.Sugar()}
}
