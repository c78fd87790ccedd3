package applog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels follow the toolkit's standard options: 0 is quiet
// (warnings only), 1 the default console level, 2 adds informational
// detail, 3 and above turn on debug output. Command-line diagnostics
// (the exact subprocess command and its result) are logged at debug,
// so they appear only when verbosity is greater than 1.
const (
	Quiet   = 0
	Default = 1
	Info    = 2
	Debug   = 3
)

// Level maps a verbosity integer onto a zap level.
func Level(verbosity int) zapcore.Level {
	switch {
	case verbosity <= Quiet:
		return zapcore.WarnLevel
	case verbosity == Default:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// New builds the toolkit logger: console-encoded, writing to stderr so
// command output on stdout stays machine-readable.
func New(verbosity int) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = "" // timestamps are noise on an interactive console
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(os.Stderr),
		Level(verbosity),
	)
	return zap.New(core)
}
