// Package logging owns the process-wide file logger. The TUI owns
// the terminal, so nothing may log to stdout or stderr while the
// program runs; everything goes to a rotating file instead.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger *zap.SugaredLogger

	// safe fallback before Init
	noop = zap.NewNop().Sugar()
)

// L returns the global logger, or a no-op one before Init.
func L() *zap.SugaredLogger {
	if logger == nil {
		return noop
	}
	return logger
}

// Init builds the global logger. level is a zap level name ("debug",
// "info", ...); unknown names fall back to info. An empty path means
// DefaultPath.
func Init(level, path string) {
	if path == "" {
		path = DefaultPath()
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), writer, lvl)
	logger = zap.New(core, zap.AddCaller()).Sugar()
}

// DefaultPath puts the log under the user state directory.
func DefaultPath() string {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".local", "state")
	}
	return filepath.Join(base, "quire", "quire.log")
}

// Sync flushes buffered entries. Call it on the way out.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
