// Package logging builds the zap logger shared by the engine and game.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where log output goes.
type Options struct {
	// File, when set, receives a rolling copy of the log.
	File string
	// Debug lowers the level to debug; otherwise info.
	Debug bool
	// Console writes to stderr. Turned off by tests and the map dump.
	Console bool
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
}

// New creates a sugared logger. The returned func flushes buffered output,
// closes the log file and should be deferred by the caller.
func New(opts Options) (*zap.SugaredLogger, func()) {
	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	encoder := zapcore.NewConsoleEncoder(encoderConfig())
	var cores []zapcore.Core
	var file *lumberjack.Logger
	if opts.Console {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level))
	}
	if opts.File != "" {
		// 10MB per file, 3 backups
		file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		}
		cores = append(cores, zapcore.NewCore(encoder.Clone(), zapcore.AddSync(file), level))
	}
	if len(cores) == 0 {
		return zap.NewNop().Sugar(), func() {}
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar()
	return logger, func() {
		_ = logger.Sync()
		if file != nil {
			_ = file.Close()
		}
	}
}
