// Package logger builds the JSON zap logger shared by the API and the CLI.
//
// Every entry carries "ts" (RFC3339Nano in the configured location), "level" and "msg".
// When a file path is configured, entries are also written to a size-rotated file.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"petparrk/internal/config"
)

// New creates a logger from LogConfig. Output always goes to stdout.
func New(cfg config.LogConfig, loc *time.Location) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	sinks := []zapcore.WriteSyncer{zapcore.Lock(os.Stdout)}
	if cfg.FilePath != "" {
		sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   true,
		}))
	}

	core := zapcore.NewCore(newEncoder(loc), zapcore.NewMultiWriteSyncer(sinks...), level)
	return zap.New(core), nil
}

// NewWithWriter creates a logger writing JSON lines to w. Used by tests and tools.
func NewWithWriter(w io.Writer, level zapcore.Level, loc *time.Location) *zap.Logger {
	core := zapcore.NewCore(newEncoder(loc), zapcore.AddSync(w), level)
	return zap.New(core)
}

func newEncoder(loc *time.Location) zapcore.Encoder {
	if loc == nil {
		loc = time.UTC
	}
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.MessageKey = "msg"
	enc.LevelKey = "level"
	enc.CallerKey = ""
	enc.StacktraceKey = ""
	enc.EncodeLevel = zapcore.LowercaseLevelEncoder
	enc.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(t.In(loc).Format(time.RFC3339Nano))
	}
	enc.EncodeDuration = zapcore.MillisDurationEncoder
	return zapcore.NewJSONEncoder(enc)
}
