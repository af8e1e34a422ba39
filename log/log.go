package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/babylonlabs-io/beefy-sampler/util"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatLogfmt  = "logfmt"
)

// NewRootLogger builds a zap logger writing to w with the given encoder
// format and level.
func NewRootLogger(format string, level string, w io.Writer) (*zap.Logger, error) {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(ts.UTC().Format("2006-01-02T15:04:05.000000Z07:00"))
	}
	cfg.LevelKey = "lvl"

	var enc zapcore.Encoder
	switch format {
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(cfg)
	case "auto", FormatConsole:
		enc = zapcore.NewConsoleEncoder(cfg)
	case FormatLogfmt:
		enc = zaplogfmt.NewEncoder(cfg)
	default:
		return nil, fmt.Errorf("unrecognized log format %q", format)
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return zap.New(zapcore.NewCore(
		enc,
		zapcore.AddSync(w),
		lvl,
	)), nil
}

// NewRootLoggerWithFile writes logs both to w and to logFile, creating its
// directory if needed. The returned file has to be closed by the caller once
// the logger is no longer used.
func NewRootLoggerWithFile(logFile, format, level string, w io.Writer) (*zap.Logger, *os.File, error) {
	if err := util.MakeDirectory(filepath.Dir(logFile)); err != nil {
		return nil, nil, err
	}
	// #nosec G304 - the log file path is derived from the home directory
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, err
	}

	logger, err := NewRootLogger(format, level, io.MultiWriter(w, f))
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}

	return logger, f, nil
}

// ParseLevel maps the level names accepted in the config file to zap levels.
// "trace" has no zap equivalent and is treated as debug.
func ParseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "trace", "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	case "panic":
		return zapcore.PanicLevel, nil
	case "fatal":
		return zapcore.FatalLevel, nil
	default:
		return zapcore.DebugLevel, fmt.Errorf("unsupported log level: %s", level)
	}
}
