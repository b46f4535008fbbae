// Package logging holds the process-wide zap logger used by the powercost CLI and engine.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Name is attached to every entry the global logger writes
const Name = "powercost"

// Logger is the global logger; it is never nil
var Logger = zap.NewNop()

// Config controls where and how diagnostics are written.
// Every field except Development can be overridden from the environment.
type Config struct {
	Level       string `json:"level" env:"POWERCOST_LOG_LEVEL"`
	Format      string `json:"format" env:"POWERCOST_LOG_FORMAT"` // console or json
	Output      string `json:"output" env:"POWERCOST_LOG_OUTPUT"` // stdout, stderr or a file path
	Development bool   `json:"development"`
}

// DefaultConfig logs info and above to stderr in console form, keeping stdout
// free for reports.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "console", Output: "stderr"}
}

// Initialize replaces the global logger. An unparsable level falls back to info.
func Initialize(cfg Config) error {
	sink, err := openSink(cfg.Output)
	if err != nil {
		return err
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Development {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.ErrorLevel))
	}

	core := zapcore.NewCore(newEncoder(cfg.Format), sink, level)
	Logger = zap.New(core, opts...).Named(Name)
	return nil
}

func newEncoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == "json" {
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}

func openSink(output string) (zapcore.WriteSyncer, error) {
	switch output {
	case "", "stderr":
		return zapcore.Lock(os.Stderr), nil
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	}
	f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return zapcore.AddSync(f), nil
}

// Sync flushes buffered entries
func Sync() {
	_ = Logger.Sync()
}

func Debug(msg string, fields ...zap.Field) { Logger.Debug(msg, fields...) }

func Info(msg string, fields ...zap.Field) { Logger.Info(msg, fields...) }

func Warn(msg string, fields ...zap.Field) { Logger.Warn(msg, fields...) }

func init() {
	_ = Initialize(DefaultConfig())
}
