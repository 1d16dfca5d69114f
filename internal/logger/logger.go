// Package logger builds the zap loggers of the dashboard binaries.
package logger

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rhyrak/go-dashboard/internal/config"
)

// Components tag which binary wrote a log line.
const (
	ComponentCLI    = "cli"
	ComponentServer = "server"
)

// New returns a logger writing to stderr, so CLI output on stdout stays
// clean for csv and json. Every entry carries the component name.
func New(cfg config.LogConfig, component string) (*zap.Logger, error) {
	return newWithSink(cfg, component, zapcore.Lock(os.Stderr))
}

func newWithSink(cfg config.LogConfig, component string, sink zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var enc zapcore.Encoder
	switch cfg.Format {
	case "console":
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.EncodeTime = zapcore.TimeEncoderOfLayout(time.TimeOnly)
		enc = zapcore.NewConsoleEncoder(ec)
	default:
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(ec)
	}

	core := zapcore.NewCore(enc, sink, zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.AddCaller()).With(zap.String("component", component)), nil
}
