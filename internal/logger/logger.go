package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFilePath is the path to the engine log file, relative to the working
// directory (project root when run via go run ./cmd/demo).
const LogFilePath = "logs/engine.log"

// New returns a logger that writes readable output to stderr and JSON lines to
// logs/engine.log. The logs directory is created if needed; if the file cannot
// be opened, logging continues to stderr only.
func New() *zap.Logger {
	console := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		zap.InfoLevel,
	)
	cores := []zapcore.Core{console}

	if err := os.MkdirAll(filepath.Dir(LogFilePath), 0755); err == nil {
		if f, err := os.OpenFile(LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			cores = append(cores, zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(f),
				zap.InfoLevel,
			))
		}
	}
	return zap.New(zapcore.NewTee(cores...))
}
