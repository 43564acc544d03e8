package logging

import (
	"log/slog"
	"os"
)

type Logger interface {
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

var StdoutLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))

// NewLogger returns the slog text logger for FormatText and a zap production logger for FormatJSON.
// The returned closer flushes buffered entries.
func NewLogger(format string) (Logger, func(), error) {
	switch format {
	case FormatJSON:
		zapLogger, err := NewZapLogger()
		if err != nil {
			return nil, nil, err
		}

		return zapLogger, func() { _ = zapLogger.Sync() }, nil
	default:
		return StdoutLogger, func() {}, nil
	}
}
