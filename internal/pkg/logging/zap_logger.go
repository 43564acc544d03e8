package logging

import "go.uber.org/zap"

type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

func NewZapLogger() (*ZapLogger, error) {
	base, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	return WrapZap(base), nil
}

func WrapZap(base *zap.Logger) *ZapLogger {
	return &ZapLogger{
		base:  base,
		sugar: base.Sugar(),
	}
}

func (l *ZapLogger) Info(message string, args ...any) {
	l.sugar.Infow(message, args...)
}

func (l *ZapLogger) Warn(message string, args ...any) {
	l.sugar.Warnw(message, args...)
}

func (l *ZapLogger) Error(message string, args ...any) {
	l.sugar.Errorw(message, args...)
}

// Zap exposes the structured logger for components that log with typed fields.
func (l *ZapLogger) Zap() *zap.Logger {
	return l.base
}

func (l *ZapLogger) Sync() error {
	return l.base.Sync()
}
