package logger

import "log/slog"

// Interface is the logger handed to use cases, repositories and handlers.
// The *w variants take alternating key/value pairs.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

type slogLogger struct {
	logger *slog.Logger
}

func NewLogger() Interface {
	return &slogLogger{logger: Get()}
}

func NewLoggerWithSlog(l *slog.Logger) Interface {
	return &slogLogger{logger: l}
}

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *slogLogger) With(args ...any) Interface {
	return &slogLogger{logger: l.logger.With(args...)}
}

func (l *slogLogger) Named(name string) Interface {
	return &slogLogger{logger: l.logger.With("logger", name)}
}

func (l *slogLogger) Debugw(msg string, keysAndValues ...any) { l.logger.Debug(msg, keysAndValues...) }
func (l *slogLogger) Infow(msg string, keysAndValues ...any)  { l.logger.Info(msg, keysAndValues...) }
func (l *slogLogger) Warnw(msg string, keysAndValues ...any)  { l.logger.Warn(msg, keysAndValues...) }
func (l *slogLogger) Errorw(msg string, keysAndValues ...any) { l.logger.Error(msg, keysAndValues...) }

// nopLogger discards everything.
type nopLogger struct{}

// NewNop returns a logger that drops all records. Tests use it in place of a real logger.
func NewNop() Interface { return nopLogger{} }

func (nopLogger) Debug(string, ...any)     {}
func (nopLogger) Info(string, ...any)      {}
func (nopLogger) Warn(string, ...any)      {}
func (nopLogger) Error(string, ...any)     {}
func (n nopLogger) With(...any) Interface  { return n }
func (n nopLogger) Named(string) Interface { return n }
func (nopLogger) Debugw(string, ...any)    {}
func (nopLogger) Infow(string, ...any)     {}
func (nopLogger) Warnw(string, ...any)     {}
func (nopLogger) Errorw(string, ...any)    {}
