package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	service  string
	hostname string
	handler  *slog.Logger
}

// New creates a logger that writes JSON records to stdout.
func New(service string) *Logger {
	return newLogger(service, os.Stdout)
}

// NewWithFile creates a logger that writes to stdout and a rotating log file.
func NewWithFile(service, filePath string) *Logger {
	rot := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	}
	return newLogger(service, io.MultiWriter(os.Stdout, rot))
}

func newLogger(service string, w io.Writer) *Logger {
	hostname, _ := os.Hostname()

	handler := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	return &Logger{
		service:  service,
		hostname: hostname,
		handler:  handler,
	}
}

// GenerateRequestID returns a fresh id to correlate log records of one operation.
func GenerateRequestID() string {
	return uuid.NewString()
}

func (l *Logger) Info(action, requestID, message string) {
	l.handler.LogAttrs(
		context.TODO(),
		slog.LevelInfo,
		message,
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("action", action),
		slog.String("request_id", requestID),
	)
}

func (l *Logger) Debug(action, requestID, message string) {
	l.handler.LogAttrs(
		context.TODO(),
		slog.LevelDebug,
		message,
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("action", action),
		slog.String("request_id", requestID),
	)
}

func (l *Logger) Error(action, requestID, message string, err error) {
	l.handler.LogAttrs(
		context.TODO(),
		slog.LevelError,
		message,
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("action", action),
		slog.String("request_id", requestID),
		slog.Group("error",
			slog.String("msg", err.Error()),
			slog.String("stack", string(debug.Stack())),
		),
	)
}
