package logger

import (
	"context"

	"foodgram-backend/internal/auth"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with request and user context
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Configure sets the global formatter and level from LOG_LEVEL
func Configure(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// WithContext creates a logger carrying the request id and user found in ctx.
// A *gin.Context satisfies context.Context and exposes its keys through Value.
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if requestID, ok := ctx.Value("request_id").(string); ok && requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}

	if actor, ok := ctx.Value(auth.ActorContextKey).(auth.Actor); ok && actor.IsAuthenticated() {
		logger.Entry = logger.Entry.WithField("user", actor.Username)
	} else {
		logger.Entry = logger.Entry.WithField("user", "anonymous")
	}

	return logger
}

// ForActor creates a logger tagged with the acting user
func ForActor(actor auth.Actor) *Logger {
	logger := New()
	if !actor.IsAuthenticated() {
		return logger.WithField("user", "anonymous")
	}
	return logger.WithFields(map[string]interface{}{
		"user":    actor.Username,
		"user_id": actor.ID,
	})
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError adds an error field to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
