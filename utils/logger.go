package utils

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// init configures the process-wide logger when the package is imported:
// JSON lines on stdout, level taken from AUCTION_LOG_LEVEL when set.
func init() {
	log.SetFormatter(&log.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})
	log.SetOutput(os.Stdout)

	level := log.InfoLevel
	if raw := os.Getenv("AUCTION_LOG_LEVEL"); raw != "" {
		if parsed, err := log.ParseLevel(raw); err == nil {
			level = parsed
		}
	}
	log.SetLevel(level)
}

func withFields(fields map[string]any) *log.Entry {
	return log.WithFields(fields).WithField("service", "auction-house")
}

// Info logs a message at info level with optional fields
func Info(message string, fields map[string]any) {
	withFields(fields).Info(message)
}

// Warn logs a message at warning level with optional fields
func Warn(message string, fields map[string]any) {
	withFields(fields).Warn(message)
}

// Error logs a message at error level with optional fields
func Error(message string, fields map[string]any) {
	withFields(fields).Error(message)
}

// Fatal logs a message at fatal level and exits the application
func Fatal(message string, fields map[string]any) {
	withFields(fields).Fatal(message)
}
