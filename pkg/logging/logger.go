/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger.go
Description: Logging system for Akaylee Binscope. Wraps logrus with level
parsing, format selection, and scan-specific helpers for progress and run
summary events. Log lines go to stderr so the analytical report on stdout
stays clean.
*/

package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warn"
	LogLevelError   LogLevel = "error"
)

// LogFormat represents the logging format
type LogFormat string

const (
	LogFormatJSON   LogFormat = "json"
	LogFormatCustom LogFormat = "custom"
)

// LoggerConfig holds the configuration for the logger
type LoggerConfig struct {
	Level  LogLevel  `json:"level"`
	Format LogFormat `json:"format"`
	Colors bool      `json:"colors"`
}

// Validate checks the LoggerConfig for invalid or missing values.
// Returns an error if the config is invalid, or nil if valid.
func (c *LoggerConfig) Validate() error {
	switch c.Format {
	case LogFormatJSON, LogFormatCustom:
		// ok
	default:
		return fmt.Errorf("unsupported log format: %s", c.Format)
	}
	switch c.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		// ok
	default:
		return fmt.Errorf("unsupported log level: %s", c.Level)
	}
	return nil
}

// Logger provides structured logging for an analysis run
type Logger struct {
	config    *LoggerConfig
	logger    *logrus.Logger
	startTime time.Time
}

// NewLogger creates a new logger instance
func NewLogger(config *LoggerConfig) (*Logger, error) {
	if config == nil {
		config = &LoggerConfig{
			Level:  LogLevelInfo,
			Format: LogFormatCustom,
			Colors: true,
		}
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger config: %w", err)
	}

	l := &Logger{
		config:    config,
		logger:    logrus.New(),
		startTime: time.Now(),
	}

	level, err := logrus.ParseLevel(string(config.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.logger.SetLevel(level)
	l.logger.SetOutput(os.Stderr)

	switch config.Format {
	case LogFormatJSON:
		l.logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	default:
		l.logger.SetFormatter(&CustomFormatter{Timestamp: true, Colors: config.Colors})
	}

	return l, nil
}

// SetOutput redirects log output, primarily for tests
func (l *Logger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

// GetLogger returns the underlying logrus logger
func (l *Logger) GetLogger() *logrus.Logger {
	return l.logger
}

// Scan-specific logging methods

// LogScanStart logs the beginning of a file analysis
func (l *Logger) LogScanStart(runID string, path string, size int64) {
	l.logger.WithFields(logrus.Fields{
		"run_id":    runID,
		"file":      path,
		"file_size": size,
	}).Info("Analysis started")
}

// LogProgress logs periodic chunk progress
func (l *Logger) LogProgress(processed int64, total int64, chunks int) {
	l.logger.WithFields(logrus.Fields{
		"bytes_processed": processed,
		"bytes_total":     total,
		"chunks":          chunks,
	}).Info("Scan progress")
}

// LogRunComplete logs the end-of-run summary
func (l *Logger) LogRunComplete(runID string, dates, records, textRuns int, elapsed time.Duration) {
	l.logger.WithFields(logrus.Fields{
		"run_id":            runID,
		"date_findings":     dates,
		"record_boundaries": records,
		"text_runs":         textRuns,
		"elapsed":           elapsed,
		"uptime":            time.Since(l.startTime),
	}).Info("Analysis complete")
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Info(msg)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Error(msg)
}
