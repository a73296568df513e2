/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger.go
Description: Structured logging for the Chomsky classifier. Wraps logrus with a validated
configuration, optional timestamped log files, and helpers for the classifier's events:
parse diagnostics, classifications, automaton lookups and grammar comparisons.
*/

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
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
	LogFormatText   LogFormat = "text"
	LogFormatCustom LogFormat = "custom"
)

// LoggerConfig holds the configuration for the logger
type LoggerConfig struct {
	Level     LogLevel  `json:"level" mapstructure:"level"`
	Format    LogFormat `json:"format" mapstructure:"format"`
	OutputDir string    `json:"output_dir" mapstructure:"output_dir"` // empty: console only
	Timestamp bool      `json:"timestamp" mapstructure:"timestamp"`
	Caller    bool      `json:"caller" mapstructure:"caller"`
	Colors    bool      `json:"colors" mapstructure:"colors"`
	MaxFiles  int       `json:"max_files" mapstructure:"max_files"` // 0 keeps every log file
}

// DefaultConfig returns console-only logging at warn level with the custom formatter.
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:     LogLevelWarning,
		Format:    LogFormatCustom,
		Timestamp: true,
		Colors:    true,
		MaxFiles:  10,
	}
}

// Validate checks the LoggerConfig for invalid values.
func (c *LoggerConfig) Validate() error {
	switch c.Format {
	case LogFormatJSON, LogFormatText, LogFormatCustom:
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
	if c.MaxFiles < 0 {
		return fmt.Errorf("max_files must not be negative: %d", c.MaxFiles)
	}
	return nil
}

// Logger provides logging for the classifier commands
type Logger struct {
	config     *LoggerConfig
	logger     *logrus.Logger
	fileHandle *os.File
	logFile    string
	startTime  time.Time
}

// NewLogger creates a new logger instance. A nil config uses DefaultConfig.
// Console output goes to stderr so that command results on stdout stay clean.
func NewLogger(config *LoggerConfig) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger config: %w", err)
	}

	l := &Logger{
		config:    config,
		logger:    logrus.New(),
		startTime: time.Now(),
	}
	l.logger.SetOutput(os.Stderr)

	if err := l.setup(); err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return l, nil
}

// setup configures the logger with the given configuration
func (l *Logger) setup() error {
	level, err := logrus.ParseLevel(string(l.config.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.logger.SetLevel(level)
	l.logger.SetReportCaller(l.config.Caller)

	if err := l.setFormatter(); err != nil {
		return err
	}
	return l.setupFileOutput()
}

// setFormatter configures the log formatter
func (l *Logger) setFormatter() error {
	callerPrettyfier := func(f *runtime.Frame) (string, string) {
		return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
	}

	switch l.config.Format {
	case LogFormatJSON:
		l.logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat:  time.RFC3339,
			CallerPrettyfier: callerPrettyfier,
		})

	case LogFormatText:
		l.logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    l.config.Timestamp,
			TimestampFormat:  time.RFC3339,
			ForceColors:      l.config.Colors,
			DisableColors:    !l.config.Colors,
			CallerPrettyfier: callerPrettyfier,
		})

	case LogFormatCustom:
		l.logger.SetFormatter(&ClassifierFormatter{
			CustomFormatter: CustomFormatter{
				Timestamp: l.config.Timestamp,
				Caller:    l.config.Caller,
				Colors:    l.config.Colors,
			},
		})

	default:
		return fmt.Errorf("unsupported log format: %s", l.config.Format)
	}

	return nil
}

// setupFileOutput adds a timestamped log file next to the console output
func (l *Logger) setupFileOutput() error {
	if l.config.OutputDir == "" {
		return nil
	}

	if err := os.MkdirAll(l.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	path := filepath.Join(l.config.OutputDir, fmt.Sprintf("chomsky-classifier_%s.log", timestamp))

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.fileHandle = file
	l.logFile = path
	l.logger.SetOutput(io.MultiWriter(os.Stderr, file))

	removed, err := PruneLogs(l.config.OutputDir, l.config.MaxFiles)
	if err != nil {
		l.logger.WithError(err).Warn("Failed to prune old log files")
	}

	l.logger.WithFields(logrus.Fields{
		"start_time": l.startTime.Format(time.RFC3339),
		"log_file":   path,
		"level":      l.config.Level,
		"format":     l.config.Format,
		"pruned":     removed,
	}).Debug("Logging system initialized")

	return nil
}

// SetOutput redirects all log output, replacing console and file writers.
func (l *Logger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

// LogFile returns the path of the current log file, or "" when logging to the console only.
func (l *Logger) LogFile() string {
	return l.logFile
}

// Classifier-specific logging methods

// LogDiagnostics logs every line the grammar parser skipped or flagged
func (l *Logger) LogDiagnostics(source string, line int, kind string, message string) {
	l.logger.WithFields(logrus.Fields{
		"source": source,
		"line":   line,
		"kind":   kind,
	}).Warn("Parse diagnostic: " + message)
}

// LogClassification logs a grammar classification
func (l *Logger) LogClassification(source string, typeID int, label string, productions int, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["source"] = source
	fields["type"] = typeID
	fields["label"] = label
	fields["productions"] = productions

	l.logger.WithFields(fields).Info("Grammar classified")
}

// LogAutomaton logs an automaton classification
func (l *Logger) LogAutomaton(source string, kind string, typeID int, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["source"] = source
	fields["kind"] = kind
	fields["type"] = typeID

	l.logger.WithFields(fields).Info("Automaton classified")
}

// LogComparison logs the outcome of a bounded grammar comparison
func (l *Logger) LogComparison(equivalent bool, only1, only2, common int, truncated bool, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["equivalent"] = equivalent
	fields["only1"] = only1
	fields["only2"] = only2
	fields["common"] = common
	fields["truncated"] = truncated

	entry := l.logger.WithFields(fields)
	if truncated {
		entry.Warn("Grammars compared (truncated search)")
		return
	}
	entry.Info("Grammars compared")
}

// Close closes the log file, if any
func (l *Logger) Close() error {
	if l.fileHandle == nil {
		return nil
	}
	l.logger.SetOutput(os.Stderr)
	err := l.fileHandle.Close()
	l.fileHandle = nil
	return err
}

// GetLogger returns the underlying logrus logger
func (l *Logger) GetLogger() *logrus.Logger {
	return l.logger
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
