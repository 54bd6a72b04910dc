// Package logger provides a simple leveled logging facility shared by the
// server, the simulation core and the client tooling.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	// DEBUG level for verbose development information
	DEBUG LogLevel = iota
	// INFO level for general operational information
	INFO
	// WARN level for warning conditions
	WARN
	// ERROR level for error conditions
	ERROR
	// FATAL level for critical errors that cause program termination
	FATAL
)

// String returns the string representation of a LogLevel
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name as accepted on the command line to a
// LogLevel. Unknown names fall back to INFO.
func ParseLevel(name string) LogLevel {
	switch name {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn":
		return WARN
	case "error":
		return ERROR
	case "fatal":
		return FATAL
	default:
		return INFO
	}
}

// Logger is a leveled logger with a component prefix and configurable
// console/file outputs.
type Logger struct {
	level   LogLevel
	prefix  string
	logger  *log.Logger
	mu      sync.Mutex
	logFile *os.File
	console bool
}

// New creates a new Logger with the given minimum level and component prefix
func New(level LogLevel, prefix string) *Logger {
	return &Logger{
		level:   level,
		prefix:  prefix,
		logger:  log.New(os.Stdout, "", 0),
		console: true,
	}
}

// SetLevel sets the minimum log level
func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
}

// SetConsole enables or disables logging to stdout
func (l *Logger) SetConsole(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.console = enable
	l.updateOutput()
}

// SetFile enables logging to the named file; an empty name disables file
// output.
func (l *Logger) SetFile(filename string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile != nil {
		l.logFile.Close()
		l.logFile = nil
	}

	if filename == "" {
		l.updateOutput()
		return nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	l.logFile = f
	l.updateOutput()
	return nil
}

// updateOutput rebuilds the output writer from the console and file settings
func (l *Logger) updateOutput() {
	var writers []io.Writer
	if l.console {
		writers = append(writers, os.Stdout)
	}
	if l.logFile != nil {
		writers = append(writers, l.logFile)
	}

	switch len(writers) {
	case 0:
		l.logger.SetOutput(io.Discard)
	case 1:
		l.logger.SetOutput(writers[0])
	default:
		l.logger.SetOutput(io.MultiWriter(writers...))
	}
}

// log writes a message when level clears the logger's threshold
func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] [%s] %s: %s", timestamp, level.String(), l.prefix, message)

	if level == FATAL {
		os.Exit(1)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

// Fatal logs a fatal message and exits the program
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(FATAL, format, args...)
}

// Default logger instances for the components of the system
var (
	Server      = New(INFO, "SERVER")
	Client      = New(INFO, "CLIENT")
	Network     = New(INFO, "NETWORK")
	Game        = New(INFO, "GAME")
	Match       = New(INFO, "MATCH")
	Auth        = New(INFO, "AUTH")
	Persistence = New(INFO, "PERSISTENCE")
)

func defaultLoggers() []*Logger {
	return []*Logger{Server, Client, Network, Game, Match, Auth, Persistence}
}

// InitializeFileLogging sets up file logging for all default loggers
func InitializeFileLogging(directory string) error {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	logFile := fmt.Sprintf("%s/arena_%s.log", directory, time.Now().Format("2006-01-02"))
	for _, l := range defaultLoggers() {
		if err := l.SetFile(logFile); err != nil {
			return err
		}
	}
	return nil
}

// SetGlobalLogLevel sets the log level for all default loggers
func SetGlobalLogLevel(level LogLevel) {
	for _, l := range defaultLoggers() {
		l.SetLevel(level)
	}
}
