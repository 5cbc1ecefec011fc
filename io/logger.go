package argio

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat selects the per-level prefix
type LogFormat int

const (
	LogFormatCircles LogFormat = iota // 🔵 🟢 🟡 🔴 🟣
	LogFormatSymbols                  // ◆ ✓ ▲ ✗ ●
	LogFormatTagged                   // Default: [INFO] [SUCCESS] [WARN] [ERROR] [DEBUG]
	LogFormatPlain                    // No prefix
	LogFormatCustom                   // User-defined template
)

// ParseLogFormat maps a format name (circles, symbols, tagged, plain) to its LogFormat.
func ParseLogFormat(name string) (LogFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "circles":
		return LogFormatCircles, true
	case "symbols":
		return LogFormatSymbols, true
	case "tagged", "":
		return LogFormatTagged, true
	case "plain":
		return LogFormatPlain, true
	default:
		return 0, false
	}
}

// prefixes per format, indexed by LogLevel
var formatPrefixes = map[LogFormat][5]string{
	LogFormatCircles: {"🟣", "🔵", "🟢", "🟡", "🔴"},
	LogFormatSymbols: {"●", "◆", "✓", "▲", "✗"},
	LogFormatTagged:  {"[DEBUG]", "[INFO]", "[SUCCESS]", "[WARN]", "[ERROR]"},
}

// ANSI SGR codes per level
var levelColors = [5]string{
	"95", // bright magenta
	"96", // bright cyan
	"92", // bright green
	"93", // bright yellow
	"91", // bright red
}

// Logger writes levelled messages. Warnings and errors go to the manager's
// Err stream, everything else to Out.
type Logger struct {
	io         *IOManager
	format     LogFormat
	template   string
	withTime   bool
	timeFormat string
	minLevel   LogLevel
}

// NewLogger creates a new logger bound to the given IOManager
func NewLogger(io *IOManager) *Logger {
	return &Logger{
		io:         io,
		format:     LogFormatTagged,
		timeFormat: "15:04:05",
		minLevel:   LevelInfo,
	}
}

// WithFormat sets the log format and returns the logger for chaining
func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.format = format
	return l
}

// WithTemplate switches to LogFormatCustom with the given template.
// Template variables: {{.Level}}, {{.Time}}, {{.Message}}, {{.Prefix}}
// ({{.Prefix}} is the tagged prefix).
func (l *Logger) WithTemplate(template string) *Logger {
	l.template = template
	l.format = LogFormatCustom
	return l
}

// WithTimestamp enables or disables timestamp in log output
func (l *Logger) WithTimestamp(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

// WithTimeFormat sets the time layout used by WithTimestamp and {{.Time}}
func (l *Logger) WithTimeFormat(layout string) *Logger {
	l.timeFormat = layout
	return l
}

// WithLevel drops messages below min. The default is LevelInfo.
func (l *Logger) WithLevel(min LogLevel) *Logger {
	l.minLevel = min
	return l
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level LogLevel) bool {
	return level >= l.minLevel
}

// Log outputs a log message at the specified level
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(l.writer(level), l.render(level, msg))
}

func (l *Logger) render(level LogLevel, msg string) string {
	// blank messages pass through untouched
	if strings.TrimSpace(msg) == "" {
		return msg
	}

	var line string
	switch {
	case l.format == LogFormatCustom && l.template != "":
		line = strings.NewReplacer(
			"{{.Level}}", level.String(),
			"{{.Message}}", msg,
			"{{.Prefix}}", prefix(LogFormatTagged, level),
			"{{.Time}}", l.now(),
		).Replace(l.template)
	default:
		parts := make([]string, 0, 3)
		if p := prefix(l.format, level); p != "" {
			parts = append(parts, p)
		}
		if l.withTime {
			parts = append(parts, "["+l.now()+"]")
		}
		line = strings.Join(append(parts, msg), " ")
	}

	if level < 0 || int(level) >= len(levelColors) {
		return line
	}
	return l.io.Colorize(line, levelColors[level])
}

func (l *Logger) now() string {
	return time.Now().Format(l.timeFormat)
}

func prefix(format LogFormat, level LogLevel) string {
	p, ok := formatPrefixes[format]
	if !ok || level < 0 || int(level) >= len(p) {
		return ""
	}
	return p[level]
}

func (l *Logger) writer(level LogLevel) io.Writer {
	if level >= LevelWarning {
		return l.io.Err()
	}
	return l.io.Out()
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) {
	l.Log(LevelDebug, format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...any) {
	l.Log(LevelInfo, format, args...)
}

// Success logs a success message
func (l *Logger) Success(format string, args ...any) {
	l.Log(LevelSuccess, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...any) {
	l.Log(LevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...any) {
	l.Log(LevelError, format, args...)
}
