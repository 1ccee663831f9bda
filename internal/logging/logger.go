package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// FilePrefix is the base name of the daily log files.
const FilePrefix = "uccharana_"

// Options configures a new Logger.
type Options struct {
	// Level is the minimum level to log.
	Level slog.Level

	// Dir is the directory for daily log files. Created if missing.
	// Empty disables file output.
	Dir string

	// Console is the console sink. Defaults to os.Stderr.
	Console io.Writer

	// ExtraSink receives a copy of every log line. Used by the GUI
	// log viewer. May be nil.
	ExtraSink io.Writer
}

// Logger is an explicitly constructed logging context. Its lifecycle is
// tied to application start and stop: create it in main, Close it on exit.
type Logger struct {
	*slog.Logger

	file *os.File
	path string
}

// New creates a Logger writing to the console and, if opts.Dir is set, to
// a file named uccharana_YYYYMMDD.log in that directory.
func New(opts Options) (*Logger, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	l := &Logger{}

	sinks := []io.Writer{console}
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		name := fmt.Sprintf("%s%s.log", FilePrefix, time.Now().Format("20060102"))
		path := filepath.Join(opts.Dir, name)
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = file
		l.path = path
		sinks = append(sinks, file)
	}
	if opts.ExtraSink != nil {
		sinks = append(sinks, opts.ExtraSink)
	}

	l.Logger = slog.New(newLineHandler(io.MultiWriter(sinks...), opts.Level))
	return l, nil
}

// Path returns the current log file path, or "" if file output is disabled.
func (l *Logger) Path() string {
	return l.path
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// MaskSecret masks an API key or other secret for logging, keeping only a
// short prefix and suffix. The full value must never appear in logs.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "..." + s[len(s)-4:]
}

// lineHandler formats records as single text lines:
//
//	2025-01-02 15:04:05 | INFO     | client.Pronounce:87 | message key=value
type lineHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	level slog.Level
	attrs []slog.Attr
}

func newLineHandler(w io.Writer, level slog.Level) *lineHandler {
	return &lineHandler{mu: &sync.Mutex{}, w: w, level: level}
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	b.WriteString(r.Time.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, " | %-8s | %s | %s", r.Level.String(), sourceTag(r.PC), r.Message)

	for _, a := range h.attrs {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.attrs = append(h2.attrs[:len(h2.attrs):len(h2.attrs)], attrs...)
	return &h2
}

func (h *lineHandler) WithGroup(name string) slog.Handler {
	// Groups are not used by this application.
	return h
}

// sourceTag renders the call site as funcName:line.
func sourceTag(pc uintptr) string {
	if pc == 0 {
		return "-"
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	if frame.Function == "" {
		return "-"
	}
	fn := frame.Function
	if idx := strings.LastIndex(fn, "/"); idx >= 0 {
		fn = fn[idx+1:]
	}
	return fmt.Sprintf("%s:%d", fn, frame.Line)
}
