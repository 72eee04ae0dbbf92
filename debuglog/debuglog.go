// Package debuglog appends debugging hypotheses to a local JSON-lines file.
//
// Each line is {"t": <local timestamp>, "h": <hypothesis>, "loc": <location>, "data": <any>}.
// Writes are best-effort: a failed trace never reaches, or crashes, the caller.
package debuglog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/malonaz/bugtrace/internal/file"
)

const (
	// DefaultDirectory is the log directory, relative to the working directory.
	DefaultDirectory = "tmp"
	// DefaultFilename is the log filename.
	DefaultFilename = "debug.log"
)

// Logger writes entries to a single log file.
// It holds no file handle: every operation opens and closes the file.
type Logger struct {
	directory   string
	path        string
	now         func() time.Time
	diagnostics *slog.Logger
}

// Option configures a Logger.
type Option func(*options)

type options struct {
	directory   string
	filename    string
	now         func() time.Time
	diagnostics *slog.Logger
}

// WithDirectory sets the log directory. Empty keeps the default `<cwd>/tmp`.
func WithDirectory(directory string) Option {
	return func(o *options) { o.directory = directory }
}

// WithFilename sets the log filename. Empty keeps the default `debug.log`.
func WithFilename(filename string) Option {
	return func(o *options) { o.filename = filename }
}

// WithClock sets the clock used to timestamp entries.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithDiagnostics sets the logger that receives swallowed failures.
func WithDiagnostics(logger *slog.Logger) Option {
	return func(o *options) { o.diagnostics = logger }
}

// New resolves the log path and initializes its directory.
// An initialization failure is reported to diagnostics only.
func New(opts ...Option) *Logger {
	o := &options{
		filename: DefaultFilename,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.directory == "" {
		o.directory = defaultDirectory()
	}
	if o.filename == "" {
		o.filename = DefaultFilename
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.diagnostics == nil {
		o.diagnostics = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	l := &Logger{
		directory:   o.directory,
		path:        filepath.Join(o.directory, o.filename),
		now:         o.now,
		diagnostics: o.diagnostics,
	}
	l.report(l.Initialize())
	return l
}

func defaultDirectory() string {
	cwd, err := os.Getwd()
	if err != nil {
		return DefaultDirectory
	}
	return filepath.Join(cwd, DefaultDirectory)
}

// Path returns the log file path.
func (l *Logger) Path() string { return l.path }

// Directory returns the log directory.
func (l *Logger) Directory() string { return l.directory }

// Initialize creates the log directory and its parents. It is idempotent.
func (l *Logger) Initialize() error {
	if err := file.CreateDirectoryIfNotExist(l.directory); err != nil {
		return l.fail(opInitialize, err)
	}
	return nil
}

// Trace appends one entry. data may be nil or any JSON-serializable value.
func (l *Logger) Trace(hypothesis, location string, data any) {
	l.report(l.appendEntry(hypothesis, location, data))
}

// Clear truncates the log file, creating it if absent.
// Call it at the start of a reproduction session.
func (l *Logger) Clear() {
	l.report(l.truncate())
}

// HasLogs returns true if the log file exists and is not empty.
// A failed probe reads as no logs.
func (l *Logger) HasLogs() bool {
	ok, err := l.probe()
	if err != nil {
		l.report(err)
		return false
	}
	return ok
}

func (l *Logger) appendEntry(hypothesis, location string, data any) (err error) {
	defer l.recoverFailure(opTrace, &err)
	entry := &Entry{
		Timestamp:  l.now().Local().Format(TimestampLayout),
		Hypothesis: hypothesis,
		Location:   location,
		Data:       data,
	}
	line, err := entry.marshalLine()
	if err != nil {
		return l.fail(opTrace, errors.Wrap(err, "marshaling entry"))
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return l.fail(opTrace, errors.Wrap(err, "opening log file"))
	}
	defer l.closeFile(opTrace, f, &err)
	if _, err := f.Write(line); err != nil {
		return l.fail(opTrace, errors.Wrap(err, "writing entry"))
	}
	return nil
}

func (l *Logger) truncate() (err error) {
	defer l.recoverFailure(opClear, &err)
	f, err := os.OpenFile(l.path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return l.fail(opClear, errors.Wrap(err, "opening log file"))
	}
	defer l.closeFile(opClear, f, &err)
	return nil
}

func (l *Logger) probe() (ok bool, err error) {
	defer l.recoverFailure(opHasLogs, &err)
	ok, err = file.NonEmpty(l.path)
	if err != nil {
		return false, l.fail(opHasLogs, err)
	}
	return ok, nil
}

// closeFile closes f, keeping the first error seen by op.
func (l *Logger) closeFile(op string, f *os.File, err *error) {
	if closeErr := f.Close(); closeErr != nil && *err == nil {
		*err = l.fail(op, errors.Wrap(closeErr, "closing log file"))
	}
}

func (l *Logger) report(err error) {
	if err == nil {
		return
	}
	l.diagnostics.Debug("debug log operation failed", "error", err)
}

var (
	once   sync.Once
	logger *Logger
)

// Default returns the process-wide Logger writing to `<cwd>/tmp/debug.log`.
// The working directory is read once, on first use.
func Default() *Logger {
	once.Do(func() {
		logger = New()
	})
	return logger
}

// Trace appends one entry to the default log.
func Trace(hypothesis, location string, data any) {
	Default().Trace(hypothesis, location, data)
}

// Clear truncates the default log.
func Clear() {
	Default().Clear()
}

// HasLogs returns true if the default log exists and is not empty.
func HasLogs() bool {
	return Default().HasLogs()
}
