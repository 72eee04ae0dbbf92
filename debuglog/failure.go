package debuglog

import (
	"fmt"

	"github.com/pkg/errors"
)

// Operation names carried by a Failure.
const (
	opInitialize = "initialize"
	opTrace      = "trace"
	opClear      = "clear"
	opHasLogs    = "has-logs"
)

// Failure is an I/O or serialization failure of a debug log operation.
// Public operations swallow it; it only surfaces through Initialize and the diagnostics logger.
type Failure struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s %s: %v", f.Op, f.Path, f.Err)
}

// Unwrap returns the underlying cause.
func (f *Failure) Unwrap() error { return f.Err }

// Cause returns the underlying cause, for github.com/pkg/errors.
func (f *Failure) Cause() error { return f.Err }

func (l *Logger) fail(op string, err error) *Failure {
	return &Failure{Op: op, Path: l.path, Err: err}
}

// recoverFailure turns a panic raised during op into a Failure stored in *err.
// It must be deferred.
func (l *Logger) recoverFailure(op string, err *error) {
	if r := recover(); r != nil {
		*err = l.fail(op, errors.Errorf("panic: %v", r))
	}
}
