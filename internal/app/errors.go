package app

import (
	"errors"
	"fmt"
)

var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	ErrAlreadyRunning = errors.New("application already running")

	// ErrInitialization is matched by every InitError.
	ErrInitialization = errors.New("initialization failed")

	ErrNoClipboard = errors.New("system clipboard unavailable")
)

// OperationError is a failed user-facing operation, such as an export or
// a script run, on a file.
type OperationError struct {
	Op     string
	Target string
	Err    error
}

func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Target != "" {
		msg += " " + e.Target
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RecoveredPanicError wraps a panic value as an error. Error includes the
// stack, so it belongs in the log file rather than on the status line.
type RecoveredPanicError struct {
	Value any
	Stack string
}

func NewRecoveredPanicError(value any, stack string) *RecoveredPanicError {
	return &RecoveredPanicError{Value: value, Stack: stack}
}

func (e *RecoveredPanicError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stack != "" {
		return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// InitError is a failure to bring up one component at startup.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInitialization.
func (e *InitError) Is(target error) bool { return target == ErrInitialization }
