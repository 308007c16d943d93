// Package errors provides error wrapping with slog annotations and source locations.
//
// It re-exports the standard library helpers so that callers only need one
// errors import.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
)

// annotatedError carries a message, an optional cause, slog attributes, and
// the program counter of the call site that created it.
type annotatedError struct {
	msg   string
	cause error
	attrs []slog.Attr
	pc    uintptr
}

func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// callerPC returns the program counter of the caller skipping the given
// number of frames on top of callerPC itself.
func callerPC(skip int) uintptr {
	var pcs [1]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	if n == 0 {
		return 0
	}
	return pcs[0]
}

// NewSentinel creates an error intended to be declared as a package-level
// sentinel and matched with [Is].
func NewSentinel(msg string) error {
	return &annotatedError{msg: msg, pc: callerPC(1)}
}

// Wrap annotates err with a message and optional slog attributes.
//
// The returned error records the call site of Wrap so that [SlogError] can
// point at the origin of the failure. A nil err is tolerated and produces an
// error with only the message.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		msg:   msg,
		cause: err,
		attrs: attrs,
		pc:    callerPC(1),
	}
}

// DecoratePanic converts a recovered panic value into an error.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}
	return &annotatedError{
		msg: fmt.Sprintf("panic: %v", recovered),
		pc:  callerPC(1),
	}
}

// SlogError flattens err into a slog.Attr with the error message, the
// annotations collected from the wrap chain, and the source location of the
// innermost annotated error.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}

	var (
		annotations []slog.Attr
		source      string
	)
	for unwrapped := err; unwrapped != nil; unwrapped = errors.Unwrap(unwrapped) {
		if annotated, ok := unwrapped.(*annotatedError); ok {
			annotations = append(annotations, annotated.attrs...)
			if annotated.pc != 0 {
				// Innermost annotated error wins so that the log points at the origin.
				source = formatSource(annotated.pc)
			}
		}
	}

	attrs := []slog.Attr{slog.String("message", err.Error())}
	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Attr{
			Key:   "annotations",
			Value: slog.GroupValue(annotations...),
		})
	}
	return slog.Attr{Key: "error", Value: slog.GroupValue(attrs...)}
}

func formatSource(pc uintptr) string {
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	if frame.File == "" {
		return ""
	}
	return frame.File + ":" + strconv.Itoa(frame.Line)
}

// New is [errors.New] from the standard library.
func New(msg string) error {
	return errors.New(msg)
}

// Is is [errors.Is] from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is [errors.As] from the standard library.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap is [errors.Unwrap] from the standard library.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join is [errors.Join] from the standard library.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
