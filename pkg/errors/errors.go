// Package errors provides structured error values and reporting for motion.
//
// Library operations return these errors or, for caller misuse the core
// does not recover from (a preset needing a parent container the target
// lacks, a run played twice), panic with a [*MotionError]. Reporting through
// [Report] and [Recover] is reserved for outer surfaces such as the CLI.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindParse indicates an unknown curve or technique name.
	KindParse
	// KindGeometry indicates a target whose layout cannot support an animation.
	KindGeometry
	// KindLifecycle indicates a run or controller used outside its lifetime.
	KindLifecycle
	// KindRender indicates a failure rasterising or encoding a trace.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParse:
		return "parse"
	case KindGeometry:
		return "geometry"
	case KindLifecycle:
		return "lifecycle"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// MotionError represents a structured error in the motion packages.
type MotionError struct {
	// Op is the operation that failed (e.g., "technique.SlideInLeft").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *MotionError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *MotionError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "preview.frame").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError reports a name that does not match any known entry.
type ParseError struct {
	// What is the kind of name being parsed ("curve", "technique", ...).
	What string
	// Name is the input that failed to match.
	Name string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.What, e.Name)
}

// ErrorHandler receives errors reported by the motion packages.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *MotionError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
