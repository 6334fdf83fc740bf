package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the process-wide handler and returns the one it
// replaces. Nil restores a quiet LogHandler writing to stderr.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	handler = h
	return prev
}

// Handler returns the installed handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report stamps err and passes it to the installed handler.
func Report(err *MotionError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// Fail panics with a *MotionError. It marks caller misuse that the motion
// packages do not recover from themselves. A frame pump that defers
// [Recover] reports it as an error rather than a panic.
func Fail(op string, kind ErrorKind, err error) {
	panic(&MotionError{
		Op:         op,
		Kind:       kind,
		Err:        err,
		StackTrace: stack(3),
		Timestamp:  time.Now(),
	})
}

// Recover stops a panic at a frame boundary. Use it deferred:
//
//	defer errors.Recover("preview.frame", func(p *errors.PanicError) { ... })
//
// A *MotionError raised by [Fail] goes to the handler's HandleError with its
// original kind; any other value goes to HandlePanic. onPanic, if set, runs
// afterwards with the recovered panic.
func Recover(op string, onPanic func(p *PanicError)) {
	r := recover()
	if r == nil {
		return
	}
	p := &PanicError{Op: op, Value: r, Timestamp: time.Now()}
	if me, ok := r.(*MotionError); ok {
		p.StackTrace = me.StackTrace
		Report(me)
	} else {
		p.StackTrace = stack(4)
		Handler().HandlePanic(p)
	}
	if onPanic != nil {
		onPanic(p)
	}
}

// stack formats the call stack above skip frames, one function and
// file:line per entry.
func stack(skip int) string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
