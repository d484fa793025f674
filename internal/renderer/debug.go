package renderer

import (
	"GLQuad/internal/logger"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// maxErrorReads bounds a single drain of the error queue. A lost context can
// keep reporting errors and must not hang the frame loop.
const maxErrorReads = 32

// Not exposed by the 4.1 core bindings.
const (
	glStackOverflow  = 0x0503
	glStackUnderflow = 0x0504
)

var glErrorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "GL_INVALID_ENUM",
	gl.INVALID_VALUE:                 "GL_INVALID_VALUE",
	gl.INVALID_OPERATION:             "GL_INVALID_OPERATION",
	glStackOverflow:                  "GL_STACK_OVERFLOW",
	glStackUnderflow:                 "GL_STACK_UNDERFLOW",
	gl.OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
	gl.INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
}

// ErrorName returns the symbolic name of an OpenGL error code.
func ErrorName(code uint32) string {
	if name, ok := glErrorNames[code]; ok {
		return name
	}
	return fmt.Sprintf("GL_ERROR_0x%04X", code)
}

// GLError is one error code observed after a checked call.
type GLError struct {
	Code uint32
	Call string
	File string
	Line int
}

func (e GLError) String() string {
	return fmt.Sprintf("[OpenGL ERROR] (0x%04X %s) %s %s:%d", e.Code, ErrorName(e.Code), e.Call, e.File, e.Line)
}

// CallError carries every error observed after a single checked call.
type CallError struct {
	Errors []GLError
}

func (e *CallError) Error() string {
	lines := make([]string, len(e.Errors))
	for i, ge := range e.Errors {
		lines[i] = ge.String()
	}
	return strings.Join(lines, "\n")
}

// HaltFunc is invoked when a checked call left errors in the queue.
type HaltFunc func(err *CallError)

// PanicOnError is the default HaltFunc. Errors reported here are programming
// mistakes, so execution stops at the offending call.
func PanicOnError(err *CallError) {
	panic(err)
}

// ErrorChecker drains the OpenGL error queue around a call and reports
// anything the call produced.
type ErrorChecker struct {
	api  GL
	Halt HaltFunc
}

// NewErrorChecker returns a checker for api that panics on errors.
func NewErrorChecker(api GL) *ErrorChecker {
	return &ErrorChecker{api: api, Halt: PanicOnError}
}

// Clear discards pending errors and returns how many were read.
func (c *ErrorChecker) Clear() int {
	n := 0
	for ; n < maxErrorReads; n++ {
		if c.api.GetError() == gl.NO_ERROR {
			break
		}
	}
	return n
}

// Call runs fn between two drains of the error queue. Errors pending before
// fn are discarded. Each distinct error code seen afterwards is logged with
// the caller's file and line and returned.
func (c *ErrorChecker) Call(name string, fn func()) []GLError {
	return c.call(name, 2, fn)
}

func (c *ErrorChecker) call(name string, skip int, fn func()) []GLError {
	c.Clear()
	fn()

	var found []GLError
	seen := make(map[uint32]bool)
	for i := 0; i < maxErrorReads; i++ {
		code := c.api.GetError()
		if code == gl.NO_ERROR {
			break
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		found = append(found, GLError{Code: code, Call: name})
	}
	if len(found) == 0 {
		return nil
	}

	_, file, line, _ := runtime.Caller(skip)
	file = filepath.Base(file)
	for i := range found {
		found[i].File = file
		found[i].Line = line
		logger.Log.Error("OpenGL error",
			zap.String("error", ErrorName(found[i].Code)),
			zap.Uint32("code", found[i].Code),
			zap.String("call", name),
			zap.String("file", file),
			zap.Int("line", line))
	}

	if c.Halt != nil {
		c.Halt(&CallError{Errors: found})
	}
	return found
}

// GLCall runs fn against api. Builds tagged gldebug check the error queue
// around fn and halt on errors; other builds call fn directly.
func GLCall(api GL, name string, fn func()) {
	if !debugBuild {
		fn()
		return
	}
	checker := ErrorChecker{api: api, Halt: PanicOnError}
	checker.call(name, 2, fn)
}
