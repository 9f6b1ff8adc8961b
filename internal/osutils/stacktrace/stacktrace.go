package stacktrace

import (
	"fmt"
	"runtime"
	"strings"
)

// Frame is a single frame in a stacktrace
type Frame struct {
	// Func contains the function name this frame relates to
	Func string

	// Path contains the file path this frame relates to
	Path string

	// Line contains the line number this frame relates to
	Line int
}

// Stacktrace represents a stacktrace
type Stacktrace struct {
	Frames []Frame
}

// String returns a string representation of the stacktrace
func (t *Stacktrace) String() string {
	result := []string{}
	for _, frame := range t.Frames {
		result = append(result, fmt.Sprintf("%s:%d:%s", frame.Path, frame.Line, frame.Func))
	}
	return strings.Join(result, "\n")
}

// Get returns a stacktrace for the calling frame and up
func Get() *Stacktrace {
	return GetWithSkip(nil)
}

// GetWithSkip returns a stacktrace that drops any frames originating from the
// given files, so error constructors don't show up as the error source.
func GetWithSkip(skipFiles []string) *Stacktrace {
	stacktrace := &Stacktrace{}
	pc := make([]uintptr, 100)
	n := runtime.Callers(0, pc)
	if n == 0 {
		return stacktrace
	}

	pc = pc[:n]
	frames := runtime.CallersFrames(pc)
	skipFiles = append(skipFiles, rtCurrentFile()) // skip self

	for {
		frame, more := frames.Next()
		if !more {
			break
		}

		skip := false
		for _, skipFile := range skipFiles {
			if frame.File == skipFile {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		stacktrace.Frames = append(stacktrace.Frames, Frame{
			Func: frame.Function,
			Path: frame.File,
			Line: frame.Line,
		})
	}

	return stacktrace
}

func rtCurrentFile() string {
	pc := make([]uintptr, 2)
	n := runtime.Callers(1, pc)
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pc[:n])
	frame, _ := frames.Next()
	return frame.File
}
