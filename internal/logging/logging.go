// Package logging wraps Go's logger with leveled logging calls and a
// pluggable handler, so the log target can be swapped at runtime.
//
// Logging is done just like calling fmt.Sprintf:
//
//	logging.Info("This object is %s and that is %s", obj, that)
package logging

// This package may NOT depend on errs (directly or indirectly)

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strings"
	"time"

	"github.com/planforge/cli/internal/osutils/stacktrace"
)

const (
	DEBUG    = 1
	INFO     = 2
	WARNING  = 4
	WARN     = 4
	ERROR    = 8
	CRITICAL = 16
	QUIET    = ERROR | CRITICAL                 // setting for errors only
	NORMAL   = INFO | WARN | ERROR | CRITICAL   // default setting - all besides debug
	ALL      = 255
	NOTHING  = 0
)

var levelsAscending = []int{DEBUG, INFO, WARNING, ERROR, CRITICAL}

var LevelsByName = map[string]int{
	"DEBUG":    DEBUG,
	"INFO":     INFO,
	"WARNING":  WARN,
	"WARN":     WARN,
	"ERROR":    ERROR,
	"CRITICAL": CRITICAL,
	"QUIET":    QUIET,
	"NORMAL":   NORMAL,
	"ALL":      ALL,
	"NOTHING":  NOTHING,
}

// default logging level is ALL
var level int = ALL

// SetLevel sets the logging level as a bit mask of active levels.
//
// e.g. for INFO and ERROR use:
//
//	SetLevel(logging.INFO | logging.ERROR)
func SetLevel(l int) {
	level = l
}

// SetMinimalLevel sets a minimal level for logging, enabling all levels
// higher than this level as well.
func SetMinimalLevel(l int) {
	newLevel := 0
	for _, level := range levelsAscending {
		if level >= l {
			newLevel |= level
		}
	}
	SetLevel(newLevel)
}

// SetMinimalLevelByName sets the minimal level by name, useful for config
// files and environment variables. Case insensitive.
func SetMinimalLevelByName(l string) error {
	l = strings.ToUpper(strings.Trim(l, " "))
	level, found := LevelsByName[l]
	if !found {
		Error("Could not set level - not found level %s", l)
		return fmt.Errorf("invalid level %s", l)
	}

	SetMinimalLevel(level)
	return nil
}

// Handler is a pluggable logger interface
type Handler interface {
	SetFormatter(Formatter)
	Emit(ctx *MessageContext, message string, args ...interface{}) error
	Close() error
}

type standardHandler struct {
	formatter Formatter
}

func (l *standardHandler) SetFormatter(f Formatter) {
	l.formatter = f
}

func (l *standardHandler) Emit(ctx *MessageContext, message string, args ...interface{}) error {
	fmt.Fprintln(os.Stderr, l.formatter.Format(ctx, message, args...))
	return nil
}

func (l *standardHandler) Close() error { return nil }

var currentHandler Handler = &standardHandler{
	DefaultFormatter,
}

// SetHandler sets the current handler of the library. We currently support
// one handler at a time.
func SetHandler(h Handler) {
	currentHandler = h
}

func CurrentHandler() Handler {
	return currentHandler
}

// Close closes the current handler. Must be called before exit so buffered
// file output is flushed.
func Close() error {
	return currentHandler.Close()
}

type MessageContext struct {
	Level     string
	File      string
	Line      int
	TimeStamp time.Time
}

// getContext returns the caller (line + file) context for the log message
func getContext(level string, skipDepth int) *MessageContext {
	_, file, line, _ := runtime.Caller(skipDepth)
	file = path.Base(file)

	return &MessageContext{
		Level:     level,
		File:      file,
		TimeStamp: time.Now(),
		Line:      line,
	}
}

func writeMessage(level string, msg string, args ...interface{}) {
	writeMessageDepth(4, level, msg, args...)
}

func writeMessageDepth(depth int, level string, msg string, args ...interface{}) {
	ctx := getContext(level, depth)

	// Replace any func() interface{} arg with the result of executing it now,
	// allowing lazy evaluation of expensive log arguments.
	for i, arg := range args {
		if lazy, ok := arg.(func() interface{}); ok {
			args[i] = lazy()
		}
	}

	if err := currentHandler.Emit(ctx, msg, args...); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing log message: %v\n", err)
		fmt.Fprintln(os.Stderr, DefaultFormatter.Format(ctx, msg, args...))
	}
}

// Debug outputs debug logging messages
func Debug(msg string, args ...interface{}) {
	if level&DEBUG != 0 {
		writeMessage("DEBUG", msg, args...)
	}
}

// Info outputs INFO level messages
func Info(msg string, args ...interface{}) {
	if level&INFO != 0 {
		writeMessage("INFO", msg, args...)
	}
}

// Warning outputs WARNING level messages
func Warning(msg string, args ...interface{}) {
	if level&WARN != 0 {
		writeMessage("WARNING", msg, args...)
	}
}

// Error outputs ERROR level messages, including the stacktrace leading up to
// the call
func Error(msg string, args ...interface{}) {
	if level&ERROR != 0 {
		writeMessage("ERROR", msg+"\n\nStacktrace: "+stacktrace.Get().String()+"\n", args...)
	}
}

// Critical is like Error but for conditions the tool cannot meaningfully
// recover from
func Critical(msg string, args ...interface{}) {
	if level&CRITICAL != 0 {
		writeMessage("CRITICAL", msg+"\n\nStacktrace: "+stacktrace.Get().String()+"\n", args...)
	}
}
