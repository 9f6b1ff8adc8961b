package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fileHandler appends formatted log messages to a log file on disk. The file
// is opened lazily on the first emit, so constructing the handler never
// fails.
type fileHandler struct {
	formatter Formatter
	file      *os.File
	path      string
}

// NewFileHandler constructs a handler that logs to a file named after the
// running executable inside dir.
func NewFileHandler(dir string) Handler {
	return &fileHandler{
		formatter: DefaultFormatter,
		path:      filepath.Join(dir, FileName()),
	}
}

func (l *fileHandler) SetFormatter(f Formatter) {
	l.formatter = f
}

func (l *fileHandler) Emit(ctx *MessageContext, message string, args ...interface{}) error {
	if l.file == nil {
		if err := os.MkdirAll(filepath.Dir(l.path), os.ModePerm); err != nil {
			return fmt.Errorf("could not create log dir: %w", err)
		}
		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("could not open log file %s: %w", l.path, err)
		}
		l.file = f
	}

	_, err := l.file.WriteString(l.formatter.Format(ctx, message, args...) + "\n")
	if err != nil {
		return fmt.Errorf("could not write log message: %w", err)
	}
	return nil
}

func (l *fileHandler) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// FileName returns the log file name for the current process.
func FileName() string {
	return fmt.Sprintf("%s-%d.log", FileNamePrefix(), os.Getpid())
}

// FileNamePrefix returns the executable name, without extension.
func FileNamePrefix() string {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}
	exe = filepath.Base(exe)
	return strings.TrimSuffix(exe, filepath.Ext(exe))
}
