package exeutils

import (
	"bytes"
	"errors"
	"os/exec"

	"github.com/planforge/cli/internal/errs"
	"github.com/planforge/cli/internal/logging"
)

// ExecSimple runs the given binary with the given args, returning stdout and
// stderr. A non-zero exit is returned as an error.
func ExecSimple(bin string, args ...string) (string, string, error) {
	return ExecSimpleFromDir("", bin, args...)
}

// ExecSimpleFromDir is like ExecSimple but runs the command from the given
// directory.
func ExecSimpleFromDir(dir, bin string, args ...string) (string, string, error) {
	logging.Debug("Executing command: %s, %v", bin, args)

	c := exec.Command(bin, args...)
	if dir != "" {
		c.Dir = dir
	}
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		return stdout.String(), stderr.String(), errs.Wrap(err, "Exec failed")
	}

	return stdout.String(), stderr.String(), nil
}

// ExitCode returns the exit code buried in the given exec error, or defaultCode
// if the error does not carry one.
func ExitCode(err error, defaultCode int) int {
	var eerr *exec.ExitError
	if errors.As(err, &eerr) {
		return eerr.ExitCode()
	}
	return defaultCode
}
