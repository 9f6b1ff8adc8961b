// Package hostpkg answers the question "is this native package installed on
// the host, and where are its headers". The production implementation shells
// out to pkg-config; resolution code only ever sees the Queryer interface.
package hostpkg

import (
	"fmt"
	"strings"

	"github.com/planforge/cli/internal/sliceutils"
)

// Resolved is the host environment's answer for a single package.
type Resolved struct {
	Name         string
	Found        bool
	Version      string
	IncludePaths []string
}

// Queryer looks up a package by name. Lookups are read-only and treated as
// authoritative; a package that cannot be found is reported via
// Resolved.Found, not via the error.
type Queryer interface {
	Lookup(name string) (Resolved, error)
}

// ErrToolNotFound is returned when the underlying query tool itself is not
// available on the host.
type ErrToolNotFound struct {
	Bin string
}

func (e *ErrToolNotFound) Error() string {
	return fmt.Sprintf("host package query tool %s not found", e.Bin)
}

// parseIncludeFlags extracts include paths from compiler flag output, i.e.
// "-I/usr/include/gtest -I/opt/include" becomes the two paths.
func parseIncludeFlags(flags string) []string {
	paths := []string{}
	for _, field := range strings.Fields(flags) {
		if !strings.HasPrefix(field, "-I") {
			continue
		}
		if path := strings.TrimPrefix(field, "-I"); path != "" {
			paths = append(paths, path)
		}
	}
	return sliceutils.Unique(paths)
}
