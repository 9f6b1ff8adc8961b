package hostpkg

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/planforge/cli/internal/constants"
	"github.com/planforge/cli/internal/errs"
	"github.com/planforge/cli/internal/exeutils"
	"github.com/planforge/cli/internal/logging"
)

// DefaultBin is the query tool used when neither config nor env specify one.
const DefaultBin = "pkg-config"

// PkgConfig resolves packages by shelling out to pkg-config.
type PkgConfig struct {
	bin string
}

// NewPkgConfig constructs a pkg-config backed Queryer. The bin argument may
// be empty, in which case the env var and finally the PATH default apply.
func NewPkgConfig(bin string) *PkgConfig {
	if bin == "" {
		bin = os.Getenv(constants.PkgConfigEnvVarName)
	}
	if bin == "" {
		bin = DefaultBin
	}
	return &PkgConfig{bin: bin}
}

// Bin returns the binary this queryer shells out to.
func (p *PkgConfig) Bin() string {
	return p.bin
}

// Lookup queries pkg-config for the given package. A missing package is
// reported with Found false and a nil error; errors are reserved for the
// query tool itself misbehaving.
func (p *PkgConfig) Lookup(name string) (Resolved, error) {
	logging.Debug("Querying %s for package %s", p.bin, name)

	if _, _, err := exeutils.ExecSimple(p.bin, "--exists", name); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return Resolved{}, errs.Wrap(&ErrToolNotFound{p.bin}, "could not execute %s", p.bin)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Resolved{Name: name, Found: false}, nil
		}
		return Resolved{}, errs.Wrap(err, "querying %s for %s failed", p.bin, name)
	}

	version, _, err := exeutils.ExecSimple(p.bin, "--modversion", name)
	if err != nil {
		return Resolved{}, errs.Wrap(err, "could not get version of %s", name)
	}

	cflags, _, err := exeutils.ExecSimple(p.bin, "--cflags-only-I", name)
	if err != nil {
		return Resolved{}, errs.Wrap(err, "could not get include flags of %s", name)
	}

	return Resolved{
		Name:         name,
		Found:        true,
		Version:      strings.TrimSpace(version),
		IncludePaths: parseIncludeFlags(cflags),
	}, nil
}
