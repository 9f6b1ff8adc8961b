// Package packages implements the `planforge packages` runner: report the
// host status of every package requirement the descriptor declares.
package packages

import (
	"os"

	"github.com/planforge/cli/internal/config"
	"github.com/planforge/cli/internal/errs"
	"github.com/planforge/cli/internal/logging"
	"github.com/planforge/cli/internal/output"
	"github.com/planforge/cli/internal/primer"
	"github.com/planforge/cli/internal/runbits/hostquery"
	"github.com/planforge/cli/internal/runbits/rationalize"
	"github.com/planforge/cli/pkg/descriptor"
	"github.com/planforge/cli/pkg/hostpkg"
	"github.com/planforge/cli/pkg/resolver"
)

// Requirement status values as reported to the user.
const (
	StatusInstalled = "installed"
	StatusMissing   = "missing"
	StatusMismatch  = "version mismatch"
)

type primeable interface {
	primer.Outputer
	primer.Configurer
}

type Params struct {
	Path string
}

type Packages struct {
	out output.Outputer
	cfg *config.Instance
}

func New(prime primeable) *Packages {
	return &Packages{
		out: prime.Output(),
		cfg: prime.Config(),
	}
}

// Requirement is one row of the status report.
type Requirement struct {
	Name       string `json:"name" yaml:"name"`
	Constraint string `json:"constraint,omitempty" yaml:"constraint,omitempty"`
	Optional   bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
	Status     string `json:"status" yaml:"status"`
	Version    string `json:"version,omitempty" yaml:"version,omitempty"`
}

func (p *Packages) Run(params *Params) (rerr error) {
	defer rationalize.Resolution(&rerr)

	dir := params.Path
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return errs.Wrap(err, "Could not determine working directory")
		}
	}

	desc, err := descriptor.FromDir(dir)
	if err != nil {
		return errs.Wrap(err, "Could not load descriptor from %s", dir)
	}

	report, err := Report(hostquery.New(p.cfg), desc)
	if err != nil {
		return errs.Wrap(err, "Could not query package status")
	}

	p.out.Print(report)
	return nil
}

// Report queries the host for each declared package and classifies it. Unlike
// resolution, a missing required package is not fatal here; the point of the
// report is to show exactly what is missing.
func Report(queryer hostpkg.Queryer, desc *descriptor.Descriptor) ([]Requirement, error) {
	report := make([]Requirement, 0, len(desc.Packages))
	for _, pkg := range desc.Packages {
		resolved, err := queryer.Lookup(pkg.Name)
		if err != nil {
			return nil, errs.Wrap(err, "lookup of %s failed", pkg.Name)
		}

		req := Requirement{
			Name:       pkg.Name,
			Constraint: pkg.Version,
			Optional:   pkg.Optional,
			Version:    resolved.Version,
		}
		switch {
		case !resolved.Found:
			req.Status = StatusMissing
		case pkg.Version != "" && !versionOK(resolved.Version, pkg.Version):
			req.Status = StatusMismatch
		default:
			req.Status = StatusInstalled
		}
		report = append(report, req)
	}
	return report, nil
}

func versionOK(installed, constraint string) bool {
	ok, err := resolver.Satisfies(installed, constraint)
	if err != nil {
		logging.Debug("Could not evaluate constraint %q against %q: %v", constraint, installed, err)
		return false
	}
	return ok
}
