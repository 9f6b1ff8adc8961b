// Package resolve implements the `planforge resolve` runner: parse the
// project descriptor, compose the build plan and print it.
package resolve

import (
	"os"

	"github.com/planforge/cli/internal/config"
	"github.com/planforge/cli/internal/errs"
	"github.com/planforge/cli/internal/locale"
	"github.com/planforge/cli/internal/output"
	"github.com/planforge/cli/internal/primer"
	"github.com/planforge/cli/internal/runbits/hostquery"
	"github.com/planforge/cli/internal/runbits/rationalize"
	"github.com/planforge/cli/pkg/descriptor"
	"github.com/planforge/cli/pkg/resolver"
)

type primeable interface {
	primer.Outputer
	primer.Configurer
}

// Params are the user-supplied inputs for a resolve run.
type Params struct {
	// Path is the project directory to resolve. Empty means the working
	// directory.
	Path string
}

type Resolve struct {
	out output.Outputer
	cfg *config.Instance
}

func New(prime primeable) *Resolve {
	return &Resolve{
		out: prime.Output(),
		cfg: prime.Config(),
	}
}

func (r *Resolve) Run(params *Params) (rerr error) {
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

	r.out.Notice(locale.Tl("operating_message", "Resolving project {{.V0}} at {{.V1}}", desc.Name, desc.Dir()))

	res, err := resolver.New(hostquery.New(r.cfg), resolver.FileLoader)
	if err != nil {
		return errs.Wrap(err, "Could not initialize resolver")
	}

	plan, err := res.Resolve(desc)
	if err != nil {
		return errs.Wrap(err, "Resolution failed for %s", desc.Dir())
	}

	r.out.Print(plan)
	return nil
}
