// Package cmdtree assembles the planforge command hierarchy.
package cmdtree

import (
	"github.com/planforge/cli/internal/captain"
	"github.com/planforge/cli/internal/locale"
	"github.com/planforge/cli/internal/primer"
)

// CmdTree is the root of the command hierarchy.
type CmdTree struct {
	cmd *captain.Command
}

func New(prime *primer.Values) *CmdTree {
	globals := newGlobalOptions()

	cmd := newRootCommand(prime, globals)
	cmd.AddChildren(
		newResolveCommand(prime),
		newPackagesCommand(prime),
		newExportCommand(prime),
		newConfigCommand(prime),
	)

	return &CmdTree{cmd: cmd}
}

func (t *CmdTree) Execute(args []string) error {
	return t.cmd.Execute(args)
}

// globalOptions holds flag values that apply to every command. The output
// flag is consumed before the command tree runs so the outputer exists by the
// time any runner prints; it is registered here so cobra accepts it.
type globalOptions struct {
	Output string
}

func newGlobalOptions() *globalOptions {
	return &globalOptions{}
}

func newRootCommand(prime *primer.Values, globals *globalOptions) *captain.Command {
	cmd := captain.NewCommand(
		"planforge",
		locale.Tl("planforge_title", "PlanForge"),
		locale.Tl("planforge_description", "Resolve project descriptors into composed build plans."),
		prime,
		[]*captain.Flag{
			{
				Name:        "output",
				Shorthand:   "o",
				Description: locale.Tl("flag_output_description", "Set the output format, one of plain or json"),
				Persist:     true,
				Value:       &globals.Output,
			},
		},
		[]*captain.Argument{},
		func(ccmd *captain.Command, args []string) error {
			return ccmd.Usage()
		},
	)
	return cmd
}
