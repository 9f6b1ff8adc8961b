package cmdtree

import (
	"github.com/planforge/cli/internal/captain"
	"github.com/planforge/cli/internal/locale"
	"github.com/planforge/cli/internal/primer"
	"github.com/planforge/cli/internal/runners/resolve"
)

func newResolveCommand(prime *primer.Values) *captain.Command {
	runner := resolve.New(prime)
	params := resolve.Params{}

	return captain.NewCommand(
		"resolve",
		locale.Tl("resolve_title", "Resolving Build Plan"),
		locale.Tl("resolve_description", "Resolve the project descriptor into a composed build plan"),
		prime,
		[]*captain.Flag{
			{
				Name:        "path",
				Description: locale.Tl("flag_path_description", "Path to the project directory, defaults to the current directory"),
				Value:       &params.Path,
			},
		},
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			return runner.Run(&params)
		},
	)
}
