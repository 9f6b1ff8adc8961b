package cmdtree

import (
	"github.com/planforge/cli/internal/captain"
	"github.com/planforge/cli/internal/locale"
	"github.com/planforge/cli/internal/primer"
	"github.com/planforge/cli/internal/runners/packages"
)

func newPackagesCommand(prime *primer.Values) *captain.Command {
	runner := packages.New(prime)
	params := packages.Params{}

	return captain.NewCommand(
		"packages",
		locale.Tl("packages_title", "Listing Package Requirements"),
		locale.Tl("packages_description", "List the project's package requirements and their status on this host"),
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
