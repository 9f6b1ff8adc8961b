package cmdtree

import (
	"github.com/planforge/cli/internal/captain"
	"github.com/planforge/cli/internal/locale"
	"github.com/planforge/cli/internal/primer"
	"github.com/planforge/cli/internal/runners/export"
)

func newExportCommand(prime *primer.Values) *captain.Command {
	runner := export.New(prime)
	params := export.Params{}

	return captain.NewCommand(
		"export",
		locale.Tl("export_title", "Exporting Build Plan"),
		locale.Tl("export_description", "Resolve the project and write the build plan to a file. The file extension selects the format"),
		prime,
		[]*captain.Flag{
			{
				Name:        "path",
				Description: locale.Tl("flag_path_description", "Path to the project directory, defaults to the current directory"),
				Value:       &params.Path,
			},
			{
				Name:        "flat",
				Description: locale.Tl("flag_flat_description", "Write the flattened include path list instead of the plan tree"),
				Value:       &params.Flat,
			},
		},
		[]*captain.Argument{
			{
				Name:        "file",
				Description: locale.Tl("arg_export_file_description", "Destination file, ending in .json, .yaml or .yml"),
				Required:    true,
				Value:       &params.File,
			},
		},
		func(_ *captain.Command, _ []string) error {
			return runner.Run(&params)
		},
	)
}
