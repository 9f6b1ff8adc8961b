package cmdtree

import (
	"github.com/planforge/cli/internal/captain"
	"github.com/planforge/cli/internal/locale"
	"github.com/planforge/cli/internal/primer"
	"github.com/planforge/cli/internal/runners/cfg"
)

func newConfigCommand(prime *primer.Values) *captain.Command {
	cmd := captain.NewCommand(
		"config",
		locale.Tl("config_title", "Tool Configuration"),
		locale.Tl("config_description", "Read and write persistent tool configuration"),
		prime,
		[]*captain.Flag{},
		[]*captain.Argument{},
		func(ccmd *captain.Command, _ []string) error {
			return ccmd.Usage()
		},
	)

	cmd.AddChildren(
		newConfigGetCommand(prime),
		newConfigSetCommand(prime),
	)

	return cmd
}

func newConfigGetCommand(prime *primer.Values) *captain.Command {
	runner := cfg.New(prime)
	params := cfg.GetParams{}

	return captain.NewCommand(
		"get",
		locale.Tl("config_get_title", "Reading Configuration"),
		locale.Tl("config_get_description", "Print the value stored for the given key"),
		prime,
		[]*captain.Flag{},
		[]*captain.Argument{
			{
				Name:        "key",
				Description: locale.Tl("arg_config_key_description", "Configuration key, e.g. pkgconfig.bin"),
				Required:    true,
				Value:       &params.Key,
			},
		},
		func(_ *captain.Command, _ []string) error {
			return runner.Get(&params)
		},
	)
}

func newConfigSetCommand(prime *primer.Values) *captain.Command {
	runner := cfg.New(prime)
	params := cfg.SetParams{}

	return captain.NewCommand(
		"set",
		locale.Tl("config_set_title", "Writing Configuration"),
		locale.Tl("config_set_description", "Store a value for the given key"),
		prime,
		[]*captain.Flag{},
		[]*captain.Argument{
			{
				Name:        "key",
				Description: locale.Tl("arg_config_key_description", "Configuration key, e.g. pkgconfig.bin"),
				Required:    true,
				Value:       &params.Key,
			},
			{
				Name:        "value",
				Description: locale.Tl("arg_config_value_description", "Value to store"),
				Required:    true,
				Value:       &params.Value,
			},
		},
		func(_ *captain.Command, _ []string) error {
			return runner.Set(&params)
		},
	)
}
