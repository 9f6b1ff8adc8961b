package captain

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/planforge/cli/internal/errs"
	"github.com/planforge/cli/internal/locale"
	"github.com/planforge/cli/internal/logging"
	"github.com/planforge/cli/internal/primer"
)

// Executor is the function that is ultimately invoked when a command runs.
type Executor func(cmd *Command, args []string) error

// Command wraps a cobra command so command definitions stay declarative and
// runners never have to touch cobra directly.
type Command struct {
	cobra *cobra.Command

	title string
	prime *primer.Values

	flags     []*Flag
	arguments []*Argument

	execute Executor
}

// NewCommand constructs a Command with the given flags and positional
// arguments wired up.
func NewCommand(name, title, description string, prime *primer.Values, flags []*Flag, args []*Argument, executor Executor) *Command {
	// Validate args
	for idx, arg := range args {
		if idx > 0 && arg.Required && !args[idx-1].Required {
			panic("Cannot have a non-required argument followed by a required argument.")
		}
	}

	cmd := &Command{
		title:     title,
		prime:     prime,
		execute:   executor,
		arguments: args,
		flags:     flags,
	}

	short := description
	if idx := strings.IndexByte(description, '.'); idx > 0 {
		short = description[0:idx]
	}

	cmd.cobra = &cobra.Command{
		Use:   name,
		Short: short,
		Long:  description,
		Args:  cmd.validateArgs,
		RunE:  cmd.runner,

		// Silence errors and usage, we handle that ourselves
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	if err := cmd.setFlags(flags); err != nil {
		panic(err)
	}

	return cmd
}

// Name returns the command name.
func (c *Command) Name() string {
	return c.cobra.Name()
}

// Usage returns an error carrying the command's usage text, for runners that
// want to print it.
func (c *Command) Usage() error {
	return errs.New("%s", c.cobra.UsageString())
}

// AddChildren attaches the given commands as subcommands.
func (c *Command) AddChildren(children ...*Command) {
	for _, child := range children {
		c.cobra.AddCommand(child.cobra)
	}
}

// Execute runs the command with the given (os) args.
func (c *Command) Execute(args []string) error {
	c.cobra.SetArgs(args)
	return c.cobra.Execute()
}

func (c *Command) runner(cobraCmd *cobra.Command, args []string) error {
	logging.Debug("Running command: %s (flags: %v)", cobraCmd.CommandPath(), c.ActiveFlagNames())

	// Funnel positional args into the declared Argument values
	for idx, arg := range c.arguments {
		if idx > len(args)-1 {
			break
		}
		switch v := arg.Value.(type) {
		case *string:
			*v = args[idx]
		case ArgMarshaler:
			if err := v.Set(args[idx]); err != nil {
				return err
			}
		default:
			return errs.New("arg %s has unsupported value type %T", arg.Name, arg.Value)
		}
	}

	return c.execute(c, args)
}

func (c *Command) validateArgs(cobraCmd *cobra.Command, args []string) error {
	if len(args) > len(c.arguments) {
		return locale.NewInputError(
			"err_args_surplus",
			"Unexpected argument: {{.V0}}",
			args[len(c.arguments)],
		)
	}
	for idx, arg := range c.arguments {
		if !arg.Required {
			continue
		}
		if idx > len(args)-1 {
			return locale.NewInputError(
				"err_arg_required",
				"The following argument is required: {{.V0}}",
				arg.Name,
			)
		}
	}
	return nil
}
