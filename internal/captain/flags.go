package captain

import (
	"github.com/spf13/pflag"

	"github.com/planforge/cli/internal/errs"
)

// FlagMarshaler handles custom flag types.
type FlagMarshaler interface {
	String() string
	Set(string) error
	Type() string
}

// ArgMarshaler handles custom positional argument types.
type ArgMarshaler interface {
	Set(string) error
}

// Flag is a declarative description of a command flag.
type Flag struct {
	Name        string
	Shorthand   string
	Description string
	Persist     bool
	Value       interface{}
}

// Argument is a declarative description of a positional argument.
type Argument struct {
	Name        string
	Description string
	Required    bool
	Value       interface{}
}

// ActiveFlagNames returns the names of the flags that were set on the
// command line, for logging.
func (c *Command) ActiveFlagNames() []string {
	var names []string
	c.cobra.Flags().Visit(func(f *pflag.Flag) {
		names = append(names, f.Name)
	})
	return names
}

func (c *Command) setFlags(flags []*Flag) error {
	c.flags = flags
	for _, flag := range flags {
		flagSetter := c.cobra.Flags
		if flag.Persist {
			flagSetter = c.cobra.PersistentFlags
		}

		switch v := flag.Value.(type) {
		case nil:
			return errs.New("flag %s has no value", flag.Name)
		case *string:
			flagSetter().StringVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case *int:
			flagSetter().IntVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case *bool:
			flagSetter().BoolVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case FlagMarshaler:
			flagSetter().VarP(v, flag.Name, flag.Shorthand, flag.Description)
		default:
			return errs.New(
				"unknown type for flag %s: %T (%v)", flag.Name, v, v,
			)
		}
	}

	return nil
}
