package primer

import (
	"github.com/planforge/cli/internal/config"
	"github.com/planforge/cli/internal/output"
)

// Values bundles the facilities that runners depend on, so command
// constructors only have to pass one thing around.
type Values struct {
	output output.Outputer
	config *config.Instance
}

func New(output output.Outputer, config *config.Instance) *Values {
	return &Values{
		output: output,
		config: config,
	}
}

type Outputer interface {
	Output() output.Outputer
}

type Configurer interface {
	Config() *config.Instance
}

func (v *Values) Output() output.Outputer {
	return v.output
}

func (v *Values) Config() *config.Instance {
	return v.config
}
