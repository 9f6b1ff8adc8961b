// Package cfg implements the `planforge config get|set` runners for the
// persistent tool configuration.
package cfg

import (
	yaml "gopkg.in/yaml.v2"

	"github.com/planforge/cli/internal/config"
	"github.com/planforge/cli/internal/errs"
	"github.com/planforge/cli/internal/locale"
	"github.com/planforge/cli/internal/output"
	"github.com/planforge/cli/internal/primer"
)

type primeable interface {
	primer.Outputer
	primer.Configurer
}

type GetParams struct {
	Key string
}

type SetParams struct {
	Key   string
	Value string
}

type Cfg struct {
	out output.Outputer
	cfg *config.Instance
}

func New(prime primeable) *Cfg {
	return &Cfg{
		out: prime.Output(),
		cfg: prime.Config(),
	}
}

func (c *Cfg) Get(params *GetParams) error {
	if !c.cfg.IsSet(params.Key) {
		return locale.NewInputError("err_config_key_unset", "No value is set for '{{.V0}}'.", params.Key)
	}
	c.out.Print(c.cfg.Get(params.Key))
	return nil
}

// Set stores the given value. Values are parsed as yaml so booleans and
// numbers keep their type, matching how they are read back.
func (c *Cfg) Set(params *SetParams) error {
	var value interface{}
	if err := yaml.Unmarshal([]byte(params.Value), &value); err != nil {
		value = params.Value
	}

	if err := c.cfg.Set(params.Key, value); err != nil {
		return errs.Wrap(err, "Could not store config value for %s", params.Key)
	}

	c.out.Notice(locale.Tl("notice_config_set", "Set {{.V0}}.", params.Key))
	return nil
}
