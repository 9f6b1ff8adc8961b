// Package export implements the `planforge export` runner: resolve the
// project and write the resulting plan to a file, with the format picked by
// the file extension.
package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v2"

	"github.com/planforge/cli/internal/config"
	"github.com/planforge/cli/internal/constants"
	"github.com/planforge/cli/internal/errs"
	"github.com/planforge/cli/internal/fileutils"
	"github.com/planforge/cli/internal/locale"
	"github.com/planforge/cli/internal/output"
	"github.com/planforge/cli/internal/primer"
	"github.com/planforge/cli/internal/runbits/hostquery"
	"github.com/planforge/cli/internal/runbits/rationalize"
	"github.com/planforge/cli/pkg/buildplan"
	"github.com/planforge/cli/pkg/descriptor"
	"github.com/planforge/cli/pkg/resolver"
)

type primeable interface {
	primer.Outputer
	primer.Configurer
}

type Params struct {
	Path string

	// File is the destination to write to. The extension selects the
	// format: .json, .yaml or .yml.
	File string

	// Flat exports the flattened include path list instead of the plan
	// tree. Deduplication across plans follows the plan.flatten_dedupe
	// config value.
	Flat bool
}

type Export struct {
	out output.Outputer
	cfg *config.Instance
}

func New(prime primeable) *Export {
	return &Export{
		out: prime.Output(),
		cfg: prime.Config(),
	}
}

func (e *Export) Run(params *Params) (rerr error) {
	defer rationalize.Resolution(&rerr)

	format, err := formatForFile(params.File)
	if err != nil {
		return err
	}

	dir := params.Path
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return errs.Wrap(err, "Could not determine working directory")
		}
	}

	desc, err := descriptor.FromDir(dir)
	if err != nil {
		return errs.Wrap(err, "Could not load descriptor from %s", dir)
	}

	res, err := resolver.New(hostquery.New(e.cfg), resolver.FileLoader)
	if err != nil {
		return errs.Wrap(err, "Could not initialize resolver")
	}

	plan, err := res.Resolve(desc)
	if err != nil {
		return errs.Wrap(err, "Resolution failed for %s", desc.Dir())
	}

	data, err := e.marshal(plan, params.Flat, format)
	if err != nil {
		return err
	}

	if err := fileutils.WriteFile(params.File, data); err != nil {
		return errs.Wrap(err, "Could not write %s", params.File)
	}

	e.out.Notice(locale.Tl("notice_plan_exported", "Build plan written to {{.V0}}", params.File))
	return nil
}

func (e *Export) marshal(plan *buildplan.Plan, flat bool, format output.Format) ([]byte, error) {
	if flat {
		paths := plan.Flatten(e.cfg.GetBool(constants.CfgFlattenDedupe))
		var (
			data []byte
			err  error
		)
		if format == output.JSONFormatName {
			data, err = json.MarshalIndent(paths, "", "  ")
		} else {
			data, err = yaml.Marshal(paths)
		}
		if err != nil {
			return nil, errs.Wrap(err, "Could not marshal include paths")
		}
		return data, nil
	}
	if format == output.JSONFormatName {
		return plan.Marshal()
	}
	return plan.MarshalYaml()
}

func formatForFile(file string) (output.Format, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return output.JSONFormatName, nil
	case ".yaml", ".yml":
		return output.PlainFormatName, nil
	}
	return "", locale.NewInputError("err_export_unsupported_ext", "", filepath.Ext(file))
}
