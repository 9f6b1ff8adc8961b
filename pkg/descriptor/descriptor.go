// Package descriptor handles parsing and saving of the planforge.yaml
// project descriptor, the declarative input to build plan resolution.
package descriptor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/imdario/mergo"
	yaml "gopkg.in/yaml.v2"

	"github.com/planforge/cli/internal/constants"
	"github.com/planforge/cli/internal/fileutils"
	"github.com/planforge/cli/internal/locale"
	"github.com/planforge/cli/internal/logging"
)

// Package is a single host package requirement declared by the project.
type Package struct {
	Name string `yaml:"name"`

	// Version optionally constrains the installed package version,
	// e.g. ">= 1.10". The zero value accepts any version.
	Version string `yaml:"version,omitempty"`

	// Optional packages that are not installed are skipped silently instead
	// of failing resolution. The zero value means required, which matches the
	// common case.
	Optional bool `yaml:"optional,omitempty"`
}

// Required reports whether a failed lookup of this package is fatal.
func (p Package) Required() bool {
	return !p.Optional
}

// Descriptor covers the top level structure of our yaml. Once parsed it is
// treated as immutable for the duration of a resolution pass.
type Descriptor struct {
	Name     string    `yaml:"name"`
	Packages []Package `yaml:"packages,omitempty"`
	Subdirs  []string  `yaml:"subdirectories,omitempty"`
	path     string    // "private"
}

// ErrNotFound is returned when no descriptor file exists at the given path.
type ErrNotFound struct {
	Path string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("no %s found at %s", constants.DescriptorFileName, e.Path)
}

// ErrParse is returned when a descriptor file exists but cannot be parsed.
type ErrParse struct {
	Path    string
	wrapped error
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("could not parse descriptor at %s", e.Path)
}

func (e *ErrParse) Unwrap() error {
	return e.wrapped
}

// Parse the given filepath, which should be the full path to a
// planforge.yaml file
func Parse(fpath string) (*Descriptor, error) {
	if !fileutils.FileExists(fpath) {
		return nil, &ErrNotFound{fpath}
	}

	dat, err := os.ReadFile(fpath)
	if err != nil {
		return nil, &ErrParse{fpath, err}
	}

	d := Descriptor{}
	if err := yaml.Unmarshal(dat, &d); err != nil {
		return nil, &ErrParse{fpath, err}
	}
	d.path = fpath

	if err := mergo.Merge(&d, defaults(fpath)); err != nil {
		return nil, &ErrParse{fpath, err}
	}

	if err := d.validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// FromDir parses the descriptor file inside the given directory. The
// descriptor env var overrides the lookup entirely.
func FromDir(dir string) (*Descriptor, error) {
	if fpath := os.Getenv(constants.DescriptorEnvVarName); fpath != "" {
		logging.Debug("Using descriptor from env var: %s", fpath)
		return Parse(fpath)
	}
	return Parse(filepath.Join(dir, constants.DescriptorFileName))
}

// defaults returns the descriptor values that fill fields left empty in the
// yaml, keyed off the descriptor location.
func defaults(fpath string) Descriptor {
	return Descriptor{
		Name: filepath.Base(filepath.Dir(fpath)),
	}
}

func (d *Descriptor) validate() error {
	for _, pkg := range d.Packages {
		if pkg.Name == "" {
			return locale.NewInputError(
				"err_descriptor_pkg_name",
				"The descriptor at '{{.V0}}' declares a package without a name.",
				d.path,
			)
		}
	}
	for _, sub := range d.Subdirs {
		if filepath.IsAbs(sub) {
			return locale.NewInputError(
				"err_descriptor_subdir_abs",
				"Subdirectory '{{.V0}}' must be a relative path.",
				sub,
			)
		}
	}
	return nil
}

// Path returns the descriptor's file path.
func (d *Descriptor) Path() string {
	return d.path
}

// Dir returns the directory holding the descriptor.
func (d *Descriptor) Dir() string {
	if d.path == "" {
		return ""
	}
	return filepath.Dir(d.path)
}

// Save the descriptor to its file
func (d *Descriptor) Save() error {
	dat, err := yaml.Marshal(d)
	if err != nil {
		return err
	}

	return fileutils.WriteFile(d.path, dat)
}
