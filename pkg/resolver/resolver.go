// Package resolver turns a project descriptor into a composed build plan by
// querying the host for each declared package and recursing into declared
// subdirectories.
package resolver

import (
	"fmt"
	"path/filepath"

	goversion "github.com/hashicorp/go-version"

	"github.com/planforge/cli/internal/errs"
	"github.com/planforge/cli/internal/fileutils"
	"github.com/planforge/cli/internal/logging"
	"github.com/planforge/cli/pkg/buildplan"
	"github.com/planforge/cli/pkg/descriptor"
	"github.com/planforge/cli/pkg/hostpkg"
)

// Loader loads the descriptor of a subdirectory. The production loader reads
// <dir>/planforge.yaml; tests substitute fakes.
type Loader interface {
	Load(dir string) (*descriptor.Descriptor, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(dir string) (*descriptor.Descriptor, error)

func (f LoaderFunc) Load(dir string) (*descriptor.Descriptor, error) {
	return f(dir)
}

// FileLoader is the production Loader, reading descriptor files from disk.
var FileLoader = LoaderFunc(func(dir string) (*descriptor.Descriptor, error) {
	return descriptor.FromDir(dir)
})

// ErrMissingPackage means a required package is not installed on the host.
type ErrMissingPackage struct {
	Name string
}

func (e *ErrMissingPackage) Error() string {
	return fmt.Sprintf("required package %s not found", e.Name)
}

// ErrVersionMismatch means a required package is installed, but at a version
// outside the declared constraint.
type ErrVersionMismatch struct {
	Name       string
	Installed  string
	Constraint string
}

func (e *ErrVersionMismatch) Error() string {
	return fmt.Sprintf("package %s version %s does not satisfy %s", e.Name, e.Installed, e.Constraint)
}

// ErrSubdirectory means resolution of a declared subdirectory failed. It
// wraps the underlying cause so failures in deep subdirectories stay
// traceable to their origin.
type ErrSubdirectory struct {
	Path    string
	wrapped error
}

func (e *ErrSubdirectory) Error() string {
	return fmt.Sprintf("could not resolve subdirectory %s", e.Path)
}

func (e *ErrSubdirectory) Unwrap() error {
	return e.wrapped
}

// ErrCycle means a subdirectory chain visits the same directory twice.
type ErrCycle struct {
	Dir string
}

func (e *ErrCycle) Error() string {
	return fmt.Sprintf("descriptor cycle detected at %s", e.Dir)
}

// Resolver composes build plans. It holds no state between Resolve calls.
type Resolver struct {
	queryer hostpkg.Queryer
	loader  Loader
}

// New constructs a resolver on top of the given host queryer and descriptor
// loader.
func New(queryer hostpkg.Queryer, loader Loader) (*Resolver, error) {
	if queryer == nil {
		return nil, errs.New("resolver: host queryer is required")
	}
	if loader == nil {
		return nil, errs.New("resolver: descriptor loader is required")
	}
	return &Resolver{queryer: queryer, loader: loader}, nil
}

// Resolve produces a build plan for the given descriptor. It is a single
// synchronous pass in declaration order: the first fatal condition aborts
// resolution, and no partial plan is ever returned alongside an error.
func (r *Resolver) Resolve(desc *descriptor.Descriptor) (*buildplan.Plan, error) {
	visited := map[string]struct{}{}
	if dir := normalizeDir(desc.Dir()); dir != "" {
		visited[dir] = struct{}{}
	}
	return r.resolve(desc, visited)
}

func (r *Resolver) resolve(desc *descriptor.Descriptor, visited map[string]struct{}) (*buildplan.Plan, error) {
	plan := buildplan.New()

	for _, pkg := range desc.Packages {
		resolved, err := r.queryer.Lookup(pkg.Name)
		if err != nil {
			return nil, errs.Wrap(err, "lookup of %s failed", pkg.Name)
		}

		if !resolved.Found {
			if pkg.Required() {
				return nil, &ErrMissingPackage{pkg.Name}
			}
			logging.Debug("Optional package %s not found, skipping", pkg.Name)
			continue
		}

		if pkg.Version != "" {
			ok, err := Satisfies(resolved.Version, pkg.Version)
			if err != nil {
				return nil, errs.Wrap(err, "could not check version constraint for %s", pkg.Name)
			}
			if !ok {
				if pkg.Required() {
					return nil, &ErrVersionMismatch{pkg.Name, resolved.Version, pkg.Version}
				}
				logging.Debug("Optional package %s version %s outside %s, skipping", pkg.Name, resolved.Version, pkg.Version)
				continue
			}
		}

		plan.AddIncludePaths(resolved.IncludePaths...)
	}

	for _, sub := range desc.Subdirs {
		childPlan, err := r.resolveSubdir(desc, sub, visited)
		if err != nil {
			return nil, &ErrSubdirectory{sub, err}
		}
		plan.AddChild(childPlan)
	}

	return plan, nil
}

func (r *Resolver) resolveSubdir(parent *descriptor.Descriptor, sub string, visited map[string]struct{}) (*buildplan.Plan, error) {
	dir := sub
	if parentDir := parent.Dir(); parentDir != "" {
		dir = filepath.Join(parentDir, sub)
	}

	normalized := normalizeDir(dir)
	if _, ok := visited[normalized]; ok {
		return nil, &ErrCycle{dir}
	}
	visited[normalized] = struct{}{}

	if parent.Dir() != "" && !fileutils.DirExists(dir) {
		return nil, errs.New("directory %s does not exist", dir)
	}

	childDesc, err := r.loader.Load(dir)
	if err != nil {
		return nil, err
	}

	return r.resolve(childDesc, visited)
}

func normalizeDir(dir string) string {
	if dir == "" {
		return ""
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return filepath.Clean(dir)
}

// Satisfies reports whether the installed version matches the constraint,
// e.g. Satisfies("1.14.0", ">= 1.10").
func Satisfies(installed, constraint string) (bool, error) {
	c, err := goversion.NewConstraint(constraint)
	if err != nil {
		return false, errs.Wrap(err, "invalid version constraint %q", constraint)
	}
	v, err := goversion.NewVersion(installed)
	if err != nil {
		return false, errs.Wrap(err, "invalid installed version %q", installed)
	}
	return c.Check(v), nil
}
