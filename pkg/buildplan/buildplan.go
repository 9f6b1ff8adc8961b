// Package buildplan models the resolved output of a resolution pass: the
// include paths a project needs, plus the plans of its subdirectories,
// composed in declaration order.
package buildplan

import (
	"encoding/json"
	"sort"

	yaml "gopkg.in/yaml.v2"

	"github.com/planforge/cli/internal/errs"
	"github.com/planforge/cli/internal/sliceutils"
)

// Plan is a composed build plan. IncludePaths is a set (deduplicated by
// exact string equality, stored sorted so equal plans are structurally
// equal); Children holds one plan per subdirectory in declaration order.
// Child include paths are never merged into the parent.
type Plan struct {
	IncludePaths []string `json:"include_paths" yaml:"include_paths"`
	Children     []*Plan  `json:"children,omitempty" yaml:"children,omitempty"`
}

func New() *Plan {
	return &Plan{IncludePaths: []string{}}
}

// AddIncludePaths adds the given paths to the plan's include path set,
// ignoring exact duplicates.
func (p *Plan) AddIncludePaths(paths ...string) {
	p.IncludePaths = sliceutils.Unique(append(p.IncludePaths, paths...))
	sort.Strings(p.IncludePaths)
}

// AddChild appends a subdirectory plan. Order of calls is preserved.
func (p *Plan) AddChild(child *Plan) {
	p.Children = append(p.Children, child)
}

// Flatten returns every include path in the plan tree, depth-first, parent
// before children. With dedupe set, paths repeated across plan boundaries
// appear once; within a single plan they are already unique.
func (p *Plan) Flatten(dedupe bool) []string {
	paths := append([]string{}, p.IncludePaths...)
	for _, child := range p.Children {
		paths = append(paths, child.Flatten(false)...)
	}
	if dedupe {
		return sliceutils.Unique(paths)
	}
	return paths
}

// Marshal serializes the plan as indented JSON, the format the build
// executor consumes.
func (p *Plan) Marshal() ([]byte, error) {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, errs.Wrap(err, "error marshalling build plan")
	}
	return b, nil
}

// MarshalYaml serializes the plan as yaml.
func (p *Plan) MarshalYaml() ([]byte, error) {
	b, err := yaml.Marshal(p)
	if err != nil {
		return nil, errs.Wrap(err, "error marshalling build plan")
	}
	return b, nil
}

// Unmarshal parses a JSON plan previously produced by Marshal.
func Unmarshal(data []byte) (*Plan, error) {
	p := &Plan{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, errs.Wrap(err, "error unmarshalling build plan")
	}
	return p, nil
}

// Changeset describes how the include path set changed between two
// resolutions of the same project.
type Changeset struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
}

// DiffIncludePaths compares the flattened include paths of this plan against
// an older one.
func (p *Plan) DiffIncludePaths(old *Plan) Changeset {
	newPaths := p.Flatten(true)
	oldPaths := old.Flatten(true)

	added := sliceutils.Filter(newPaths, func(path string) bool {
		return !sliceutils.Contains(oldPaths, path)
	})
	removed := sliceutils.Filter(oldPaths, func(path string) bool {
		return !sliceutils.Contains(newPaths, path)
	})

	return Changeset{Added: added, Removed: removed}
}
