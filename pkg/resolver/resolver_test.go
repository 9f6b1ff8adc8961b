package resolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planforge/cli/pkg/buildplan"
	"github.com/planforge/cli/pkg/descriptor"
	"github.com/planforge/cli/pkg/hostpkg"
)

type fakeQueryer map[string]hostpkg.Resolved

func (f fakeQueryer) Lookup(name string) (hostpkg.Resolved, error) {
	if r, ok := f[name]; ok {
		return r, nil
	}
	return hostpkg.Resolved{Name: name, Found: false}, nil
}

type fakeLoader map[string]*descriptor.Descriptor

func (f fakeLoader) Load(dir string) (*descriptor.Descriptor, error) {
	if d, ok := f[dir]; ok {
		return d, nil
	}
	return nil, &descriptor.ErrNotFound{Path: dir}
}

func newResolver(t *testing.T, q hostpkg.Queryer, l Loader) *Resolver {
	t.Helper()
	r, err := New(q, l)
	require.NoError(t, err)
	return r
}

func TestResolveEmptyDescriptor(t *testing.T) {
	r := newResolver(t, fakeQueryer{}, fakeLoader{})

	plan, err := r.Resolve(&descriptor.Descriptor{Name: "empty"})
	require.NoError(t, err)

	assert.Empty(t, plan.IncludePaths)
	assert.Empty(t, plan.Children)
}

func TestResolveScenario(t *testing.T) {
	// Descriptor {LLMINFER, [GTest required], ["test"]} with GTest installed
	// and an empty descriptor in "test".
	q := fakeQueryer{
		"GTest": {Name: "GTest", Found: true, Version: "1.14.0", IncludePaths: []string{"/usr/include/gtest"}},
	}
	l := fakeLoader{
		"test": {Name: "test"},
	}
	r := newResolver(t, q, l)

	plan, err := r.Resolve(&descriptor.Descriptor{
		Name:     "LLMINFER",
		Packages: []descriptor.Package{{Name: "GTest"}},
		Subdirs:  []string{"test"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/usr/include/gtest"}, plan.IncludePaths)
	require.Len(t, plan.Children, 1)
	assert.Empty(t, plan.Children[0].IncludePaths)
	assert.Empty(t, plan.Children[0].Children)
}

func TestResolveMissingRequiredPackage(t *testing.T) {
	r := newResolver(t, fakeQueryer{}, fakeLoader{"test": {Name: "test"}})

	plan, err := r.Resolve(&descriptor.Descriptor{
		Name:     "LLMINFER",
		Packages: []descriptor.Package{{Name: "GTest"}},
		Subdirs:  []string{"test"},
	})

	require.Error(t, err)
	var missing *ErrMissingPackage
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "GTest", missing.Name)
	assert.Nil(t, plan, "no partial plan may be returned")
}

func TestResolveOptionalPackageSkipped(t *testing.T) {
	r := newResolver(t, fakeQueryer{}, fakeLoader{})

	plan, err := r.Resolve(&descriptor.Descriptor{
		Name:     "proj",
		Packages: []descriptor.Package{{Name: "benchmark", Optional: true}},
	})
	require.NoError(t, err)
	assert.Empty(t, plan.IncludePaths)
}

func TestResolveIdempotent(t *testing.T) {
	q := fakeQueryer{
		"zlib": {Name: "zlib", Found: true, Version: "1.3", IncludePaths: []string{"/usr/include"}},
	}
	l := fakeLoader{"sub": {Name: "sub", Packages: []descriptor.Package{{Name: "zlib"}}}}
	r := newResolver(t, q, l)

	desc := &descriptor.Descriptor{
		Name:     "proj",
		Packages: []descriptor.Package{{Name: "zlib"}},
		Subdirs:  []string{"sub"},
	}

	first, err := r.Resolve(desc)
	require.NoError(t, err)
	second, err := r.Resolve(desc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveChildOrderMatchesDeclaration(t *testing.T) {
	q := fakeQueryer{
		"a": {Name: "a", Found: true, IncludePaths: []string{"/a"}},
		"b": {Name: "b", Found: true, IncludePaths: []string{"/b"}},
		"c": {Name: "c", Found: true, IncludePaths: []string{"/c"}},
	}
	l := fakeLoader{
		"one":   {Name: "one", Packages: []descriptor.Package{{Name: "c"}}},
		"two":   {Name: "two", Packages: []descriptor.Package{{Name: "a"}}},
		"three": {Name: "three", Packages: []descriptor.Package{{Name: "b"}}},
	}
	r := newResolver(t, q, l)

	plan, err := r.Resolve(&descriptor.Descriptor{
		Name:    "proj",
		Subdirs: []string{"one", "two", "three"},
	})
	require.NoError(t, err)

	require.Len(t, plan.Children, 3)
	assert.Equal(t, []string{"/c"}, plan.Children[0].IncludePaths)
	assert.Equal(t, []string{"/a"}, plan.Children[1].IncludePaths)
	assert.Equal(t, []string{"/b"}, plan.Children[2].IncludePaths)
}

func TestResolveDeduplicatesWithinPlan(t *testing.T) {
	q := fakeQueryer{
		"a": {Name: "a", Found: true, IncludePaths: []string{"/usr/include", "/a"}},
		"b": {Name: "b", Found: true, IncludePaths: []string{"/usr/include", "/b"}},
	}
	r := newResolver(t, q, fakeLoader{})

	plan, err := r.Resolve(&descriptor.Descriptor{
		Name:     "proj",
		Packages: []descriptor.Package{{Name: "a"}, {Name: "b"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/b", "/usr/include"}, plan.IncludePaths)
}

func TestResolveDoesNotMergeChildPathsIntoParent(t *testing.T) {
	q := fakeQueryer{
		"child-pkg": {Name: "child-pkg", Found: true, IncludePaths: []string{"/child"}},
	}
	l := fakeLoader{
		"sub": {Name: "sub", Packages: []descriptor.Package{{Name: "child-pkg"}}},
	}
	r := newResolver(t, q, l)

	plan, err := r.Resolve(&descriptor.Descriptor{Name: "proj", Subdirs: []string{"sub"}})
	require.NoError(t, err)

	assert.Empty(t, plan.IncludePaths)
	require.Len(t, plan.Children, 1)
	assert.Equal(t, []string{"/child"}, plan.Children[0].IncludePaths)
}

func TestResolveSubdirFailurePropagates(t *testing.T) {
	q := fakeQueryer{}
	l := fakeLoader{
		"broken": {Name: "broken", Packages: []descriptor.Package{{Name: "GTest"}}},
	}
	r := newResolver(t, q, l)

	plan, err := r.Resolve(&descriptor.Descriptor{Name: "proj", Subdirs: []string{"broken"}})

	require.Error(t, err)
	assert.Nil(t, plan)

	var subErr *ErrSubdirectory
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, "broken", subErr.Path)

	// The cause stays reachable through the chain
	var missing *ErrMissingPackage
	assert.ErrorAs(t, err, &missing)
}

func TestResolveSubdirWithoutDescriptorFails(t *testing.T) {
	r := newResolver(t, fakeQueryer{}, fakeLoader{})

	_, err := r.Resolve(&descriptor.Descriptor{Name: "proj", Subdirs: []string{"ghost"}})

	var subErr *ErrSubdirectory
	require.ErrorAs(t, err, &subErr)
	var notFound *descriptor.ErrNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestResolveNestedSubdirFailureNamesEachLevel(t *testing.T) {
	l := fakeLoader{
		"mid": {Name: "mid", Subdirs: []string{"deep"}},
	}
	r := newResolver(t, fakeQueryer{}, l)

	_, err := r.Resolve(&descriptor.Descriptor{Name: "proj", Subdirs: []string{"mid"}})

	var outer *ErrSubdirectory
	require.ErrorAs(t, err, &outer)
	assert.Equal(t, "mid", outer.Path)

	var inner *ErrSubdirectory
	require.ErrorAs(t, outer.Unwrap(), &inner)
	assert.Equal(t, "deep", inner.Path)
}

func TestResolveVersionConstraint(t *testing.T) {
	q := fakeQueryer{
		"GTest": {Name: "GTest", Found: true, Version: "1.8.0", IncludePaths: []string{"/usr/include/gtest"}},
	}
	r := newResolver(t, q, fakeLoader{})

	// Constraint satisfied
	plan, err := r.Resolve(&descriptor.Descriptor{
		Name:     "proj",
		Packages: []descriptor.Package{{Name: "GTest", Version: ">= 1.6"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/usr/include/gtest"}, plan.IncludePaths)

	// Constraint violated on a required package
	_, err = r.Resolve(&descriptor.Descriptor{
		Name:     "proj",
		Packages: []descriptor.Package{{Name: "GTest", Version: ">= 1.10"}},
	})
	var mismatch *ErrVersionMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "1.8.0", mismatch.Installed)

	// Constraint violated on an optional package degrades to omission
	plan, err = r.Resolve(&descriptor.Descriptor{
		Name:     "proj",
		Packages: []descriptor.Package{{Name: "GTest", Version: ">= 1.10", Optional: true}},
	})
	require.NoError(t, err)
	assert.Empty(t, plan.IncludePaths)
}

func TestResolveCycleDetected(t *testing.T) {
	l := fakeLoader{
		"a": {Name: "a"},
	}
	r := newResolver(t, fakeQueryer{}, l)

	_, err := r.Resolve(&descriptor.Descriptor{Name: "proj", Subdirs: []string{"a", "a"}})

	var cycle *ErrCycle
	assert.ErrorAs(t, err, &cycle)
}

func TestResolveFromDisk(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "planforge.yaml"), []byte(`
name: LLMINFER
packages:
  - name: GTest
subdirectories:
  - test
`), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "test"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "test", "planforge.yaml"), []byte(`name: test`), 0644))

	q := fakeQueryer{
		"GTest": {Name: "GTest", Found: true, Version: "1.14.0", IncludePaths: []string{"/usr/include/gtest"}},
	}
	r := newResolver(t, q, FileLoader)

	desc, err := descriptor.FromDir(root)
	require.NoError(t, err)

	plan, err := r.Resolve(desc)
	require.NoError(t, err)
	assert.Equal(t, []string{"/usr/include/gtest"}, plan.IncludePaths)
	require.Len(t, plan.Children, 1)
}

func TestResolveMissingSubdirOnDisk(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "planforge.yaml"), []byte(`
name: LLMINFER
subdirectories:
  - missing
`), 0644))

	r := newResolver(t, fakeQueryer{}, FileLoader)

	desc, err := descriptor.FromDir(root)
	require.NoError(t, err)

	_, err = r.Resolve(desc)
	var subErr *ErrSubdirectory
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, "missing", subErr.Path)
}

func TestResolvedPlanSurvivesMarshalling(t *testing.T) {
	q := fakeQueryer{
		"GTest": {Name: "GTest", Found: true, IncludePaths: []string{"/usr/include/gtest"}},
	}
	l := fakeLoader{"test": {Name: "test"}}
	r := newResolver(t, q, l)

	plan, err := r.Resolve(&descriptor.Descriptor{
		Name:     "LLMINFER",
		Packages: []descriptor.Package{{Name: "GTest"}},
		Subdirs:  []string{"test"},
	})
	require.NoError(t, err)

	b, err := plan.Marshal()
	require.NoError(t, err)
	reparsed, err := buildplan.Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, plan, reparsed)
}
