package buildplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddIncludePathsDedupes(t *testing.T) {
	p := New()
	p.AddIncludePaths("/usr/include/gtest", "/opt/include")
	p.AddIncludePaths("/usr/include/gtest")

	assert.Equal(t, []string{"/opt/include", "/usr/include/gtest"}, p.IncludePaths)
}

func TestChildOrderPreserved(t *testing.T) {
	p := New()
	first, second := New(), New()
	p.AddChild(first)
	p.AddChild(second)

	require.Len(t, p.Children, 2)
	assert.Same(t, first, p.Children[0])
	assert.Same(t, second, p.Children[1])
}

func TestFlatten(t *testing.T) {
	child := New()
	child.AddIncludePaths("/usr/include/gtest", "/child/only")

	p := New()
	p.AddIncludePaths("/usr/include/gtest", "/parent/only")
	p.AddChild(child)

	// Duplicates across plan boundaries survive without dedupe
	assert.Equal(t,
		[]string{"/parent/only", "/usr/include/gtest", "/child/only", "/usr/include/gtest"},
		p.Flatten(false))

	assert.Equal(t,
		[]string{"/parent/only", "/usr/include/gtest", "/child/only"},
		p.Flatten(true))
}

func TestMarshalRoundtrip(t *testing.T) {
	child := New()
	p := New()
	p.AddIncludePaths("/usr/include/gtest")
	p.AddChild(child)

	b, err := p.Marshal()
	require.NoError(t, err)

	reparsed, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, p, reparsed)
}

func TestDiffIncludePaths(t *testing.T) {
	old := New()
	old.AddIncludePaths("/stays", "/goes")

	current := New()
	current.AddIncludePaths("/stays", "/arrives")

	diff := current.DiffIncludePaths(old)
	assert.Equal(t, []string{"/arrives"}, diff.Added)
	assert.Equal(t, []string{"/goes"}, diff.Removed)
}
