package hostpkg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIncludeFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags string
		want  []string
	}{
		{"single", "-I/usr/include/gtest", []string{"/usr/include/gtest"}},
		{"multiple", "-I/usr/include/gtest -I/opt/include", []string{"/usr/include/gtest", "/opt/include"}},
		{"duplicates", "-I/usr/include -I/usr/include", []string{"/usr/include"}},
		{"mixed flags", "-pthread -I/usr/include -DNDEBUG", []string{"/usr/include"}},
		{"empty", "", []string{}},
		{"bare dash I", "-I", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseIncludeFlags(tt.flags))
		})
	}
}

type countingQueryer struct {
	lookups int
	results map[string]Resolved
}

func (c *countingQueryer) Lookup(name string) (Resolved, error) {
	c.lookups++
	return c.results[name], nil
}

func TestCachedMemoizes(t *testing.T) {
	underlying := &countingQueryer{results: map[string]Resolved{
		"GTest": {Name: "GTest", Found: true, Version: "1.14.0", IncludePaths: []string{"/usr/include/gtest"}},
	}}
	cached := NewCached(underlying, time.Minute)

	first, err := cached.Lookup("GTest")
	require.NoError(t, err)
	second, err := cached.Lookup("GTest")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, underlying.lookups)
}

func TestCachedCachesNotFound(t *testing.T) {
	underlying := &countingQueryer{results: map[string]Resolved{}}
	cached := NewCached(underlying, time.Minute)

	r, err := cached.Lookup("nope")
	require.NoError(t, err)
	assert.False(t, r.Found)

	_, err = cached.Lookup("nope")
	require.NoError(t, err)
	assert.Equal(t, 1, underlying.lookups)
}
