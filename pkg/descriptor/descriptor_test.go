package descriptor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planforge/cli/internal/constants"
)

func writeDescriptor(t *testing.T, dir, contents string) string {
	t.Helper()
	fpath := filepath.Join(dir, constants.DescriptorFileName)
	require.NoError(t, os.WriteFile(fpath, []byte(contents), 0644))
	return fpath
}

func TestParse(t *testing.T) {
	dir := t.TempDir()
	fpath := writeDescriptor(t, dir, `
name: LLMINFER
packages:
  - name: GTest
  - name: benchmark
    version: ">= 1.6"
    optional: true
subdirectories:
  - test
`)

	d, err := Parse(fpath)
	require.NoError(t, err)

	assert.Equal(t, "LLMINFER", d.Name)
	require.Len(t, d.Packages, 2)
	assert.Equal(t, "GTest", d.Packages[0].Name)
	assert.True(t, d.Packages[0].Required())
	assert.Equal(t, ">= 1.6", d.Packages[1].Version)
	assert.False(t, d.Packages[1].Required())
	assert.Equal(t, []string{"test"}, d.Subdirs)
	assert.Equal(t, fpath, d.Path())
	assert.Equal(t, dir, d.Dir())
}

func TestParseDefaultsNameToDir(t *testing.T) {
	dir := t.TempDir()
	fpath := writeDescriptor(t, dir, `packages: []`)

	d, err := Parse(fpath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), d.Name)
}

func TestParseNotFound(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), constants.DescriptorFileName))
	var notFound *ErrNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestParseInvalidYaml(t *testing.T) {
	dir := t.TempDir()
	fpath := writeDescriptor(t, dir, "name: [unclosed")

	_, err := Parse(fpath)
	var parseErr *ErrParse
	assert.ErrorAs(t, err, &parseErr)
}

func TestValidateRejectsUnnamedPackage(t *testing.T) {
	dir := t.TempDir()
	fpath := writeDescriptor(t, dir, `
name: broken
packages:
  - version: ">= 1"
`)

	_, err := Parse(fpath)
	assert.Error(t, err)
}

func TestValidateRejectsAbsoluteSubdir(t *testing.T) {
	dir := t.TempDir()
	fpath := writeDescriptor(t, dir, `
name: broken
subdirectories:
  - /etc
`)

	_, err := Parse(fpath)
	assert.Error(t, err)
}

func TestFromDirHonorsEnvVar(t *testing.T) {
	dir := t.TempDir()
	fpath := writeDescriptor(t, dir, `name: enved`)
	t.Setenv(constants.DescriptorEnvVarName, fpath)

	d, err := FromDir(t.TempDir()) // dir without a descriptor
	require.NoError(t, err)
	assert.Equal(t, "enved", d.Name)
}

func TestSaveRoundtrip(t *testing.T) {
	dir := t.TempDir()
	fpath := writeDescriptor(t, dir, `
name: roundtrip
packages:
  - name: zlib
`)

	d, err := Parse(fpath)
	require.NoError(t, err)

	d.Packages = append(d.Packages, Package{Name: "GTest", Version: ">= 1.10"})
	require.NoError(t, d.Save())

	reparsed, err := Parse(fpath)
	require.NoError(t, err)
	assert.Equal(t, d.Packages, reparsed.Packages)
}
