package cfg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planforge/cli/internal/config"
	"github.com/planforge/cli/internal/constants"
	"github.com/planforge/cli/internal/locale"
	"github.com/planforge/cli/internal/output"
	"github.com/planforge/cli/internal/primer"
	"github.com/planforge/cli/internal/rtutils/singlethread"
)

func newTestRunner(t *testing.T) (*Cfg, *config.Instance, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	out, err := output.New("plain", &output.Config{OutWriter: &buf, ErrWriter: &buf})
	require.NoError(t, err)

	cfg, err := config.NewCustom(t.TempDir(), singlethread.New(), true)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, cfg.Close()) })

	return New(primer.New(out, cfg)), cfg, &buf
}

func TestSetThenGet(t *testing.T) {
	runner, cfg, buf := newTestRunner(t)

	require.NoError(t, runner.Set(&SetParams{Key: constants.CfgPkgConfigBin, Value: "/opt/bin/pkg-config"}))
	assert.Equal(t, "/opt/bin/pkg-config", cfg.GetString(constants.CfgPkgConfigBin))

	buf.Reset()
	require.NoError(t, runner.Get(&GetParams{Key: constants.CfgPkgConfigBin}))
	assert.Contains(t, buf.String(), "/opt/bin/pkg-config")
}

func TestSetKeepsValueTypes(t *testing.T) {
	runner, cfg, _ := newTestRunner(t)

	require.NoError(t, runner.Set(&SetParams{Key: constants.CfgFlattenDedupe, Value: "true"}))
	assert.True(t, cfg.GetBool(constants.CfgFlattenDedupe))
}

func TestGetUnsetKey(t *testing.T) {
	runner, _, _ := newTestRunner(t)

	err := runner.Get(&GetParams{Key: "no.such.key"})
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
}
