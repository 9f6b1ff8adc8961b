// Package hostquery constructs the host package queryer that runners share,
// honoring tool configuration.
package hostquery

import (
	"github.com/planforge/cli/internal/config"
	"github.com/planforge/cli/internal/constants"
	"github.com/planforge/cli/pkg/hostpkg"
)

// New builds the production queryer: pkg-config, wrapped in a TTL cache so
// projects that require the same package in multiple subdirectories only pay
// for one lookup.
func New(cfg *config.Instance) hostpkg.Queryer {
	bin := cfg.GetString(constants.CfgPkgConfigBin)
	ttl := cfg.GetDuration(constants.CfgQueryCacheTTL)
	return hostpkg.NewCached(hostpkg.NewPkgConfig(bin), ttl)
}
