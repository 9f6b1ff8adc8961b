package constants

// LibraryName is the name under which this tool stores its internal data.
const LibraryName = "planforge"

// CommandName is the name of the installed binary.
const CommandName = "planforge"

// DescriptorFileName is the name of the project descriptor file.
const DescriptorFileName = "planforge.yaml"

// DescriptorEnvVarName overrides the descriptor lookup path.
const DescriptorEnvVarName = "PLANFORGE_PROJECT"

// ConfigEnvVarName overrides the directory at which tool config is stored.
const ConfigEnvVarName = "PLANFORGE_CONFIGDIR"

// InternalConfigFileName is the name of the config database file.
const InternalConfigFileName = "config.db"

// LogEnvVarName sets the minimal log level by name (DEBUG, INFO, ...).
const LogEnvVarName = "PLANFORGE_LOGLEVEL"

// PkgConfigEnvVarName overrides the pkg-config binary used for host queries.
const PkgConfigEnvVarName = "PLANFORGE_PKGCONFIG"

// Config keys.
const (
	// CfgPkgConfigBin is the config key holding the pkg-config binary path.
	CfgPkgConfigBin = "pkgconfig.bin"

	// CfgQueryCacheTTL is the config key holding the host query cache TTL.
	CfgQueryCacheTTL = "pkgconfig.cache_ttl"

	// CfgFlattenDedupe is the config key controlling whether exported plans
	// deduplicate include paths across plan boundaries.
	CfgFlattenDedupe = "plan.flatten_dedupe"
)
