package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Resolve and configure rule modules"
	MsgResolveShort   = "Resolve module names to canonical identifiers"
	MsgAliasesShort   = "List the built-in module aliases"
	MsgCheckShort     = "Set up the configured modules for a set of files"
	MsgGenConfigShort = "Print a starter configuration file"
	MsgVersionShort   = "Print version information"

	// Result messages
	MsgResolvedFormat   = "%s -> %s (%s, %d %s)\n"
	MsgPropertyFormat   = "    %s = %s\n"
	MsgUnresolvedFormat = "%s: %s\n"
	MsgMetricFormat     = "  %s%s %g\n"
	MsgModuleFormat     = "  %-32s %T\n"
	MsgFilesFormat      = "Files: %d kept, %d excluded\n"
	MsgExcludedItem     = "  - %s\n"
	MsgConfigWritten    = "Wrote %s\n"

	// Error messages
	MsgErrUnresolved  = "%d of %d module name(s) could not be resolved"
	MsgErrConfigExist = "%s already exists, use --force to overwrite"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Configuration file, replaces the ruleset.toml lookup"
	MsgFlagPackage  = "Extra package to search, may be repeated"
	MsgFlagMetrics  = "Print resolver counters when done"
	MsgFlagFormat   = "Output format: auto, text, yaml or markdown"
	MsgFlagUnused   = "Report suppressions that matched nothing"
	MsgFlagOutput   = "Write to this file instead of standard output"
	MsgFlagForce    = "Overwrite the output file if it exists"
	MsgFlagNoEnv    = "Ignore RULESET_* environment variables"
	MsgFlagProperty = "Print the configured properties of each module"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/resolve-long.txt
	msgResolveLongRaw string
	MsgResolveLong    = strings.TrimSpace(msgResolveLongRaw)

	//go:embed msgs/resolve-example.txt
	msgResolveExampleRaw string
	MsgResolveExample    = strings.TrimRight(msgResolveExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)
)
