package svgset

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Build deduplicated icon manifests from SVG directories"
	MsgBuildShort      = "Build the icon manifest from a source directory"
	MsgInspectShort    = "List the icons and aliases of a manifest"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrBuild       = "build failed: %w"
	MsgErrInspect     = "failed to inspect manifest: %w"
	MsgErrGenConfig   = "failed to render configuration: %w"
	MsgErrRenderer    = "failed to create renderer: %w"
	MsgErrBuildFailed = "%d icon(s) failed and --strict is set"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default ./svgset.toml when present)"
	MsgFlagReport    = "Report format: auto, term, text or json"
	MsgFlagPrefix    = "Icon set prefix (naming.prefix)"
	MsgFlagOutput    = "Manifest path (output.path)"
	MsgFlagFormat    = "Manifest format: json or yaml (output.format)"
	MsgFlagNoSubdirs = "Only import files directly under the source directory"
	MsgFlagPretty    = "Indent the JSON manifest (output.pretty)"
	MsgFlagDryRun    = "Run the whole pass without writing the manifest"
	MsgFlagStrict    = "Exit with an error when any icon was discarded"
	MsgFlagWrite     = "Write svgset.toml instead of printing"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/build-long.txt
	msgBuildLongRaw string
	MsgBuildLong    = strings.TrimSpace(msgBuildLongRaw)

	//go:embed msgs/build-example.txt
	msgBuildExampleRaw string
	MsgBuildExample    = strings.TrimRight(msgBuildExampleRaw, "\n")

	//go:embed msgs/inspect-long.txt
	msgInspectLongRaw string
	MsgInspectLong    = strings.TrimSpace(msgInspectLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
