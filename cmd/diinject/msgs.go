package main

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Explore a process-wide service container"
	MsgDemoShort    = "Resolve a singleton, a transient and a missing service"
	MsgInspectShort = "Show the bindings of the shared container"
	MsgConfigShort  = "Print the effective configuration"
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"

	// Demo output
	MsgResolveInstance = "  resolve #%d: %s (%s)\n"
	MsgResolveValue    = "  resolve #%d: %s\n"
	MsgFirstInstance   = "first resolution"
	MsgSameInstance    = "same instance"
	MsgNewInstance     = "new instance"
	MsgDistinctValues  = "  %d distinct values"
	MsgNotFound        = "  not found"
	MsgServiceNotFound = "  %s not found"
	MsgLoggerGreeting  = "hello from the shared logger"

	// Config output
	MsgConfigSource   = "# source: %s\n"
	MsgDefaultsSource = "built-in defaults"

	// Version output
	MsgVersionFormat = "diinject version %s\n"
	MsgCommitFormat  = "  commit: %s\n"
	MsgBuiltFormat   = "  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "config file (default is $XDG_CONFIG_HOME/diinject/config.toml)"
	MsgFlagFormat  = "output format: table, json, yaml or toml (default from config)"
	MsgFlagResolve = "number of times each service is resolved before the snapshot"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/demo-long.txt
	msgDemoLongRaw string
	MsgDemoLong    = strings.TrimSpace(msgDemoLongRaw)

	//go:embed msgs/inspect-long.txt
	msgInspectLongRaw string
	MsgInspectLong    = strings.TrimSpace(msgInspectLongRaw)

	//go:embed msgs/inspect-example.txt
	msgInspectExampleRaw string
	MsgInspectExample    = strings.TrimRight(msgInspectExampleRaw, "\n")
)
