package config

const (
	defaultProcesses = 8
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// DefaultExtensions lists the Unity asset types that store references as
// readable YAML and are therefore worth searching for GUIDs. Binary-serialized
// projects should shrink this list in config.
var DefaultExtensions = []string{
	".asset",
	".prefab",
	".mat",
	".unity",
	".shadergraph",
	".asmdef",
	".controller",
	".overridecontroller",
	".vfx",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Processes:  defaultProcesses,
			Extensions: append([]string(nil), DefaultExtensions...),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
