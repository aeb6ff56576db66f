package defs

// Output documents written by an export.
const (
	// VotingJSON is the voting document read by the game server.
	VotingJSON = "voting.json"

	// ModsJSON lists the mod packs the voting document depends on.
	ModsJSON = "mods.json"
)

// Subdirectories expected inside the folder chosen by the user.
const (
	MapVariantsDir  = "map_variants"
	GameVariantsDir = "game_variants"
)

// Persisted store files under the configuration directory.
const (
	// AppDirName is the directory created under os.UserConfigDir().
	AppDirName = "eldewrito-json-builder"

	UserConfigYAML = "userConfig.yaml"
	SavedJSONsFile = "savedJsons.json"

	// DotEnvFile is loaded from the working directory when present.
	DotEnvFile = ".env"
)

// Environment variables recognised by the builder.
const (
	EnvConfigDir    = "EDJB_CONFIG_DIR"
	EnvLogLevel     = "EDJB_LOG_LEVEL"
	EnvBackground   = "EDJB_BACKGROUND"
	EnvHighContrast = "EDJB_HIGH_CONTRAST"
	EnvNoColor      = "EDJB_NO_COLOR"

	// EnvHelpURL names the page opened by the help action. When unset
	// only the bundled guide is shown.
	EnvHelpURL = "EDJB_HELP_URL"
)
