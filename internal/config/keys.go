package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Platform API
	KeyAPIEndpoint = "API_ENDPOINT"
	KeyAPIToken    = "API_TOKEN"

	// Server aliases
	KeyAliasFile = "ALIAS_FILE" // Where the rendered ssh config block lands

	// Well-known platform URLs for the open command
	KeyConsoleURL = "CONSOLE_URL"
	KeyDocsURL    = "DOCS_URL"

	// System configuration
	KeyConfigVersion = "CONFIG_VERSION"
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeyAPIEndpoint:   "https://api.nimbushost.io",
	KeyAliasFile:     "~/.nimbus/aliases.conf",
	KeyConsoleURL:    "https://console.nimbushost.io",
	KeyDocsURL:       "https://docs.nimbushost.io",
	KeyConfigVersion: "1",
}
