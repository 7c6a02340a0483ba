package messages

// MCP prompt server messages.
const (
	// McpRunPromptServerFailedFmt formats MCP prompt server failures.
	McpRunPromptServerFailedFmt = "failed to run MCP prompt server: %w"

	McpDefaultPromptDescription    = "Draw a random build with the top-level settings of ac6.toml."
	McpProfilePromptDescriptionFmt = "Draw a random build with the %q profile."
	McpSeedArgumentDescription     = "Optional unsigned integer seed; equal seeds replay equal builds."
	McpInvalidSeedFmt              = "seed %q is not an unsigned integer: %w"
)
