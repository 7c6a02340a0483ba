package main

import (
	"github.com/spf13/cobra"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/mcp"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
)

var runPromptServer = mcp.RunPromptServer

func newMcpPromptsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:    messages.McpPromptsUse,
		Short:  messages.McpPromptsShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cat, err := root.load()
			if err != nil {
				return err
			}
			return runPromptServer(cmd.Context(), Version, cfg, cat)
		},
	}
}
