// Package mcp serves random builds as MCP prompts.
package mcp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/catalog"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/config"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/projection"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/report"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/share"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/templates"
)

// Prompt names. Profiles are served as ProfilePromptPrefix + profile name.
const (
	DefaultPromptName   = "random"
	ProfilePromptPrefix = "profile-"
	SeedArgument        = "seed"
)

const promptTemplate = "prompts/profile.md"

type promptServerRunner func(ctx context.Context, server *mcp.Server) error

type promptData struct {
	Profile     string
	Description string
	Version     string
	Query       string
	Sheet       string
}

// RunPromptServer serves one prompt for the top-level settings and one per
// profile over stdio. Every prompt request draws a fresh build.
func RunPromptServer(ctx context.Context, version string, cfg *config.Config, cat *catalog.Catalog) error {
	return runPromptServer(ctx, version, cfg, cat, defaultPromptServerRunner)
}

func runPromptServer(ctx context.Context, version string, cfg *config.Config, cat *catalog.Catalog, runner promptServerRunner) error {
	if runner == nil {
		return fmt.Errorf(messages.McpRunPromptServerFailedFmt, errors.New("prompt server runner is nil"))
	}
	server, err := newPromptServer(version, cfg, cat)
	if err != nil {
		return fmt.Errorf(messages.McpRunPromptServerFailedFmt, err)
	}
	if err := runner(ctx, server); err != nil {
		return fmt.Errorf(messages.McpRunPromptServerFailedFmt, err)
	}
	return nil
}

func newPromptServer(version string, cfg *config.Config, cat *catalog.Catalog) (*mcp.Server, error) {
	raw, err := templates.Read(promptTemplate)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(promptTemplate).Parse(string(raw))
	if err != nil {
		return nil, err
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "ac6",
		Version: version,
	}, nil)

	server.AddPrompt(newPrompt(DefaultPromptName, messages.McpDefaultPromptDescription), promptHandler(cfg, cat, "", tmpl))
	for _, name := range cfg.ProfileNames() {
		profile, _ := cfg.Profile(name)
		description := profile.Description
		if description == "" {
			description = fmt.Sprintf(messages.McpProfilePromptDescriptionFmt, name)
		}
		server.AddPrompt(newPrompt(ProfilePromptPrefix+name, description), promptHandler(cfg, cat, name, tmpl))
	}
	return server, nil
}

func newPrompt(name string, description string) *mcp.Prompt {
	return &mcp.Prompt{
		Name:        name,
		Description: description,
		Arguments: []*mcp.PromptArgument{{
			Name:        SeedArgument,
			Description: messages.McpSeedArgumentDescription,
		}},
	}
}

func defaultPromptServerRunner(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

func promptHandler(cfg *config.Config, cat *catalog.Catalog, profile string, tmpl *template.Template) func(context.Context, *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		var args map[string]string
		if req != nil && req.Params != nil {
			args = req.Params.Arguments
		}
		text, description, err := renderPrompt(cfg, cat, profile, args, tmpl)
		if err != nil {
			return nil, err
		}
		return &mcp.GetPromptResult{
			Description: description,
			Messages: []*mcp.PromptMessage{
				{
					Role:    "user",
					Content: &mcp.TextContent{Text: text},
				},
			},
		}, nil
	}
}

func renderPrompt(cfg *config.Config, cat *catalog.Catalog, profile string, args map[string]string, tmpl *template.Template) (string, string, error) {
	overrides := projection.Overrides{Profile: profile}
	if raw := strings.TrimSpace(args[SeedArgument]); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return "", "", fmt.Errorf(messages.McpInvalidSeedFmt, raw, err)
		}
		overrides.Seed = &seed
	}

	plan, err := projection.Build(cfg, cat, overrides)
	if err != nil {
		return "", "", err
	}
	b, err := plan.Assembler.Assemble(plan.Candidates)
	if err != nil {
		return "", "", err
	}

	data := promptData{
		Profile: profile,
		Version: cat.Version,
		Query:   share.Encode(b, cat.Version),
		Sheet:   report.PlainSheet(b),
	}
	if data.Profile == "" {
		data.Profile = DefaultPromptName
	}
	if plan.Profile != nil {
		data.Description = plan.Profile.Description
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return buf.String(), data.Description, nil
}
