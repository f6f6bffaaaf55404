package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"mendmd/internal/adapters/report"
	"mendmd/internal/application/commands"
	"mendmd/internal/domain"
	"mendmd/internal/ports"
)

// RegisterWriteTools adds the tools that modify the vault.
func RegisterWriteTools(s *server.MCPServer, open RepositoryFactory, state ports.StateStore, history ports.RunHistory) {
	s.AddTool(mendTool(), mendHandler(open, state, history))
}

// --- mend ---

func mendTool() mcp.Tool {
	return mcp.NewTool("mend",
		mcp.WithDescription("Run the full pipeline on a vault: rename attachments in the selected categories to timestamp names, then rewrite markdown references to repair broken links. Modifies files in place."),
		mcp.WithString("root",
			mcp.Description("Absolute path of the vault root"),
			mcp.Required(),
		),
		mcp.WithString("categories",
			mcp.Description("Comma-separated attachment categories to rename: image, video, audio, office, other, or all. Defaults to image."),
		),
	)
}

func mendHandler(open RepositoryFactory, state ports.StateStore, history ports.RunHistory) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root := req.GetString("root", "")
		if root == "" {
			return toolError(fmt.Errorf("root is required"))
		}

		cats, err := domain.NormalizeCategories(splitCategories(req.GetString("categories", "")))
		if err != nil {
			return toolError(err)
		}

		runResult, err := commands.NewRunCommand(open(root), state, history, cats).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(report.RenderMarkdown(runResult)), nil
	}
}

func splitCategories(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}
