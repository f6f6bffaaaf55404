package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"mendmd/internal/application/commands"
	"mendmd/internal/ports"
)

// RepositoryFactory opens a vault repository for a root path given in a
// tool call.
type RepositoryFactory func(root string) ports.VaultRepository

// RegisterReadTools adds the read-only vault tools to the MCP server.
// None of them modify the vault.
func RegisterReadTools(s *server.MCPServer, open RepositoryFactory, history ports.RunHistory) {
	s.AddTool(scanTool(), scanHandler(open))
	s.AddTool(duplicatesTool(), duplicatesHandler(open))
	s.AddTool(historyTool(), historyHandler(history))
}

// --- scan ---

func scanTool() mcp.Tool {
	return mcp.NewTool("scan",
		mcp.WithDescription("Scan a notes vault and report its file inventory: document and attachment counts plus duplicate filenames. Read-only."),
		mcp.WithString("root",
			mcp.Description("Absolute path of the vault root"),
			mcp.Required(),
		),
	)
}

func scanHandler(open RepositoryFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root := req.GetString("root", "")
		if root == "" {
			return toolError(fmt.Errorf("root is required"))
		}

		result, err := commands.NewScanCommand(open(root)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Files: %d (%d documents, %d attachments)\n",
			len(result.Files), result.Documents, result.Attachments)
		fmt.Fprintf(&sb, "Duplicate filename groups: %d\n", len(result.Duplicates))
		if len(result.Errors) > 0 {
			fmt.Fprintf(&sb, "Scan errors: %d\n", len(result.Errors))
			for _, e := range result.Errors {
				fmt.Fprintf(&sb, "  %v\n", e)
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- duplicates ---

func duplicatesTool() mcp.Tool {
	return mcp.NewTool("duplicates",
		mcp.WithDescription("List groups of files in a vault that share the same filename. Read-only."),
		mcp.WithString("root",
			mcp.Description("Absolute path of the vault root"),
			mcp.Required(),
		),
	)
}

func duplicatesHandler(open RepositoryFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root := req.GetString("root", "")
		if root == "" {
			return toolError(fmt.Errorf("root is required"))
		}

		result, err := commands.NewScanCommand(open(root)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(result.Duplicates) == 0 {
			return mcp.NewToolResultText("No duplicate filenames found."), nil
		}

		var sb strings.Builder
		for _, g := range result.Duplicates {
			fmt.Fprintf(&sb, "%s\n", g.Name)
			for _, p := range g.Paths {
				fmt.Fprintf(&sb, "  %s\n", p)
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("Show recent pipeline runs recorded on this machine."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of runs to return (default 10)"),
		),
	)
}

func historyHandler(history ports.RunHistory) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if history == nil {
			return mcp.NewToolResultText("Run history is not available."), nil
		}

		limit := req.GetInt("limit", 10)
		runs, err := history.Recent(limit)
		if err != nil {
			return toolError(err)
		}
		if len(runs) == 0 {
			return mcp.NewToolResultText("No runs recorded yet."), nil
		}

		var sb strings.Builder
		for _, r := range runs {
			sb.WriteString(r.String())
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
