package main

import (
	"context"
	"flag"
	"io"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"mendmd/internal/adapters/filesystem"
	mcpadapter "mendmd/internal/adapters/mcp"
	"mendmd/internal/adapters/sqlite"
	"mendmd/internal/adapters/state"
	"mendmd/internal/config"
	"mendmd/internal/logger"
	"mendmd/internal/ports"
)

func main() {
	dataDirFlag := flag.String("data-dir", config.DataDir(), "directory for state records and run history")
	flag.Parse()

	// stdout carries the protocol; keep logs off both streams.
	logger.InitWriter(io.Discard, false)

	history, err := sqlite.OpenHistory(*dataDirFlag)
	if err != nil {
		log.Fatalf("mendmd-mcp: %v", err)
	}
	defer history.Close()

	open := func(root string) ports.VaultRepository {
		return filesystem.NewRepository(root)
	}

	mcpServer := server.NewMCPServer(
		"mendmd-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, open, history)
	mcpadapter.RegisterWriteTools(mcpServer, open, state.NewStore(*dataDirFlag), history)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("mendmd-mcp: %v", err)
	}
}
