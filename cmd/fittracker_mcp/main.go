// Package main runs the ledger MCP server over stdio, for local MCP clients.
// The same MCP server is also mounted on the service at /mcp over HTTP.
// The stdio ledger is its own session: it does not share state with a
// running service.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/fittracker/internal/config"
	"github.com/2beens/fittracker/internal/ledger"
	"github.com/2beens/fittracker/internal/logging"
	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/tracker"
	trackermcp "github.com/2beens/fittracker/internal/tracker/mcp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// stdout belongs to the MCP transport
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogsPath,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		ConsoleStderr: true,
		Environment:   cfg.Environment,
	})

	service := tracker.NewService(ledger.New(), metrics.NewManager("fittracker", "mcp_stdio", metrics.SetupPrometheus("fittracker", trackermcp.ServerVersion)))
	server := trackermcp.NewServer(service)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debugln("serving ledger MCP over stdio")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
