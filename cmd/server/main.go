package main

import (
	"context"
	"log"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/honeycarbs/skillviz/internal/config"
	"github.com/honeycarbs/skillviz/internal/mcp"
	"github.com/honeycarbs/skillviz/pkg/logging"
	"github.com/honeycarbs/skillviz/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	resources, err := mcp.InitializeResources(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		os.Exit(1)
	}
	if resources.Neo4jClient != nil {
		defer func() { _ = resources.Neo4jClient.Close(context.Background()) }()
	}

	srv := mcp.NewServer(logger, cfg, resources.ToolOptions()...)

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		10*time.Second,
		logger,
	)

	logger.Info("analytics server initialized and starting",
		"addr", net.JoinHostPort(cfg.Host, cfg.Port),
		"storage", cfg.Storage.Backend,
		"records", resources.Dataset.TotalRecords(),
	)

	if err := srv.Run(); err != nil {
		logger.Error("server exited with error", "err", err)
	} else {
		logger.Info("server stopped")
	}
}
