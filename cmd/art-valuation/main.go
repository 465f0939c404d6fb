package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/chdonahue/art-valuation/internal/catalog"
	"github.com/chdonahue/art-valuation/internal/config"
	"github.com/chdonahue/art-valuation/internal/export"
	"github.com/chdonahue/art-valuation/internal/mcp"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging builds the process logger. In stdio mode all logging goes to
// stderr so it cannot interfere with the MCP protocol on stdout.
func setupLogging(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// runBatchMode processes the catalog directory once and writes the table
func runBatchMode(cfg *config.Config, logger *slog.Logger) error {
	service := catalog.NewService(logger, cfg.MaxFileSize)

	artworks, err := service.ProcessDirectory(cfg.CatalogDirectory)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	switch cfg.OutputFormat {
	case config.FormatXLSX:
		err = export.WriteXLSX(cfg.OutputPath, artworks)
	default:
		err = export.WriteCSV(cfg.OutputPath, artworks)
	}
	if err != nil {
		return fmt.Errorf("failed to write output table: %w", err)
	}

	logger.Info("batch.done", "records", len(artworks), "output", cfg.OutputPath)
	return nil
}

// runStdioMode serves the extraction tools over MCP standard I/O
func runStdioMode(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	service := catalog.NewService(logger, cfg.MaxFileSize)

	server, err := mcp.NewServer(cfg, service)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	return server.Run(ctx)
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() {
		logger.Debug("starting", "config", cfg.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.IsStdioMode() {
		err = runStdioMode(ctx, cfg, logger)
	} else {
		err = runBatchMode(cfg, logger)
	}
	if err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("art-valuation\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
