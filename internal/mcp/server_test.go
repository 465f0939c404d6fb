package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/chdonahue/art-valuation/internal/catalog"
	"github.com/chdonahue/art-valuation/internal/config"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Mode:             config.ModeStdio,
		CatalogDirectory: dir,
		MaxFileSize:      1024 * 1024,
		Version:          "1.0.0",
		ServerName:       "test-server",
		LogLevel:         "info",
	}
}

func TestNewServer(t *testing.T) {
	cfg := testConfig(t.TempDir())
	service := catalog.NewService(nil, cfg.MaxFileSize)

	server, err := NewServer(cfg, service)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if server == nil {
		t.Fatal("server should not be nil")
	}
	if server.config != cfg {
		t.Error("server config not set correctly")
	}
	if server.service != service {
		t.Error("server service not set correctly")
	}
	if server.mcpServer == nil {
		t.Error("mcpServer should be initialized")
	}
}

func TestNewServer_NilService(t *testing.T) {
	if _, err := NewServer(testConfig(t.TempDir()), nil); err == nil {
		t.Error("expected error for nil service")
	}
}

func TestServer_HandleValidateFile(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "catalog.pdf")
	if err := os.WriteFile(testFile, make([]byte, 1024), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	cfg := testConfig(tempDir)
	server, err := NewServer(cfg, catalog.NewService(nil, cfg.MaxFileSize))
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"path": testFile,
			},
		},
	}

	result, err := server.handleValidateFile(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil {
		t.Fatal("result should not be nil")
	}

	// Zero bytes with a .pdf extension is not a real catalog
	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "validation failed") {
		t.Errorf("expected validation to fail, got: %s", resultText)
	}
}

func TestServer_HandleValidateFile_MissingArgument(t *testing.T) {
	cfg := testConfig(t.TempDir())
	server, err := NewServer(cfg, catalog.NewService(nil, cfg.MaxFileSize))
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{},
		},
	}

	result, err := server.handleValidateFile(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("expected an error result for a missing path argument")
	}
}

func TestServer_HandleSearchDirectory(t *testing.T) {
	tempDir := t.TempDir()
	for _, filename := range []string{"spring.pdf", "autumn.pdf", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(tempDir, filename), make([]byte, 1024), 0o644); err != nil {
			t.Fatalf("failed to create test file %s: %v", filename, err)
		}
	}

	cfg := testConfig(tempDir)
	server, err := NewServer(cfg, catalog.NewService(nil, cfg.MaxFileSize))
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"directory": tempDir,
			},
		},
	}

	result, err := server.handleSearchDirectory(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "Found 2 catalog PDF file(s)") {
		t.Errorf("content should mention 2 catalog files, got: %s", resultText)
	}
	if !strings.Contains(resultText, "autumn.pdf") || !strings.Contains(resultText, "spring.pdf") {
		t.Errorf("content should list the catalog files, got: %s", resultText)
	}
}

func TestServer_HandleSearchDirectory_DefaultsToConfigured(t *testing.T) {
	cfg := testConfig(t.TempDir())
	server, err := NewServer(cfg, catalog.NewService(nil, cfg.MaxFileSize))
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{},
		},
	}

	result, err := server.handleSearchDirectory(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, cfg.CatalogDirectory) {
		t.Errorf("expected the configured directory in: %s", resultText)
	}
}

func TestServer_HandleServerInfo(t *testing.T) {
	cfg := testConfig(t.TempDir())
	server, err := NewServer(cfg, catalog.NewService(nil, cfg.MaxFileSize))
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	result, err := server.handleServerInfo(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	for _, want := range []string{
		"test-server",
		"catalog_extract_file",
		"catalog_extract_directory",
		"catalog_validate_file",
		"catalog_search_directory",
	} {
		if !strings.Contains(resultText, want) {
			t.Errorf("expected %q in server info, got: %s", want, resultText)
		}
	}
}

func extractTextFromResult(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}

	for _, content := range result.Content {
		if textContent, ok := content.(mcp.TextContent); ok {
			return textContent.Text
		}
		if textContentPtr, ok := content.(*mcp.TextContent); ok {
			return textContentPtr.Text
		}
	}

	return ""
}

func TestFormatArtworks(t *testing.T) {
	date := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)
	artworks := []catalog.Artwork{
		{
			Fields: catalog.Record{
				catalog.FieldArtist: "Jane Doe",
				catalog.FieldTitle:  "Untitled",
			},
			Sale: catalog.SaleDetails{
				AuctionHouse: "Christie's",
				SaleDate:     &date,
				LotNumber:    "42",
				IsOnline:     true,
			},
		},
	}

	text := formatArtworks(artworks)
	for _, want := range []string{
		"Record 1:",
		"Title: Untitled",
		"Artist: Jane Doe",
		"auction_house: Christie's",
		"sale_date: 2024-05-15",
		"lot_number: 42",
		"is_online: true",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in formatted output, got: %s", want, text)
		}
	}
	if strings.Contains(text, "Description:") {
		t.Errorf("empty fields should be omitted, got: %s", text)
	}

	if got := formatArtworks(nil); got != "No records." {
		t.Errorf("expected placeholder for empty table, got %q", got)
	}
}
