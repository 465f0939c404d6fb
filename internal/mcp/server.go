package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/chdonahue/art-valuation/internal/catalog"
	"github.com/chdonahue/art-valuation/internal/config"
	"github.com/chdonahue/art-valuation/internal/document"
	"github.com/chdonahue/art-valuation/internal/export"
)

// Server exposes the catalog extraction pipeline as MCP tools over stdio.
type Server struct {
	config    *config.Config
	service   *catalog.Service
	validator *document.Validator
	discovery *document.Discovery
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, service *catalog.Service) (*Server, error) {
	if service == nil {
		return nil, fmt.Errorf("service cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		config:    cfg,
		service:   service,
		validator: document.NewValidator(cfg.MaxFileSize),
		discovery: document.NewDiscovery(cfg.MaxFileSize),
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	extractFileTool := mcp.NewTool(
		"catalog_extract_file",
		mcp.WithDescription("Extract artwork records from a single auction catalog PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the catalog PDF file"),
		),
	)
	s.mcpServer.AddTool(extractFileTool, s.handleExtractFile)

	extractDirectoryTool := mcp.NewTool(
		"catalog_extract_directory",
		mcp.WithDescription("Extract artwork records from every catalog PDF in a directory"),
		mcp.WithString("directory",
			mcp.Description("Directory path to process (uses default if empty)"),
		),
	)
	s.mcpServer.AddTool(extractDirectoryTool, s.handleExtractDirectory)

	validateFileTool := mcp.NewTool(
		"catalog_validate_file",
		mcp.WithDescription("Validate if a file is a readable catalog PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the catalog PDF file"),
		),
	)
	s.mcpServer.AddTool(validateFileTool, s.handleValidateFile)

	searchDirectoryTool := mcp.NewTool(
		"catalog_search_directory",
		mcp.WithDescription("List catalog PDF files in a directory"),
		mcp.WithString("directory",
			mcp.Description("Directory path to search (uses default if empty)"),
		),
	)
	s.mcpServer.AddTool(searchDirectoryTool, s.handleSearchDirectory)

	serverInfoTool := mcp.NewTool(
		"catalog_server_info",
		mcp.WithDescription("Get server information, available tools, and usage guidance"),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}

// Handler functions

func (s *Server) handleExtractFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	records, err := s.service.ProcessFile(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	artworks := make([]catalog.Artwork, 0, len(records))
	for _, record := range records {
		artworks = append(artworks, catalog.Artwork{
			Fields: record,
			Sale:   catalog.DecomposeSale(record[catalog.FieldSaleOf]),
		})
	}

	responseText := fmt.Sprintf("Extracted %d artwork record(s) from %s\n\n", len(artworks), path)
	responseText += formatArtworks(artworks)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleExtractDirectory(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	directory := s.directoryArg(request)

	artworks, err := s.service.ProcessDirectory(directory)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Extracted %d artwork record(s) from directory: %s\n\n", len(artworks), directory)
	responseText += formatArtworks(artworks)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if err := s.validator.Validate(path); err != nil {
		responseText = fmt.Sprintf("Catalog validation failed for %s: %v", path, err)
	} else {
		responseText = fmt.Sprintf("Catalog file %s is valid and readable", path)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleSearchDirectory(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	directory := s.directoryArg(request)

	files, err := s.discovery.FindCatalogs(directory)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(files) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No catalog PDF files found in directory: %s", directory)), nil
	}

	text := fmt.Sprintf("Found %d catalog PDF file(s) in directory: %s\n\nFiles:\n", len(files), directory)
	for i, file := range files {
		text += fmt.Sprintf("%d. %s\n", i+1, file.Name)
		text += fmt.Sprintf("   Path: %s\n", file.Path)
		text += fmt.Sprintf("   Size: %d bytes\n", file.Size)
		text += fmt.Sprintf("   Modified: %s\n", file.ModifiedTime)
	}

	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := fmt.Sprintf("%s v%s - Auction Catalog Extractor\n", s.config.ServerName, s.config.Version)
	text += fmt.Sprintf("Default Directory: %s\n", s.config.CatalogDirectory)
	text += fmt.Sprintf("Max File Size: %d MB\n\n", s.config.MaxFileSize/(1024*1024))

	text += "Available Tools:\n\n"
	text += "• catalog_extract_file\n"
	text += "  Extract artwork records from a single catalog PDF. Each record carries the\n"
	text += "  labeled fields (Title, Description, Medium, ...), the inferred artist, and\n"
	text += "  the decomposed sale attributes (auction house, date, lot, online flag).\n\n"
	text += "• catalog_extract_directory\n"
	text += "  Run the full pipeline over every catalog PDF in a directory.\n\n"
	text += "• catalog_validate_file\n"
	text += "  Check that a file is a readable catalog PDF before extracting.\n\n"
	text += "• catalog_search_directory\n"
	text += "  List the catalog PDFs available in a directory.\n\n"
	text += "Catalogs are expected to separate entries with horizontal rule lines;\n"
	text += "documents without them yield zero records."

	return mcp.NewToolResultText(text), nil
}

// directoryArg resolves the optional directory argument, defaulting to the
// configured catalog directory.
func (s *Server) directoryArg(request mcp.CallToolRequest) string {
	args := request.GetArguments()
	if dir, ok := args["directory"].(string); ok && dir != "" {
		return dir
	}
	return s.config.CatalogDirectory
}

// formatArtworks renders records as readable field listings in output
// column order.
func formatArtworks(artworks []catalog.Artwork) string {
	if len(artworks) == 0 {
		return "No records."
	}

	var b strings.Builder
	for i := range artworks {
		fmt.Fprintf(&b, "Record %d:\n", i+1)
		row := export.Row(&artworks[i])
		for col, value := range row {
			if value == "" {
				continue
			}
			fmt.Fprintf(&b, "  %s: %s\n", catalog.Columns[col], value)
		}
		if i < len(artworks)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Run starts the MCP server over standard I/O.
func (s *Server) Run(ctx context.Context) error {
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
