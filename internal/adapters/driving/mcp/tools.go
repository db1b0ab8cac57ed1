package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/droppath/internal/connectors/filesystem"
	"github.com/custodia-labs/droppath/internal/core/domain"
	"github.com/custodia-labs/droppath/internal/urlpath"
)

// URLsInput is the input schema for tools that take a list of URLs.
type URLsInput struct {
	URLs []string `json:"urls" jsonschema:"URLs in drop order, for example file:///home/me/a.txt"`
}

// AreAllLocalOutput is the output schema for the are_all_local tool.
type AreAllLocalOutput struct {
	Local bool `json:"local"`
	Count int  `json:"count"`
}

// ResolveInput is the input schema for the resolve_local_paths tool.
type ResolveInput struct {
	URLs     []string `json:"urls" jsonschema:"URLs to convert, in order"`
	Platform string   `json:"platform,omitempty" jsonschema:"auto, windows or unix; defaults to the server setting"`
}

// ResolveOutput is the output schema for the resolve_local_paths tool.
type ResolveOutput struct {
	Local    bool     `json:"local"`
	Platform string   `json:"platform"`
	Paths    []string `json:"paths"`
}

// PathsInput is the input schema for the to_file_url tool.
type PathsInput struct {
	Paths []string `json:"paths" jsonschema:"absolute local paths"`
}

// FileURLsOutput is the output schema for the to_file_url tool.
type FileURLsOutput struct {
	URLs []string `json:"urls"`
}

// AddTargetsInput is the input schema for the add_targets tool.
type AddTargetsInput struct {
	URLs []string `json:"urls" jsonschema:"file URLs or absolute paths to add as scan targets"`
}

// AddTargetsOutput is the output schema for the add_targets tool.
type AddTargetsOutput struct {
	DropID string   `json:"drop_id"`
	Paths  []string `json:"paths"`
	Added  int      `json:"added"`
}

// ListTargetsInput is the empty input schema for the list_targets tool.
type ListTargetsInput struct{}

// TargetOutput represents a single scan target.
type TargetOutput struct {
	Path      string `json:"path"`
	Recursive bool   `json:"recursive"`
	AddedAt   string `json:"added_at"`
}

// ListTargetsOutput is the output schema for the list_targets tool.
type ListTargetsOutput struct {
	Targets []TargetOutput `json:"targets"`
	Count   int            `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "are_all_local",
		Description: "Report whether every URL is a local file URL (starts with file:///)",
	}, s.handleAreAllLocal)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_local_paths",
		Description: "Convert file URLs to local filesystem paths, preserving order",
	}, s.handleResolve)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "to_file_url",
		Description: "Convert local paths to file URLs",
	}, s.handleToFileURL)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_targets",
		Description: "Add local file URLs or paths as scan targets; existing targets are skipped",
	}, s.handleAddTargets)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_targets",
		Description: "List scan targets sorted by path",
	}, s.handleListTargets)
}

func (s *Server) handleAreAllLocal(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input URLsInput,
) (*mcp.CallToolResult, AreAllLocalOutput, error) {
	helper := urlpath.FromMany(input.URLs)
	return nil, AreAllLocalOutput{Local: helper.AreAllLocal(), Count: helper.Len()}, nil
}

func (s *Server) handleResolve(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ResolveInput,
) (*mcp.CallToolResult, ResolveOutput, error) {
	platform := s.ports.Platform
	if input.Platform != "" {
		p, err := domain.ParsePlatform(input.Platform)
		if err != nil {
			return nil, ResolveOutput{}, err
		}
		platform = p
	}

	helper := urlpath.FromMany(input.URLs, urlpath.WithPlatform(platform))
	paths, err := helper.LocalFilePaths()
	if err != nil {
		return nil, ResolveOutput{}, err
	}

	return nil, ResolveOutput{
		Local:    helper.AreAllLocal(),
		Platform: platform.String(),
		Paths:    paths,
	}, nil
}

func (s *Server) handleToFileURL(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input PathsInput,
) (*mcp.CallToolResult, FileURLsOutput, error) {
	urls := make([]string, len(input.Paths))
	for i, p := range input.Paths {
		urls[i] = urlpath.FromLocalPath(p)
	}
	return nil, FileURLsOutput{URLs: urls}, nil
}

func (s *Server) handleAddTargets(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddTargetsInput,
) (*mcp.CallToolResult, AddTargetsOutput, error) {
	drop, err := s.ports.Drop.AcceptItems(ctx, filesystem.TargetItems(input.URLs))
	if err != nil {
		return nil, AddTargetsOutput{}, fmt.Errorf("adding targets: %w", err)
	}
	return nil, AddTargetsOutput{
		DropID: drop.ID,
		Paths:  drop.Paths,
		Added:  drop.Added,
	}, nil
}

func (s *Server) handleListTargets(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListTargetsInput,
) (*mcp.CallToolResult, ListTargetsOutput, error) {
	targets, err := s.listTargets(ctx)
	if err != nil {
		return nil, ListTargetsOutput{}, err
	}
	return nil, ListTargetsOutput{Targets: targets, Count: len(targets)}, nil
}

func (s *Server) listTargets(ctx context.Context) ([]TargetOutput, error) {
	if s.ports.Target == nil {
		return nil, ErrMissingTargetService
	}
	targets, err := s.ports.Target.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing targets: %w", err)
	}
	out := make([]TargetOutput, len(targets))
	for i, t := range targets {
		out[i] = TargetOutput{
			Path:      t.Path,
			Recursive: t.Recursive,
			AddedAt:   t.AddedAt.UTC().Format(time.RFC3339),
		}
	}
	return out, nil
}
