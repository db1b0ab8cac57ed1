package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for droppath resources.
	uriScheme = "droppath://"

	targetsURI = uriScheme + "targets"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         targetsURI,
		Name:        "targets",
		Description: "Scan targets added from dropped files, sorted by path",
		MIMEType:    "application/json",
	}, s.handleTargetsResource)
}

// handleTargetsResource returns the target list as JSON.
func (s *Server) handleTargetsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	targets, err := s.listTargets(ctx)
	if errors.Is(err, ErrMissingTargetService) {
		targets = []TargetOutput{}
	} else if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(targets, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling targets: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
