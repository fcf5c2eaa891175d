package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for yomu resources.
	uriScheme = "yomu://"
)

// dictionaryInfo is the JSON form of an imported dictionary.
type dictionaryInfo struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Revision   string    `json:"revision"`
	Entries    int       `json:"entries"`
	ImportedAt time.Time `json:"imported_at"`
}

func newDictionaryInfo(d *domain.Dictionary) dictionaryInfo {
	return dictionaryInfo{
		ID:         d.ID,
		Title:      d.Title,
		Revision:   d.Revision,
		Entries:    d.EntryCount,
		ImportedAt: d.ImportedAt,
	}
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "dictionaries",
		Name:        "dictionaries",
		Description: "List of all imported dictionaries",
		MIMEType:    "application/json",
	}, s.handleDictionariesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "dictionaries/{dictionaryId}",
		Name:        "dictionary",
		Description: "Metadata of a specific imported dictionary",
		MIMEType:    "application/json",
	}, s.handleDictionaryResource)
}

// handleDictionariesResource returns a list of all imported dictionaries.
func (s *Server) handleDictionariesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Dictionary == nil {
		return jsonResult(req.Params.URI, "[]"), nil
	}

	dicts, err := s.ports.Dictionary.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing dictionaries: %w", err)
	}

	infos := make([]dictionaryInfo, len(dicts))
	for i := range dicts {
		infos[i] = newDictionaryInfo(&dicts[i])
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling dictionaries: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

// handleDictionaryResource returns metadata for one dictionary.
func (s *Server) handleDictionaryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Dictionary == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract dictionaryId from URI: yomu://dictionaries/{dictionaryId}
	id := extractDictionaryID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	dict, err := s.ports.Dictionary.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting dictionary: %w", err)
	}

	data, err := json.MarshalIndent(newDictionaryInfo(dict), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling dictionary: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

func jsonResult(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractDictionaryID extracts the dictionary ID from a URI like yomu://dictionaries/{dictionaryId}.
func extractDictionaryID(uri string) string {
	const prefix = uriScheme + "dictionaries/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
