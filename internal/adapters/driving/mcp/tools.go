package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

// DeinflectInput is the input schema for the deinflect tool.
type DeinflectInput struct {
	Word string `json:"word" jsonschema:"the conjugated Japanese word to deinflect"`
}

// DeinflectOutput is the output schema for the deinflect tool.
type DeinflectOutput struct {
	Candidates []CandidateOutput `json:"candidates"`
	Count      int               `json:"count"`
}

// CandidateOutput is one possible dictionary form.
type CandidateOutput struct {
	Term    string   `json:"term"`
	Classes []string `json:"classes"`
	Reasons []string `json:"reasons"`
}

// LookupWordInput is the input schema for the lookup_word tool.
type LookupWordInput struct {
	Word    string `json:"word" jsonschema:"the Japanese word to look up, conjugated or not"`
	Reading string `json:"reading,omitempty" jsonschema:"kana reading used to prefer the right homograph"`
	Best    bool   `json:"best,omitempty" jsonschema:"return only the top ranked result"`
}

// LookupSubstringsInput is the input schema for the lookup_substrings tool.
type LookupSubstringsInput struct {
	Text      string `json:"text" jsonschema:"the text containing the word"`
	Start     int    `json:"start,omitempty" jsonschema:"character offset where the word starts (default 0)"`
	MaxLength int    `json:"max_length,omitempty" jsonschema:"maximum span to scan in characters (default 20)"`
	Reading   string `json:"reading,omitempty" jsonschema:"kana reading used to prefer the right homograph"`
	AutoHint  bool   `json:"auto_hint,omitempty" jsonschema:"derive the reading from a tokenizer when none is given"`
}

// LookupOutput is the output schema for the lookup tools.
type LookupOutput struct {
	Results []domain.LookupResult `json:"results"`
	Count   int                   `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "deinflect",
		Description: "List the possible dictionary forms of a conjugated Japanese word",
	}, s.handleDeinflect)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lookup_word",
		Description: "Look up a Japanese word, conjugated or not, in the imported dictionaries",
	}, s.handleLookupWord)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lookup_substrings",
		Description: "Find the longest dictionary words starting at a position in Japanese text",
	}, s.handleLookupSubstrings)
}

// handleDeinflect handles the deinflect tool invocation.
func (s *Server) handleDeinflect(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DeinflectInput,
) (*mcp.CallToolResult, DeinflectOutput, error) {
	candidates := s.ports.Lookup.Deinflect(input.Word)

	output := DeinflectOutput{
		Candidates: make([]CandidateOutput, len(candidates)),
		Count:      len(candidates),
	}
	for i, c := range candidates {
		classes := make([]string, len(c.GrammarChain))
		for j, class := range c.GrammarChain {
			classes[j] = class.String()
		}
		output.Candidates[i] = CandidateOutput{
			Term:    c.Term,
			Classes: classes,
			Reasons: c.ReasonChain,
		}
	}

	return nil, output, nil
}

// handleLookupWord handles the lookup_word tool invocation.
func (s *Server) handleLookupWord(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LookupWordInput,
) (*mcp.CallToolResult, LookupOutput, error) {
	opts := domain.LookupOptions{ReadingHint: input.Reading}

	if input.Best {
		best, err := s.ports.Lookup.LookupWordBest(ctx, input.Word, opts)
		if err != nil {
			return nil, LookupOutput{}, err
		}
		if best == nil {
			return nil, newLookupOutput(nil), nil
		}
		return nil, newLookupOutput([]domain.LookupResult{*best}), nil
	}

	results, err := s.ports.Lookup.LookupWord(ctx, input.Word, opts)
	if err != nil {
		return nil, LookupOutput{}, err
	}
	return nil, newLookupOutput(results), nil
}

// handleLookupSubstrings handles the lookup_substrings tool invocation.
func (s *Server) handleLookupSubstrings(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LookupSubstringsInput,
) (*mcp.CallToolResult, LookupOutput, error) {
	reading := input.Reading
	if reading == "" && input.AutoHint {
		hint, err := s.ports.Lookup.ReadingHintAt(ctx, input.Text, input.Start)
		if err != nil {
			return nil, LookupOutput{}, err
		}
		reading = hint
	}

	opts := domain.LookupOptions{
		ReadingHint: reading,
		MaxLength:   input.MaxLength,
	}
	results, err := s.ports.Lookup.LookupWordWithSubstrings(ctx, input.Text, input.Start, opts)
	if err != nil {
		return nil, LookupOutput{}, err
	}
	return nil, newLookupOutput(results), nil
}

func newLookupOutput(results []domain.LookupResult) LookupOutput {
	if results == nil {
		results = []domain.LookupResult{}
	}
	return LookupOutput{Results: results, Count: len(results)}
}
