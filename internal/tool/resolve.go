// SPDX-License-Identifier: Apache-2.0

// Package tool exposes the resolution pipeline as MCP tools. Each tool is a
// metadata value, a typed input/output pair, and a handler; the host wires
// them into an MCP server.
package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/briefmergeproj/briefmerge-mcp/internal/briefnote"
	"github.com/briefmergeproj/briefmerge-mcp/internal/config"
	"github.com/briefmergeproj/briefmerge-mcp/internal/match"
	"github.com/briefmergeproj/briefmerge-mcp/internal/resolve"
	"github.com/briefmergeproj/briefmerge-mcp/internal/textnorm"
)

// MetadataResolveBidderDocuments describes the resolve_bidder_documents tool.
var MetadataResolveBidderDocuments = &mcp.Tool{
	Name: "resolve_bidder_documents",
	Description: "Extract the ordered document list for one bidder from brief-note text and " +
		"match each name against the uploaded file identifiers. " +
		"Returns one result per extracted entry, in source order, with the matched identifier " +
		"and a confidence score in [0,1]. Entries with no identifier above the threshold are " +
		"reported as unmatched; they are an expected outcome, not an error. " +
		"Each identifier is matched to at most one entry.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content", "bidder", "candidates"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Text extracted from the brief note document",
			},
			"bidder": map[string]interface{}{
				"type":        "string",
				"description": "Bidder name whose section should be resolved. Case-insensitive, partial headings match.",
			},
			"candidates": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Identifiers of the uploaded files, in upload order (order breaks score ties).",
			},
			"threshold": map[string]interface{}{
				"type":        "number",
				"description": "Minimum match confidence in (0,1]. Defaults to 0.5.",
			},
		},
	},
}

// InputResolveBidderDocuments is the input for the ResolveBidderDocuments tool.
type InputResolveBidderDocuments struct {
	Content    string   `json:"content"`
	Bidder     string   `json:"bidder"`
	Candidates []string `json:"candidates"`
	Threshold  float64  `json:"threshold"`
}

// EntryResolution is one row of the resolution, in brief-note order.
type EntryResolution struct {
	// Sequence is the marker number from the source line.
	Sequence int `json:"sequence"`
	// Name is the document name as written in the brief note.
	Name string `json:"name"`
	// Matched is the winning candidate identifier, empty when unmatched.
	Matched string `json:"matched,omitempty"`
	// Confidence is the best similarity score seen for this entry.
	Confidence float64 `json:"confidence"`
}

// OutputResolveBidderDocuments is the output for the ResolveBidderDocuments tool.
type OutputResolveBidderDocuments struct {
	Bidder string `json:"bidder"`
	// Matches has one entry per extracted document line, in source order.
	Matches []EntryResolution `json:"matches"`
	// Unmatched lists the document names that found no candidate.
	Unmatched []string `json:"unmatched"`
	// Threshold is the confidence threshold that was applied.
	Threshold float64 `json:"threshold"`
}

// ResolveBidderDocuments runs the parse-and-match pipeline for one bidder.
func ResolveBidderDocuments(_ context.Context, _ *mcp.CallToolRequest, input InputResolveBidderDocuments) (*mcp.CallToolResult, OutputResolveBidderDocuments, error) {
	if input.Content == "" {
		return nil, OutputResolveBidderDocuments{}, fmt.Errorf("content is required")
	}
	if input.Bidder == "" {
		return nil, OutputResolveBidderDocuments{}, fmt.Errorf("bidder is required")
	}

	cfg := config.Default()
	threshold := input.Threshold
	if threshold <= 0 || threshold > 1 {
		threshold = cfg.Threshold
	}

	pool := make([]match.Candidate, len(input.Candidates))
	for i, id := range input.Candidates {
		pool[i] = match.Candidate{Identifier: id}
	}

	norm := textnorm.New(cfg.Punctuation)
	resolver := resolve.NewResolver(briefnote.NewParser(cfg.HeadingKeywords...), match.NewMatcher(norm), threshold)

	res, err := resolver.Resolve(input.Content, input.Bidder, pool)
	if err != nil {
		return nil, OutputResolveBidderDocuments{}, err
	}

	out := OutputResolveBidderDocuments{
		Bidder:    res.BidderName,
		Matches:   make([]EntryResolution, 0, len(res.Matches)),
		Unmatched: []string{},
		Threshold: threshold,
	}
	for _, m := range res.Matches {
		row := EntryResolution{
			Sequence:   m.Entry.SequenceNumber,
			Name:       m.Entry.RawName,
			Confidence: m.Confidence,
		}
		if m.Candidate != nil {
			row.Matched = m.Candidate.Identifier
		} else {
			out.Unmatched = append(out.Unmatched, m.Entry.RawName)
		}
		out.Matches = append(out.Matches, row)
	}
	return nil, out, nil
}
