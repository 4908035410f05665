// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/briefmergeproj/briefmerge-mcp/internal/briefnote"
	"github.com/briefmergeproj/briefmerge-mcp/internal/config"
)

// MetadataListBidders describes the list_bidders tool.
var MetadataListBidders = &mcp.Tool{
	Name: "list_bidders",
	Description: "List the bidder section headings found in brief-note text, in source order. " +
		"Optionally filter with a case-insensitive search term. Useful for suggesting the " +
		"correct name after a failed resolution.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Text extracted from the brief note document",
			},
			"search": map[string]interface{}{
				"type":        "string",
				"description": "Optional case-insensitive filter on the bidder name",
			},
		},
	},
}

// InputListBidders is the input for the ListBidders tool.
type InputListBidders struct {
	Content string `json:"content"`
	Search  string `json:"search"`
}

// OutputListBidders is the output for the ListBidders tool.
type OutputListBidders struct {
	Bidders []string `json:"bidders"`
}

// ListBidders scans the brief-note text for bidder section headings.
func ListBidders(_ context.Context, _ *mcp.CallToolRequest, input InputListBidders) (*mcp.CallToolResult, OutputListBidders, error) {
	if input.Content == "" {
		return nil, OutputListBidders{}, fmt.Errorf("content is required")
	}

	parser := briefnote.NewParser(config.Default().HeadingKeywords...)
	var bidders []string
	if input.Search != "" {
		bidders = parser.SearchBidders(input.Content, input.Search)
	} else {
		bidders = parser.Bidders(input.Content)
	}
	if bidders == nil {
		bidders = []string{}
	}
	return nil, OutputListBidders{Bidders: bidders}, nil
}
