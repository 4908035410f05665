// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/briefmergeproj/briefmerge-mcp/internal/match"
	"github.com/briefmergeproj/briefmerge-mcp/internal/resolve"
	"github.com/briefmergeproj/briefmerge-mcp/internal/toc"
)

// MetadataBuildToc describes the build_toc tool.
var MetadataBuildToc = &mcp.Tool{
	Name: "build_toc",
	Description: "Build table-of-contents rows for an ordered list of documents with known page " +
		"counts. Page placement starts at 1; the TOC page itself is page 0. Titles are cleaned " +
		"from the file identifiers (extension stripped, separators to spaces, title-cased).",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"documents"},
		"properties": map[string]interface{}{
			"documents": map[string]interface{}{
				"type":        "array",
				"description": "Documents in merge order",
				"items": map[string]interface{}{
					"type":     "object",
					"required": []string{"identifier", "pages"},
					"properties": map[string]interface{}{
						"identifier": map[string]interface{}{"type": "string"},
						"pages":      map[string]interface{}{"type": "integer", "minimum": 1},
					},
				},
			},
		},
	},
}

// TocDocument is one merge-ordered document with its page count.
type TocDocument struct {
	Identifier string `json:"identifier"`
	Pages      int    `json:"pages"`
}

// InputBuildToc is the input for the BuildToc tool.
type InputBuildToc struct {
	Documents []TocDocument `json:"documents"`
}

// TocRow is one rendered table-of-contents line.
type TocRow struct {
	Index    int    `json:"index"`
	Title    string `json:"title"`
	Source   string `json:"source"`
	Pages    int    `json:"pages"`
	Location string `json:"location"`
}

// OutputBuildToc is the output for the BuildToc tool.
type OutputBuildToc struct {
	Rows       []TocRow `json:"rows"`
	TotalPages int      `json:"total_pages"`
}

// pageCountIndex adapts the input page counts to the toc.PageCounter
// boundary, keyed by document index.
type pageCountIndex []TocDocument

func (p pageCountIndex) CountPages(_ context.Context, file any) (int, error) {
	i, ok := file.(int)
	if !ok || i < 0 || i >= len(p) {
		return 0, fmt.Errorf("unknown document handle %v", file)
	}
	return p[i].Pages, nil
}

// BuildToc computes TOC rows and page placements for pre-resolved documents.
func BuildToc(ctx context.Context, _ *mcp.CallToolRequest, input InputBuildToc) (*mcp.CallToolResult, OutputBuildToc, error) {
	if len(input.Documents) == 0 {
		return nil, OutputBuildToc{}, fmt.Errorf("documents are required")
	}
	for _, d := range input.Documents {
		if d.Identifier == "" {
			return nil, OutputBuildToc{}, fmt.Errorf("every document needs an identifier")
		}
		if d.Pages < 1 {
			return nil, OutputBuildToc{}, fmt.Errorf("document %q: pages must be at least 1", d.Identifier)
		}
	}

	res := resolve.Resolution{Matches: make([]resolve.MatchResult, len(input.Documents))}
	for i, d := range input.Documents {
		res.Matches[i] = resolve.MatchResult{
			Candidate:  &match.Candidate{Identifier: d.Identifier, Payload: i},
			Confidence: 1,
		}
	}

	rows, err := toc.Build(ctx, res, pageCountIndex(input.Documents))
	if err != nil {
		return nil, OutputBuildToc{}, err
	}

	out := OutputBuildToc{Rows: make([]TocRow, 0, len(rows))}
	for _, r := range rows {
		out.Rows = append(out.Rows, TocRow{
			Index:    r.Index,
			Title:    r.Title,
			Source:   r.SourceName,
			Pages:    r.PageCount,
			Location: r.PageRange(),
		})
		out.TotalPages += r.PageCount
	}
	return nil, out, nil
}
