// SPDX-License-Identifier: Apache-2.0

// Package toc turns a resolution into table-of-contents rows and drives the
// external document collaborators (text extraction, page counting, merging).
// All binary file mechanics live behind the interfaces declared here.
package toc

import (
	"context"
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/briefmergeproj/briefmerge-mcp/internal/match"
	"github.com/briefmergeproj/briefmerge-mcp/internal/resolve"
	"github.com/briefmergeproj/briefmerge-mcp/internal/textnorm"
)

// TextReader extracts all text content from an uploaded document. An
// image-only or unparseable document yields an empty string, not an error.
type TextReader interface {
	ReadText(ctx context.Context, file any) (string, error)
}

// PageCounter reports the number of pages in an uploaded document.
type PageCounter interface {
	CountPages(ctx context.Context, file any) (int, error)
}

// Merger produces the deliverable: the bookmark (TOC) page followed by the
// matched files in resolution order.
type Merger interface {
	MergeWithBookmarkPage(ctx context.Context, frontPage any, ordered []match.Candidate) (any, error)
}

// Row is one table-of-contents line. Page numbering starts at 1 for the
// first merged document; the TOC page itself is page 0.
type Row struct {
	Index      int
	Title      string
	SourceName string
	PageCount  int
	StartPage  int
	EndPage    int
}

// PageRange renders the row's location, collapsing single-page documents
// to one number.
func (r Row) PageRange() string {
	if r.StartPage == r.EndPage {
		return fmt.Sprintf("%d", r.StartPage)
	}
	return fmt.Sprintf("%d-%d", r.StartPage, r.EndPage)
}

var titleCaser = cases.Title(language.Und)

// DisplayTitle cleans a file identifier for the TOC: extension stripped,
// separators to spaces, title-cased.
func DisplayTitle(identifier string) string {
	name := strings.TrimSuffix(identifier, path.Ext(identifier))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return titleCaser.String(textnorm.CollapseSpace(name))
}

// Build produces one row per matched candidate, in resolution order,
// accumulating page placements from the counter. A counting failure aborts
// with the offending identifier in the error.
func Build(ctx context.Context, res resolve.Resolution, counter PageCounter) ([]Row, error) {
	matched := res.Matched()
	rows := make([]Row, 0, len(matched))
	next := 1
	for i, cand := range matched {
		pages, err := counter.CountPages(ctx, cand.Payload)
		if err != nil {
			return nil, fmt.Errorf("counting pages of %q: %w", cand.Identifier, err)
		}
		if pages < 1 {
			pages = 1
		}
		rows = append(rows, Row{
			Index:      i + 1,
			Title:      DisplayTitle(cand.Identifier),
			SourceName: cand.Identifier,
			PageCount:  pages,
			StartPage:  next,
			EndPage:    next + pages - 1,
		})
		next += pages
	}
	return rows, nil
}
