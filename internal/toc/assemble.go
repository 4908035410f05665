// SPDX-License-Identifier: Apache-2.0

package toc

import (
	"context"
	"fmt"

	"github.com/briefmergeproj/briefmerge-mcp/internal/match"
	"github.com/briefmergeproj/briefmerge-mcp/internal/resolve"
)

// Report is the outcome of one full assemble run. Output is nil when no
// entry matched any upload; UnmatchedNames always lists the document names
// that could not be matched, for the caller to surface next to the
// deliverable.
type Report struct {
	Resolution     resolve.Resolution
	Rows           []Row
	Output         any
	UnmatchedNames []string
}

// Assembler runs the whole pipeline for one user action: read the brief
// note, resolve the bidder's document list against the uploads, build the
// TOC rows, and merge the matched files behind the bookmark page.
type Assembler struct {
	resolver *resolve.Resolver
	reader   TextReader
	counter  PageCounter
	merger   Merger
}

// NewAssembler wires the pipeline. All four collaborators are required.
func NewAssembler(resolver *resolve.Resolver, reader TextReader, counter PageCounter, merger Merger) *Assembler {
	return &Assembler{resolver: resolver, reader: reader, counter: counter, merger: merger}
}

// Run executes the pipeline. briefNote and frontPage are opaque file
// handles owned by the caller. A *briefnote.BidderNotFoundError passes
// through untouched; an empty brief note reads as empty text and therefore
// surfaces the same error. Unmatched entries are excluded from the merge
// input, never dropped silently from the report.
func (a *Assembler) Run(ctx context.Context, briefNote any, bidderName string, frontPage any, pool []match.Candidate) (Report, error) {
	text, err := a.reader.ReadText(ctx, briefNote)
	if err != nil {
		return Report{}, fmt.Errorf("reading brief note text: %w", err)
	}

	res, err := a.resolver.Resolve(text, bidderName, pool)
	if err != nil {
		return Report{}, err
	}

	rows, err := Build(ctx, res, a.counter)
	if err != nil {
		return Report{}, err
	}

	report := Report{Resolution: res, Rows: rows}
	for _, entry := range res.Unmatched() {
		report.UnmatchedNames = append(report.UnmatchedNames, entry.RawName)
	}

	matched := res.Matched()
	if len(matched) == 0 {
		return report, nil
	}

	out, err := a.merger.MergeWithBookmarkPage(ctx, frontPage, matched)
	if err != nil {
		return Report{}, fmt.Errorf("merging %d matched files: %w", len(matched), err)
	}
	report.Output = out
	return report, nil
}
