// SPDX-License-Identifier: Apache-2.0

// Package resolve orchestrates brief-note parsing and name matching into a
// per-bidder resolution: the ordered mapping from required document names
// to uploaded files.
package resolve

import (
	"github.com/briefmergeproj/briefmerge-mcp/internal/briefnote"
	"github.com/briefmergeproj/briefmerge-mcp/internal/match"
)

// MatchResult pairs one parsed entry with its matched candidate, or a nil
// candidate when nothing reached the threshold. Confidence is the best
// score seen either way.
type MatchResult struct {
	Entry      briefnote.DocumentEntry
	Candidate  *match.Candidate
	Confidence float64
}

// Resolution is the complete outcome for one bidder. Matches holds exactly
// one result per parsed entry, in parse order; that order is the merge and
// TOC order.
type Resolution struct {
	BidderName string
	Matches    []MatchResult
}

// Matched returns the matched candidates in parse order, skipping entries
// that found nothing. This is the ordered input to the merge step.
func (r Resolution) Matched() []match.Candidate {
	var out []match.Candidate
	for _, m := range r.Matches {
		if m.Candidate != nil {
			out = append(out, *m.Candidate)
		}
	}
	return out
}

// Unmatched returns the entries that found no candidate, in parse order.
// Callers must surface these to the user alongside the merged output.
func (r Resolution) Unmatched() []briefnote.DocumentEntry {
	var out []briefnote.DocumentEntry
	for _, m := range r.Matches {
		if m.Candidate == nil {
			out = append(out, m.Entry)
		}
	}
	return out
}

// Resolver runs the parse-then-match pipeline for one bidder at a time. It
// holds no per-call state and is safe to reuse.
type Resolver struct {
	parser    *briefnote.Parser
	matcher   *match.Matcher
	threshold float64
}

// NewResolver creates a Resolver. A nil parser or matcher falls back to the
// defaults; a threshold outside (0,1] falls back to match.DefaultThreshold.
func NewResolver(parser *briefnote.Parser, matcher *match.Matcher, threshold float64) *Resolver {
	if parser == nil {
		parser = briefnote.NewParser()
	}
	if matcher == nil {
		matcher = match.NewMatcher(nil)
	}
	if threshold <= 0 || threshold > 1 {
		threshold = match.DefaultThreshold
	}
	return &Resolver{parser: parser, matcher: matcher, threshold: threshold}
}

// Threshold returns the configured confidence threshold.
func (r *Resolver) Threshold() float64 { return r.threshold }

// Resolve parses the bidder's section out of fullText and matches every
// entry against pool, in parse order. Each candidate is consumed by its
// first winning entry and is not offered to later entries, so one uploaded
// file never satisfies two document slots. Because of that removal, match
// quality can depend on entry order; this is a known limitation and is not
// corrected.
//
// A *briefnote.BidderNotFoundError from the parser is returned as-is.
// Individual unmatched entries never fail the call.
func (r *Resolver) Resolve(fullText, bidderName string, pool []match.Candidate) (Resolution, error) {
	entries, err := r.parser.ParseForBidder(fullText, bidderName)
	if err != nil {
		return Resolution{}, err
	}

	// Working copy, local to this call: selected candidates are dropped
	// from consideration for the remaining entries.
	remaining := make([]match.Candidate, len(pool))
	copy(remaining, pool)

	res := Resolution{BidderName: bidderName, Matches: make([]MatchResult, 0, len(entries))}
	for _, entry := range entries {
		outcome := r.matcher.Match(entry.RawName, remaining, r.threshold)
		result := MatchResult{Entry: entry, Confidence: outcome.Confidence}
		if outcome.Candidate != nil {
			selected := *outcome.Candidate
			result.Candidate = &selected
			remaining = removeCandidate(remaining, outcome.Candidate)
		}
		res.Matches = append(res.Matches, result)
	}
	return res, nil
}

// removeCandidate drops the selected candidate (by pointer identity into
// the working slice) while preserving the order of the rest.
func removeCandidate(pool []match.Candidate, selected *match.Candidate) []match.Candidate {
	for i := range pool {
		if &pool[i] == selected {
			return append(pool[:i:i], pool[i+1:]...)
		}
	}
	return pool
}
