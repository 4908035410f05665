// SPDX-License-Identifier: Apache-2.0

// Package briefnote extracts per-bidder document lists from the free-form
// text of a tender brief note. The text is expected to be pre-extracted by
// an upstream reader; this package never touches file formats.
package briefnote

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/briefmergeproj/briefmerge-mcp/internal/textnorm"
)

// DefaultHeadingKeywords are the words that mark a line as a bidder section
// heading when followed by a separator and a name, e.g. "BIDDER: Acme".
var DefaultHeadingKeywords = []string{"bidder", "vendor", "tenderer"}

// allCapsHeading recognizes the bare organisation-name headings some brief
// notes use instead of a keyword prefix: an uppercase line such as
// "ACME CONSTRUCTION LIMITED-NORTH". Requires at least two uppercase
// letters so single-letter list markers never qualify.
var allCapsHeading = regexp.MustCompile(`^[A-Z][A-Z0-9&.,\-\s]*[A-Z]$`)

// tableHeaderWords mark column-header lines inside a bidder's document
// table. Such lines can be fully uppercase and must not be mistaken for the
// next section heading.
var tableHeaderWords = []string{"file name", "s.no", "sl.no", "description", "placed at", "context"}

func isTableHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, w := range tableHeaderWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// BidderNotFoundError reports that no section heading matched the requested
// bidder name. Available lists the headings that were found, for the caller
// to surface as suggestions.
type BidderNotFoundError struct {
	Bidder    string
	Available []string
}

func (e *BidderNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("bidder %q: no matching section heading found", e.Bidder)
	}
	return fmt.Sprintf("bidder %q: no matching section heading found (available: %s)",
		e.Bidder, strings.Join(e.Available, ", "))
}

// Parser locates bidder sections and extracts their document entries.
type Parser struct {
	keywordRes []*regexp.Regexp
	norm       *textnorm.Normalizer
}

// NewParser creates a Parser using the given heading keywords, or
// DefaultHeadingKeywords when none are given.
func NewParser(keywords ...string) *Parser {
	if len(keywords) == 0 {
		keywords = DefaultHeadingKeywords
	}
	res := make([]*regexp.Regexp, len(keywords))
	for i, kw := range keywords {
		res[i] = regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(kw) + `\s*[:\-]\s*(\S.*)$`)
	}
	return &Parser{keywordRes: res, norm: textnorm.Default()}
}

// headingName returns the bidder name when line is a section heading.
// Keyword rules are tried first, then the all-caps organisation-name shape.
// Lines that parse as list items are never headings.
func (p *Parser) headingName(line string) (string, bool) {
	if _, _, _, ok := matchEntry(line); ok {
		return "", false
	}
	if isTableHeader(line) {
		return "", false
	}
	for _, re := range p.keywordRes {
		if m := re.FindStringSubmatch(line); m != nil {
			return textnorm.CollapseSpace(m[1]), true
		}
	}
	if allCapsHeading.MatchString(line) {
		return line, true
	}
	return "", false
}

// ParseForBidder extracts the ordered document entries from the section of
// fullText belonging to bidderName. The bidder name is matched
// case-insensitively and may be a partial heading ("Acme" matches
// "BIDDER: Acme Construction"). The section runs from the matching heading
// to the next heading or end of text. Lines that match no marker rule are
// treated as prose and skipped. A heading with no recognizable items yields
// an empty slice, not an error.
func (p *Parser) ParseForBidder(fullText, bidderName string) ([]DocumentEntry, error) {
	lines := strings.Split(fullText, "\n")
	target := p.norm.Normalize(bidderName)

	var available []string
	start := -1
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		name, ok := p.headingName(line)
		if !ok {
			continue
		}
		available = append(available, name)
		if start < 0 && target != "" && strings.Contains(p.norm.Normalize(name), target) {
			start = i + 1
		}
	}
	if start < 0 {
		return nil, &BidderNotFoundError{Bidder: bidderName, Available: available}
	}

	entries := []DocumentEntry{}
	for _, raw := range lines[start:] {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if _, ok := p.headingName(line); ok {
			break
		}
		style, seq, name, ok := matchEntry(line)
		if !ok {
			continue
		}
		if style != MarkerNumeric {
			seq = len(entries) + 1
		}
		entries = append(entries, DocumentEntry{SequenceNumber: seq, RawName: name})
	}
	return entries, nil
}

// Bidders returns every section heading found in fullText, in source order,
// duplicates removed.
func (p *Parser) Bidders(fullText string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, raw := range strings.Split(fullText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		name, ok := p.headingName(line)
		if !ok {
			continue
		}
		key := p.norm.Normalize(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}

// SearchBidders returns the headings whose normalized name contains term,
// case-insensitively. An empty term matches nothing.
func (p *Parser) SearchBidders(fullText, term string) []string {
	needle := p.norm.Normalize(term)
	if needle == "" {
		return nil
	}
	var out []string
	for _, name := range p.Bidders(fullText) {
		if strings.Contains(p.norm.Normalize(name), needle) {
			out = append(out, name)
		}
	}
	return out
}
