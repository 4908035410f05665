// SPDX-License-Identifier: Apache-2.0

package briefnote

import (
	"regexp"
	"strconv"

	"github.com/briefmergeproj/briefmerge-mcp/internal/textnorm"
)

// DocumentEntry is one document reference extracted from a bidder's section.
// Entries are emitted in the order they appear in the text; that order, not
// SequenceNumber, is authoritative for merge and TOC ordering.
type DocumentEntry struct {
	// SequenceNumber is the numeric marker from the source line when the
	// line used a numeric marker, otherwise the 1-based encounter order.
	// Numbers are not required to be contiguous or unique.
	SequenceNumber int
	// RawName is the document name as written, whitespace-collapsed but
	// with casing preserved for display.
	RawName string
}

// Marker identifies the list-item style that introduced a document line.
type Marker int

const (
	MarkerNumeric Marker = iota
	MarkerLettered
	MarkerBulleted
)

func (m Marker) String() string {
	switch m {
	case MarkerNumeric:
		return "numeric"
	case MarkerLettered:
		return "lettered"
	case MarkerBulleted:
		return "bulleted"
	default:
		return "unknown"
	}
}

// markerRule recognizes one list-item style. Rules are evaluated in order;
// the first match wins. Each pattern captures the marker and the remaining
// line text.
type markerRule struct {
	style   Marker
	pattern *regexp.Regexp
}

// defaultMarkerRules recognizes the three item styles seen in brief notes.
// Numeric is checked first so "1. Annex A" is never read as a lettered item.
var defaultMarkerRules = []markerRule{
	{style: MarkerNumeric, pattern: regexp.MustCompile(`^(\d+)\s*[.):-]?\s+(\S.*)$`)},
	{style: MarkerLettered, pattern: regexp.MustCompile(`^([A-Za-z])[.)]\s+(\S.*)$`)},
	{style: MarkerBulleted, pattern: regexp.MustCompile(`^([-*•‣])\s+(\S.*)$`)},
}

// matchEntry applies the marker rules to one line. The second return is the
// parsed numeric marker, valid only when style is MarkerNumeric.
func matchEntry(line string) (style Marker, seq int, name string, ok bool) {
	for _, rule := range defaultMarkerRules {
		m := rule.pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name = textnorm.CollapseSpace(m[2])
		if name == "" {
			continue
		}
		if rule.style == MarkerNumeric {
			seq, _ = strconv.Atoi(m[1])
		}
		return rule.style, seq, name, true
	}
	return 0, 0, "", false
}
