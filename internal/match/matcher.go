// SPDX-License-Identifier: Apache-2.0

// Package match scores document names against a pool of uploaded-file
// identifiers and picks the best candidate above a confidence threshold.
package match

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/briefmergeproj/briefmerge-mcp/internal/textnorm"
)

// DefaultThreshold is the minimum confidence for a match to be accepted.
// Chosen against real brief notes: token overlap alone puts obvious
// renames ("Financial Bid" vs "financial bid.pdf") well above it while
// unrelated annex names score below.
const DefaultThreshold = 0.5

// tokenWeight and editWeight blend the two similarity signals. Token
// overlap dominates because file names reorder and decorate words far more
// often than they misspell them.
const (
	tokenWeight = 0.6
	editWeight  = 0.4
)

// Candidate is one uploaded file considered as a match target. Payload is
// an opaque handle owned by the caller; the matcher only reads Identifier.
type Candidate struct {
	Identifier string
	Payload    any
}

// Outcome is the result of matching one target name. Candidate is nil when
// no pool entry reached the threshold; Confidence then carries the best
// score seen, so callers can report near misses.
type Outcome struct {
	Candidate  *Candidate
	Confidence float64
}

// Matcher scores normalized name similarity. Safe for reuse across calls;
// it holds no per-match state.
type Matcher struct {
	norm *textnorm.Normalizer
}

// NewMatcher creates a Matcher using the given normalizer, or the default
// normalizer when nil.
func NewMatcher(norm *textnorm.Normalizer) *Matcher {
	if norm == nil {
		norm = textnorm.Default()
	}
	return &Matcher{norm: norm}
}

// Match returns the best-scoring candidate for target, or a nil-candidate
// Outcome when nothing reaches threshold. Deterministic: equal scores are
// broken first by normalized substring containment, then by pool insertion
// order. "No match" is an expected outcome, never an error.
func (m *Matcher) Match(target string, pool []Candidate, threshold float64) Outcome {
	normTarget := m.norm.Normalize(target)

	best := Outcome{Confidence: -1}
	bestContains := false
	for i := range pool {
		normID := m.norm.Normalize(pool[i].Identifier)
		score := m.score(normTarget, normID)
		contains := containment(normTarget, normID)

		better := score > best.Confidence ||
			(score == best.Confidence && contains && !bestContains)
		if !better {
			continue
		}
		best = Outcome{Candidate: &pool[i], Confidence: score}
		bestContains = contains
	}

	if best.Confidence < 0 {
		// Empty pool.
		return Outcome{}
	}
	if best.Confidence < threshold {
		return Outcome{Confidence: best.Confidence}
	}
	return best
}

// score blends token-set overlap (Dice coefficient) with a normalized
// edit-distance similarity. Both operate on the normalized forms; the
// result is in [0,1].
func (m *Matcher) score(normTarget, normID string) float64 {
	if normTarget == "" || normID == "" {
		return 0
	}
	if normTarget == normID {
		return 1
	}
	return tokenWeight*diceOverlap(strings.Fields(normTarget), strings.Fields(normID)) +
		editWeight*editSimilarity(normTarget, normID)
}

// diceOverlap is 2·|A∩B| / (|A|+|B|) over unique tokens.
func diceOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := make(map[string]struct{}, len(a))
	for _, tok := range a {
		setA[tok] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, tok := range b {
		setB[tok] = struct{}{}
	}
	common := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			common++
		}
	}
	return 2 * float64(common) / float64(len(setA)+len(setB))
}

// editSimilarity is 1 − lev(a,b)/max(len(a),len(b)), in runes.
func editSimilarity(a, b string) float64 {
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(longest)
}

// containment reports whether one normalized name contains the other.
// Handles the "Annex A" vs "Annex A - Signed.pdf" family of names.
func containment(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
