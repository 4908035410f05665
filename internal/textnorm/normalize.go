// SPDX-License-Identifier: Apache-2.0

// Package textnorm provides the string normalization used when comparing
// document names. Normalization is for comparison only; display strings
// keep their original casing.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultPunctuation is the set of characters stripped before comparison.
// Separator characters that commonly stand in for spaces in file names
// ('_', '-', '.') are replaced with a space instead of removed, so
// "technical_proposal_final.pdf" tokenizes the same way as
// "Technical Proposal Final".
const DefaultPunctuation = `,;:!?'"()[]{}&+#%@/\|~*<>=`

// Normalizer lower-cases, strips punctuation, and collapses whitespace.
// The punctuation set is configurable because brief-note conventions vary
// by organisation.
type Normalizer struct {
	punctuation string
}

// New creates a Normalizer with the given punctuation set.
func New(punctuation string) *Normalizer {
	return &Normalizer{punctuation: punctuation}
}

// Default creates a Normalizer with DefaultPunctuation.
func Default() *Normalizer {
	return New(DefaultPunctuation)
}

// Normalize returns the canonical comparison form of s: NFKC-normalized,
// lower-cased, punctuation stripped, separators and whitespace runs
// collapsed to single spaces, trimmed. Idempotent.
func (n *Normalizer) Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', '.':
			return ' '
		}
		if strings.ContainsRune(n.punctuation, r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// Tokens returns the whitespace-separated tokens of the normalized form.
func (n *Normalizer) Tokens(s string) []string {
	return strings.Fields(n.Normalize(s))
}

// CollapseSpace collapses whitespace runs and trims, preserving casing and
// punctuation. Used for display names extracted from brief-note lines.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
