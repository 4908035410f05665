// SPDX-License-Identifier: Apache-2.0

package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/briefmergeproj/briefmerge-mcp/internal/textnorm"
)

func TestNormalizer_Normalize(t *testing.T) {
	n := textnorm.Default()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lower-cases", in: "Annex A", want: "annex a"},
		{name: "case-insensitive equivalence", in: "ANNEX A", want: "annex a"},
		{name: "collapses whitespace runs", in: "  Technical \t Proposal \n", want: "technical proposal"},
		{name: "separators become token boundaries", in: "technical_proposal_final.pdf", want: "technical proposal final pdf"},
		{name: "strips punctuation", in: `"Financial Bid" (signed)`, want: "financial bid signed"},
		{name: "empty input", in: "", want: ""},
		{name: "punctuation only", in: "(&*)", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.in))
		})
	}
}

func TestNormalizer_Idempotent(t *testing.T) {
	n := textnorm.Default()
	inputs := []string{"Annex A", "  COVER   letter.pdf ", "a_b-c.d", "Ｆｕｌｌｗｉｄｔｈ"}
	for _, in := range inputs {
		once := n.Normalize(in)
		assert.Equal(t, once, n.Normalize(once), "normalize must be idempotent for %q", in)
	}
}

func TestNormalizer_Tokens(t *testing.T) {
	n := textnorm.Default()
	assert.Equal(t, []string{"financial", "bid", "pdf"}, n.Tokens("Financial Bid.PDF"))
	assert.Empty(t, n.Tokens("   "))
}

func TestCollapseSpace(t *testing.T) {
	assert.Equal(t, "Technical Proposal", textnorm.CollapseSpace("  Technical \t Proposal "))
}
