// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briefmergeproj/briefmerge-mcp/internal/briefnote"
)

const sampleNote = "BIDDER: Acme\n1. Technical Proposal\n2. Financial Bid\nBIDDER: Globex\n1. Cover Letter\n"

func TestResolveBidderDocuments(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	tests := []struct {
		name           string
		input          InputResolveBidderDocuments
		wantErr        bool
		errContains    string
		validateOutput func(t *testing.T, output OutputResolveBidderDocuments)
	}{
		{
			name:        "empty content returns error",
			input:       InputResolveBidderDocuments{Bidder: "Acme"},
			wantErr:     true,
			errContains: "content is required",
		},
		{
			name:        "empty bidder returns error",
			input:       InputResolveBidderDocuments{Content: sampleNote},
			wantErr:     true,
			errContains: "bidder is required",
		},
		{
			name: "full resolution in source order",
			input: InputResolveBidderDocuments{
				Content:    sampleNote,
				Bidder:     "Acme",
				Candidates: []string{"technical_proposal_final.pdf", "financial bid.pdf", "cover_letter.pdf"},
				Threshold:  0.5,
			},
			validateOutput: func(t *testing.T, output OutputResolveBidderDocuments) {
				assert.Equal(t, "Acme", output.Bidder)
				require.Len(t, output.Matches, 2)
				assert.Equal(t, "Technical Proposal", output.Matches[0].Name)
				assert.Equal(t, "technical_proposal_final.pdf", output.Matches[0].Matched)
				assert.Equal(t, "financial bid.pdf", output.Matches[1].Matched)
				assert.Empty(t, output.Unmatched)
				for _, m := range output.Matches {
					assert.Greater(t, m.Confidence, 0.0)
					assert.LessOrEqual(t, m.Confidence, 1.0)
				}
			},
		},
		{
			name: "unmatched entries are reported, not errors",
			input: InputResolveBidderDocuments{
				Content:    "BIDDER: Acme\n1. Technical Proposal\n2. Annex Z\n",
				Bidder:     "Acme",
				Candidates: []string{"technical_proposal_final.pdf"},
			},
			validateOutput: func(t *testing.T, output OutputResolveBidderDocuments) {
				require.Len(t, output.Matches, 2)
				assert.Empty(t, output.Matches[1].Matched)
				assert.Equal(t, []string{"Annex Z"}, output.Unmatched)
			},
		},
		{
			name: "absent bidder returns bidder-not-found",
			input: InputResolveBidderDocuments{
				Content:    sampleNote,
				Bidder:     "Initech",
				Candidates: []string{"cover_letter.pdf"},
			},
			wantErr:     true,
			errContains: "Initech",
		},
		{
			name: "out-of-range threshold falls back to default",
			input: InputResolveBidderDocuments{
				Content:    sampleNote,
				Bidder:     "Globex",
				Candidates: []string{"cover_letter.pdf"},
				Threshold:  7,
			},
			validateOutput: func(t *testing.T, output OutputResolveBidderDocuments) {
				assert.Equal(t, 0.5, output.Threshold)
				require.Len(t, output.Matches, 1)
				assert.Equal(t, "cover_letter.pdf", output.Matches[0].Matched)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := ResolveBidderDocuments(ctx, req, tt.input)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			if tt.validateOutput != nil {
				tt.validateOutput(t, output)
			}
		})
	}
}

func TestResolveBidderDocuments_ErrorTypePassesThrough(t *testing.T) {
	_, _, err := ResolveBidderDocuments(context.Background(), &mcp.CallToolRequest{}, InputResolveBidderDocuments{
		Content: sampleNote,
		Bidder:  "Initech",
	})
	var nf *briefnote.BidderNotFoundError
	require.ErrorAs(t, err, &nf)
}
