// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/briefmergeproj/briefmerge-mcp/internal/briefnote"
	"github.com/briefmergeproj/briefmerge-mcp/internal/match"
	"github.com/briefmergeproj/briefmerge-mcp/internal/resolve"
	"github.com/briefmergeproj/briefmerge-mcp/internal/textnorm"
)

func newResolveCmd(opts *rootOptions) *cobra.Command {
	var bidder string

	cmd := &cobra.Command{
		Use:   "resolve NOTE_FILE [CANDIDATE...]",
		Short: "Resolve one bidder's document list against candidate file names",
		Long: "Reads brief-note text from NOTE_FILE and matches the bidder's document list\n" +
			"against the candidate identifiers given as arguments, in order.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading brief note %s: %w", args[0], err)
			}

			pool := make([]match.Candidate, 0, len(args)-1)
			for _, id := range args[1:] {
				pool = append(pool, match.Candidate{Identifier: id})
			}

			resolver := resolve.NewResolver(
				briefnote.NewParser(cfg.HeadingKeywords...),
				match.NewMatcher(textnorm.New(cfg.Punctuation)),
				cfg.Threshold,
			)
			res, err := resolver.Resolve(string(text), bidder, pool)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
			fmt.Fprintf(w, "SEQ\tDOCUMENT\tMATCHED FILE\tCONFIDENCE\n")
			for _, m := range res.Matches {
				matchedID := "-"
				if m.Candidate != nil {
					matchedID = m.Candidate.Identifier
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\n", m.Entry.SequenceNumber, m.Entry.RawName, matchedID, m.Confidence)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if unmatched := res.Unmatched(); len(unmatched) > 0 {
				fmt.Fprintf(out, "\nDocuments not found (%d):\n", len(unmatched))
				for _, e := range unmatched {
					fmt.Fprintf(out, "  - %s\n", e.RawName)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bidder, "bidder", "", "bidder name to resolve (required)")
	_ = cmd.MarkFlagRequired("bidder")
	return cmd
}
