// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/briefmergeproj/briefmerge-mcp/internal/briefnote"
)

func newBiddersCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "bidders NOTE_FILE",
		Short: "List the bidder section headings found in a brief note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading brief note %s: %w", args[0], err)
			}

			parser := briefnote.NewParser()
			var bidders []string
			if search != "" {
				bidders = parser.SearchBidders(string(text), search)
			} else {
				bidders = parser.Bidders(string(text))
			}

			if len(bidders) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No bidder headings found.")
				return nil
			}
			for _, b := range bidders {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", b)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter bidder names case-insensitively")
	return cmd
}
