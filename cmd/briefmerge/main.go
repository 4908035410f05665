// SPDX-License-Identifier: Apache-2.0

// briefmerge resolves a bidder's required-document list from brief-note
// text and matches it against uploaded file names, as a CLI or as an MCP
// server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
