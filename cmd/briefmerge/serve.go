// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/briefmergeproj/briefmerge-mcp/internal/tool"
)

const serverVersion = "0.2.0"

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdio",
		Long: "Exposes the resolve_bidder_documents, list_bidders, and build_toc tools to an\n" +
			"MCP host over standard input/output.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := mcp.NewServer(&mcp.Implementation{
				Name:    "briefmerge",
				Version: serverVersion,
			}, nil)

			mcp.AddTool(server, tool.MetadataResolveBidderDocuments, tool.ResolveBidderDocuments)
			mcp.AddTool(server, tool.MetadataListBidders, tool.ListBidders)
			mcp.AddTool(server, tool.MetadataBuildToc, tool.BuildToc)

			log.SetFlags(0)
			log.Println("briefmerge MCP server listening on stdio")
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
