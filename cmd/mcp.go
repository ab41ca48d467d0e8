package cmd

import (
	"github.com/huangsam/magarea/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the magarea MCP server",
	Long: `Launch an MCP server on stdio that lets AI agents evaluate the magnitude-area relation.

Tools: median_magnitude, median_area, std_dev, describe, scaling_table.
Persistent flags such as --regime and --rake set the defaults for every tool call.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, historyManager)
	},
}
