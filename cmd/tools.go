package cmd

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sunitj/fastx-mcp/internal/mcp"
)

// toolsCmd prints the MCP tool registry without starting the server.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools the server exposes",
	Run: func(cmd *cobra.Command, args []string) {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Name", "Method", "Path", "Tags"})

		for _, tool := range mcp.Tools() {
			t.AppendRow(table.Row{tool.Name, tool.Method, tool.Path, strings.Join(tool.Tags, ", ")})
		}

		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
