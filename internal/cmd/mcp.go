package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/DevSymphony/symlint/internal/git"
	"github.com/DevSymphony/symlint/internal/mcp"
	"github.com/DevSymphony/symlint/internal/registry"
)

var mcpRoot string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server to integrate with LLM tools",
	Long: `Start Model Context Protocol (MCP) server.
LLM-based coding tools can inspect the symlint configuration through stdio.

Tools provided by MCP server:
- describe_config: configured modules, normalized options and extensions
- find_plugin: plugin that processes a file extension
- list_files: files an enabled plugin will process`,
	Example: `  symlint mcp
  symlint mcp --root ./docs --config .symlintrc.yml`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().StringVar(&mcpRoot, "root", "", "project root (default: git repository root, else working directory)")
}

func runMCP(cmd *cobra.Command, args []string) error {
	return newMCPServer(cmd.Context()).Start(cmd.Context())
}

// newMCPServer builds the server from the command flags and the build version.
func newMCPServer(ctx context.Context) *mcp.Server {
	root := mcpRoot
	if root == "" {
		root = "."
		if repoRoot, err := git.RepoRoot(ctx, "."); err == nil {
			root = repoRoot
		}
	}
	return mcp.NewServer(resolvedConfigPath(), root, GetVersion(), registry.Global())
}
