package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/DevSymphony/symlint/internal/files"
	"github.com/DevSymphony/symlint/internal/git"
	"github.com/DevSymphony/symlint/internal/inspect"
	"github.com/DevSymphony/symlint/internal/registry"
	"github.com/DevSymphony/symlint/internal/ui"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the files the configured plugins would process",
	Long: `Walk the root directory and print every file handled by an enabled
plugin, together with the plugin that handles it.

Examples:
  symlint files
  symlint files --include "docs/**" --exclude "docs/drafts/**"
  symlint files --repo --changed`,
	RunE: runFiles,
}

var (
	filesInclude []string
	filesExclude []string
	filesRoot    string
	filesRepo    bool
	filesChanged bool
	filesJSON    bool
)

func init() {
	filesCmd.Flags().StringSliceVar(&filesInclude, "include", nil, "Glob patterns to include (default \""+files.DefaultInclude+"\")")
	filesCmd.Flags().StringSliceVar(&filesExclude, "exclude", nil, "Glob patterns to exclude")
	filesCmd.Flags().StringVar(&filesRoot, "root", ".", "Directory to search")
	filesCmd.Flags().BoolVar(&filesRepo, "repo", false, "Search from the git repository root")
	filesCmd.Flags().BoolVar(&filesChanged, "changed", false, "Only files changed since HEAD (requires --repo)")
	filesCmd.Flags().BoolVar(&filesJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
	if filesChanged && !filesRepo {
		return fmt.Errorf("--changed requires --repo")
	}

	kd, err := inspect.Load(resolvedConfigPath(), registry.Global())
	if err != nil {
		return err
	}

	root := filesRoot
	if filesRepo {
		root, err = git.RepoRoot(cmd.Context(), filesRoot)
		if err != nil {
			return err
		}
	}
	log.Debug("collecting files", "root", root, "include", filesInclude, "exclude", filesExclude)

	sel := &files.Selector{Include: filesInclude, Exclude: filesExclude}
	var targets []files.Target
	if filesChanged {
		changed, err := git.ChangedFiles(cmd.Context(), root)
		if err != nil {
			return err
		}
		targets, err = files.Classify(changed, sel, kd.Plugins)
		if err != nil {
			return err
		}
	} else {
		targets, err = files.Collect(os.DirFS(root), sel, kd.Plugins)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if filesJSON {
		if targets == nil {
			targets = []files.Target{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(targets)
	}

	p := ui.NewPrinter(out)
	if len(targets) == 0 {
		p.Warn("no files matched")
		return nil
	}
	for _, t := range targets {
		fmt.Fprintf(out, "%s\t%s\n", t.Path, t.Plugin)
	}
	return nil
}
