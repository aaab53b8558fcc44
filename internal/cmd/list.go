package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DevSymphony/symlint/internal/registry"
	"github.com/DevSymphony/symlint/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered modules",
	Run: func(cmd *cobra.Command, args []string) {
		printRegistry(ui.NewPrinter(cmd.OutOrStdout()), registry.Global())
	},
}

func printRegistry(p *ui.Printer, r *registry.Registry) {
	sections := []struct {
		title string
		names []string
	}{
		{"Plugins", r.PluginNames()},
		{"Rules", r.RuleNames()},
		{"Filters", r.FilterRuleNames()},
	}
	for _, s := range sections {
		p.Title(s.title, fmt.Sprintf("%d available", len(s.names)))
		for _, name := range s.names {
			p.Indent(name)
		}
	}
}
