package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/DevSymphony/symlint/internal/inspect"
	"github.com/DevSymphony/symlint/internal/kernel/descriptor"
	"github.com/DevSymphony/symlint/internal/registry"
	"github.com/DevSymphony/symlint/internal/ui"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Show the resolved configuration",
	Long: `Load the configuration file, resolve every configured module and print
the rules, filter rules and plugins with their options.

Examples:
  symlint describe
  symlint describe --json
  symlint describe --ext .md
  symlint describe --disable max-length,markdown`,
	RunE: runDescribe,
}

var (
	describeJSON    bool
	describeExt     string
	describeDisable []string
)

func init() {
	describeCmd.Flags().BoolVar(&describeJSON, "json", false, "Output as JSON")
	describeCmd.Flags().StringVar(&describeExt, "ext", "", "Show which plugin handles the file extension")
	describeCmd.Flags().StringSliceVar(&describeDisable, "disable", nil, "Disable modules by id for this run")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	path := resolvedConfigPath()
	log.Debug("loading config", "path", path)

	kd, err := inspect.Load(path, registry.Global())
	if err != nil {
		return err
	}
	if len(describeDisable) > 0 {
		kd = inspect.Disable(kd, describeDisable)
	}

	out := cmd.OutOrStdout()
	if describeExt != "" {
		return printExtensionOwner(out, kd, describeExt)
	}

	summary, err := inspect.Summarize(kd)
	if err != nil {
		return err
	}
	if describeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	printSummary(ui.NewPrinter(out), summary)
	return nil
}

func printExtensionOwner(w io.Writer, kd *descriptor.KernelDescriptor, ext string) error {
	ext = inspect.NormalizeExtension(ext)
	d, err := kd.Plugins.FindByExtension(ext)
	if err != nil {
		return err
	}
	p := ui.NewPrinter(w)
	if d == nil {
		p.Warn(fmt.Sprintf("no enabled plugin handles %s", ext))
		return nil
	}
	p.OK(fmt.Sprintf("%s is handled by %s", ext, d.ID()))
	return nil
}

func printSummary(p *ui.Printer, s *inspect.Summary) {
	printSection(p, "Plugins", s.Plugins)
	printSection(p, "Rules", s.Rules)
	printSection(p, "Filters", s.Filters)

	if len(s.Extensions) == 0 {
		p.Warn("no file extensions are handled")
		return
	}
	p.Info("extensions: " + strings.Join(s.Extensions, ", "))
}

func printSection(p *ui.Printer, title string, modules []inspect.Module) {
	p.Title(title, fmt.Sprintf("%d configured", len(modules)))
	for _, m := range modules {
		state := "enabled"
		if !m.Enabled {
			state = "disabled"
		}
		line := fmt.Sprintf("%s (%s)", m.ID, state)
		if m.Defaulted {
			line += " defaults"
		}
		if m.Fixable != nil && *m.Fixable {
			line += " fixable"
		}
		if len(m.Extensions) > 0 {
			line += " " + strings.Join(m.Extensions, " ")
		}
		p.Indent(line)
	}
}
