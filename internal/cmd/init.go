package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/log"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/DevSymphony/symlint/internal/config"
	"github.com/DevSymphony/symlint/internal/kernel"
	"github.com/DevSymphony/symlint/internal/registry"
	"github.com/DevSymphony/symlint/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file",
	Long: `Create .symlintrc.yml from the registered modules.

This command:
  1. Asks which plugins, rules and filter rules to enable
  2. Asks before overwriting an existing file (unless --force)
  3. Writes every selected module with default options`,
	RunE: runInit,
}

var (
	initForce bool
	initYes   bool
)

// Prompt hooks, replaced in tests.
var (
	selectModules    = surveySelectModules
	confirmOverwrite = promptConfirmOverwrite
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing configuration file")
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Enable every registered module without prompting")
}

func runInit(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.OutOrStdout())
	path := resolvedConfigPath()

	if _, err := os.Stat(path); err == nil && !initForce {
		if initYes {
			p.Warn(fmt.Sprintf("%s already exists", path))
			p.Indent("Use --force flag to overwrite")
			return nil
		}
		ok, err := confirmOverwrite(path)
		if err != nil {
			return err
		}
		if !ok {
			p.Info("Skipped")
			return nil
		}
	}

	file, err := buildInitialConfig(registry.Global(), initYes)
	if err != nil {
		return err
	}
	if err := config.Save(path, file); err != nil {
		return err
	}
	log.Debug("configuration written", "path", path)

	p.OK(fmt.Sprintf("%s created", path))
	p.Indent(fmt.Sprintf("plugins: %d, rules: %d, filters: %d",
		file.Plugins.Len(), file.Rules.Len(), file.Filters.Len()))
	p.Done("Run 'symlint describe' to check the result")
	return nil
}

// buildInitialConfig selects modules per category. With all set, every
// registered module is enabled.
func buildInitialConfig(r *registry.Registry, all bool) (*config.File, error) {
	file := &config.File{}
	sections := []struct {
		label   string
		names   []string
		section *config.Section
	}{
		{"plugins", r.PluginNames(), &file.Plugins},
		{"rules", r.RuleNames(), &file.Rules},
		{"filter rules", r.FilterRuleNames(), &file.Filters},
	}

	for _, s := range sections {
		chosen := s.names
		if !all && len(s.names) > 0 {
			var err error
			chosen, err = selectModules(s.label, s.names)
			if err != nil {
				return nil, fmt.Errorf("failed to select %s: %w", s.label, err)
			}
		}
		for _, name := range chosen {
			s.section.Set(name, kernel.Enabled())
		}
	}
	return file, nil
}

func surveySelectModules(label string, names []string) ([]string, error) {
	var selected []string
	prompt := &survey.MultiSelect{
		Message: fmt.Sprintf("Select %s to enable:", label),
		Options: names,
		Default: names,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return nil, err
	}
	return selected, nil
}

func promptConfirmOverwrite(path string) (bool, error) {
	confirmPrompt := promptui.Prompt{
		Label:     fmt.Sprintf("%s already exists. Overwrite", path),
		IsConfirm: true,
	}

	result, err := confirmPrompt.Run()
	if err == promptui.ErrAbort {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.ToLower(result) == "y", nil
}
