// Package inspect loads a configuration into kernel descriptors and
// summarizes them for the CLI and the MCP server.
package inspect

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/DevSymphony/symlint/internal/config"
	"github.com/DevSymphony/symlint/internal/kernel"
	"github.com/DevSymphony/symlint/internal/kernel/descriptor"
)

// Load reads the config file at path and builds its descriptors.
func Load(path string, r config.Resolver) (*descriptor.KernelDescriptor, error) {
	file, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	records, err := file.Resolve(r)
	if err != nil {
		return nil, err
	}
	kd, err := descriptor.NewKernelDescriptor(records.Rules, records.FilterRules, records.Plugins)
	if err != nil {
		return nil, err
	}
	log.Debug("kernel descriptor built",
		"rules", len(kd.Rules), "filters", len(kd.FilterRules), "plugins", len(kd.Plugins))
	return kd, nil
}

// Disable returns kd with the named modules turned off. Unknown ids are
// logged and skipped.
func Disable(kd *descriptor.KernelDescriptor, ids []string) *descriptor.KernelDescriptor {
	var (
		rules   []kernel.RuleRecord
		filters []kernel.FilterRuleRecord
		plugins []kernel.PluginRecord
	)
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if d, ok := kd.Rules.Find(id); ok {
			rec := d.ToKernel()
			rec.Options = kernel.Disabled()
			rules = append(rules, rec)
			continue
		}
		if d, ok := kd.FilterRules.Find(id); ok {
			rec := d.ToKernel()
			rec.Options = kernel.Disabled()
			filters = append(filters, rec)
			continue
		}
		if d, ok := kd.Plugins.Find(id); ok {
			rec := d.ToKernel()
			rec.Options = kernel.Disabled()
			plugins = append(plugins, rec)
			continue
		}
		log.Warn("cannot disable unknown module", "id", id)
	}

	override, err := descriptor.NewKernelDescriptor(rules, filters, plugins)
	if err != nil {
		// Only fails when a processor constructor fails on a second call.
		log.Warn("failed to build override", "err", err)
		return kd
	}
	return kd.ShallowMerge(override)
}

// Module describes one configured module. Defaulted is set when the config
// names the module without an options entry.
type Module struct {
	ID         string   `json:"id"`
	Enabled    bool     `json:"enabled"`
	Defaulted  bool     `json:"defaulted,omitempty"`
	Options    any      `json:"options"`
	Fixable    *bool    `json:"fixable,omitempty"`
	Extensions []string `json:"extensions,omitempty"`
}

// Summary describes a kernel descriptor.
type Summary struct {
	Plugins    []Module `json:"plugins"`
	Rules      []Module `json:"rules"`
	Filters    []Module `json:"filters"`
	Extensions []string `json:"extensions"`
}

// Summarize lists the unique modules of kd in order. Options are shown
// normalized.
func Summarize(kd *descriptor.KernelDescriptor) (*Summary, error) {
	s := &Summary{
		Plugins:    []Module{},
		Rules:      []Module{},
		Filters:    []Module{},
		Extensions: []string{},
	}

	for _, d := range kd.Plugins.WithoutDuplicates() {
		m := Module{
			ID:        d.ID(),
			Enabled:   d.Enabled(),
			Defaulted: defaulted(d.ToKernel().Options),
			Options:   d.NormalizedOptions().Value(),
		}
		if d.Enabled() {
			exts, err := d.AvailableExtensions()
			if err != nil {
				return nil, err
			}
			m.Extensions = exts
		}
		s.Plugins = append(s.Plugins, m)
	}
	for _, d := range kd.Rules.WithoutDuplicates() {
		fixable := d.IsFixable()
		s.Rules = append(s.Rules, Module{
			ID:        d.ID(),
			Enabled:   d.Enabled(),
			Defaulted: defaulted(d.ToKernel().Options),
			Options:   d.NormalizedOptions().Value(),
			Fixable:   &fixable,
		})
	}
	for _, d := range kd.FilterRules.WithoutDuplicates() {
		s.Filters = append(s.Filters, Module{
			ID:        d.ID(),
			Enabled:   d.Enabled(),
			Defaulted: defaulted(d.ToKernel().Options),
			Options:   d.NormalizedOptions().Value(),
		})
	}

	exts, err := kd.AvailableExtensions()
	if err != nil {
		return nil, err
	}
	if exts != nil {
		s.Extensions = exts
	}
	return s, nil
}

func defaulted(o kernel.Options) bool {
	return o.Kind() == kernel.OptionsDefault
}

// NormalizeExtension adds the leading dot when missing.
func NormalizeExtension(ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		return "." + ext
	}
	return ext
}
