package config

import (
	"fmt"

	"github.com/DevSymphony/symlint/internal/kernel"
)

// Resolver maps configured names to loaded modules.
type Resolver interface {
	Rule(name string) (*kernel.Rule, error)
	FilterRule(name string) (*kernel.FilterRule, error)
	Plugin(name string) (*kernel.Plugin, error)
}

// KernelRecords holds the three ordered record lists for one kernel run.
type KernelRecords struct {
	Rules       []kernel.RuleRecord
	FilterRules []kernel.FilterRuleRecord
	Plugins     []kernel.PluginRecord
}

// Resolve looks up every configured name and converts the sections into
// kernel records, keeping declaration order.
func (f *File) Resolve(r Resolver) (*KernelRecords, error) {
	rules, err := resolveSection(f.Rules, r.Rule)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve rules: %w", err)
	}
	filters, err := resolveSection(f.Filters, r.FilterRule)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve filters: %w", err)
	}
	plugins, err := resolveSection(f.Plugins, r.Plugin)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve plugins: %w", err)
	}

	return &KernelRecords{
		Rules:       RulesObjectToKernelRule(rules, f.Rules.Options()),
		FilterRules: FilterRulesObjectToKernelRule(filters, f.Filters.Options()),
		Plugins:     PluginsObjectToKernelRule(plugins, f.Plugins.Options()),
	}, nil
}

func resolveSection[M any](s Section, lookup func(string) (M, error)) (*OrderedMap[M], error) {
	out := NewOrderedMap[M]()
	for _, name := range s.Names() {
		module, err := lookup(name)
		if err != nil {
			return nil, err
		}
		out.Set(name, module)
	}
	return out, nil
}
