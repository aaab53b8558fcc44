package descriptor

import (
	"fmt"
	"strings"

	"github.com/DevSymphony/symlint/internal/kernel"
)

// ===== Plugins =====

// PluginDescriptors is an ordered list of plugin descriptors. Order decides
// which plugin wins when two of them claim the same extension.
type PluginDescriptors []*PluginDescriptor

// NewPluginDescriptors builds one descriptor per record, stopping at the
// first configuration error.
func NewPluginDescriptors(records []kernel.PluginRecord) (PluginDescriptors, error) {
	out := make(PluginDescriptors, 0, len(records))
	for _, rec := range records {
		d, err := NewPluginDescriptor(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Enabled returns the enabled plugins in order.
func (ds PluginDescriptors) Enabled() PluginDescriptors {
	out := make(PluginDescriptors, 0, len(ds))
	for _, d := range ds {
		if d.Enabled() {
			out = append(out, d)
		}
	}
	return out
}

// WithoutDuplicates drops descriptors equal to an earlier one.
func (ds PluginDescriptors) WithoutDuplicates() PluginDescriptors {
	out := make(PluginDescriptors, 0, len(ds))
	for _, d := range ds {
		if !containsEqual(out, d, (*PluginDescriptor).Equals) {
			out = append(out, d)
		}
	}
	return out
}

func (ds PluginDescriptors) Find(id string) (*PluginDescriptor, bool) {
	for _, d := range ds {
		if d.ID() == id {
			return d, true
		}
	}
	return nil, false
}

// AvailableExtensions returns every extension handled by the enabled
// plugins, first plugin first, without duplicates.
func (ds PluginDescriptors) AvailableExtensions() ([]string, error) {
	seen := make(map[string]bool)
	var exts []string
	for _, d := range ds.Enabled() {
		pluginExts, err := d.AvailableExtensions()
		if err != nil {
			return nil, err
		}
		for _, ext := range pluginExts {
			if !seen[ext] {
				seen[ext] = true
				exts = append(exts, ext)
			}
		}
	}
	return exts, nil
}

// FindByExtension returns the first enabled plugin that handles ext, or nil.
// Extensions compare case-insensitively.
func (ds PluginDescriptors) FindByExtension(ext string) (*PluginDescriptor, error) {
	for _, d := range ds.Enabled() {
		exts, err := d.AvailableExtensions()
		if err != nil {
			return nil, err
		}
		for _, e := range exts {
			if strings.EqualFold(e, ext) {
				return d, nil
			}
		}
	}
	return nil, nil
}

func (ds PluginDescriptors) ToKernel() []kernel.PluginRecord {
	out := make([]kernel.PluginRecord, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.ToKernel())
	}
	return out
}

// ===== Rules =====

// RuleDescriptors is an ordered list of rule descriptors.
type RuleDescriptors []*RuleDescriptor

func NewRuleDescriptors(records []kernel.RuleRecord) (RuleDescriptors, error) {
	out := make(RuleDescriptors, 0, len(records))
	for _, rec := range records {
		d, err := NewRuleDescriptor(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (ds RuleDescriptors) Enabled() RuleDescriptors {
	out := make(RuleDescriptors, 0, len(ds))
	for _, d := range ds {
		if d.Enabled() {
			out = append(out, d)
		}
	}
	return out
}

// Lintable returns the enabled rules that have a linter.
func (ds RuleDescriptors) Lintable() RuleDescriptors {
	out := make(RuleDescriptors, 0, len(ds))
	for _, d := range ds.Enabled() {
		if d.IsLintable() {
			out = append(out, d)
		}
	}
	return out
}

// Fixable returns the enabled rules that have a fixer.
func (ds RuleDescriptors) Fixable() RuleDescriptors {
	out := make(RuleDescriptors, 0, len(ds))
	for _, d := range ds.Enabled() {
		if d.IsFixable() {
			out = append(out, d)
		}
	}
	return out
}

func (ds RuleDescriptors) WithoutDuplicates() RuleDescriptors {
	out := make(RuleDescriptors, 0, len(ds))
	for _, d := range ds {
		if !containsEqual(out, d, (*RuleDescriptor).Equals) {
			out = append(out, d)
		}
	}
	return out
}

func (ds RuleDescriptors) Find(id string) (*RuleDescriptor, bool) {
	for _, d := range ds {
		if d.ID() == id {
			return d, true
		}
	}
	return nil, false
}

func (ds RuleDescriptors) ToKernel() []kernel.RuleRecord {
	out := make([]kernel.RuleRecord, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.ToKernel())
	}
	return out
}

// ===== Filter rules =====

// FilterRuleDescriptors is an ordered list of filter rule descriptors.
type FilterRuleDescriptors []*FilterRuleDescriptor

func NewFilterRuleDescriptors(records []kernel.FilterRuleRecord) (FilterRuleDescriptors, error) {
	out := make(FilterRuleDescriptors, 0, len(records))
	for _, rec := range records {
		d, err := NewFilterRuleDescriptor(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (ds FilterRuleDescriptors) Enabled() FilterRuleDescriptors {
	out := make(FilterRuleDescriptors, 0, len(ds))
	for _, d := range ds {
		if d.Enabled() {
			out = append(out, d)
		}
	}
	return out
}

func (ds FilterRuleDescriptors) WithoutDuplicates() FilterRuleDescriptors {
	out := make(FilterRuleDescriptors, 0, len(ds))
	for _, d := range ds {
		if !containsEqual(out, d, (*FilterRuleDescriptor).Equals) {
			out = append(out, d)
		}
	}
	return out
}

func (ds FilterRuleDescriptors) Find(id string) (*FilterRuleDescriptor, bool) {
	for _, d := range ds {
		if d.ID() == id {
			return d, true
		}
	}
	return nil, false
}

func (ds FilterRuleDescriptors) ToKernel() []kernel.FilterRuleRecord {
	out := make([]kernel.FilterRuleRecord, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.ToKernel())
	}
	return out
}

// ===== Kernel descriptor =====

// KernelDescriptor groups everything one kernel run needs.
type KernelDescriptor struct {
	Rules       RuleDescriptors
	FilterRules FilterRuleDescriptors
	Plugins     PluginDescriptors
}

// NewKernelDescriptor builds descriptors for all three record lists.
func NewKernelDescriptor(
	rules []kernel.RuleRecord,
	filterRules []kernel.FilterRuleRecord,
	plugins []kernel.PluginRecord,
) (*KernelDescriptor, error) {
	ruleDescs, err := NewRuleDescriptors(rules)
	if err != nil {
		return nil, fmt.Errorf("failed to build rules: %w", err)
	}
	filterDescs, err := NewFilterRuleDescriptors(filterRules)
	if err != nil {
		return nil, fmt.Errorf("failed to build filter rules: %w", err)
	}
	pluginDescs, err := NewPluginDescriptors(plugins)
	if err != nil {
		return nil, fmt.Errorf("failed to build plugins: %w", err)
	}
	return &KernelDescriptor{
		Rules:       ruleDescs,
		FilterRules: filterDescs,
		Plugins:     pluginDescs,
	}, nil
}

// ShallowMerge returns a new descriptor where other's entries replace
// entries with the same id. Existing order is kept and new ids are appended.
func (k *KernelDescriptor) ShallowMerge(other *KernelDescriptor) *KernelDescriptor {
	if other == nil {
		return k
	}
	return &KernelDescriptor{
		Rules:       mergeByID(k.Rules, other.Rules),
		FilterRules: mergeByID(k.FilterRules, other.FilterRules),
		Plugins:     mergeByID(k.Plugins, other.Plugins),
	}
}

// AvailableExtensions is a shortcut for Plugins.AvailableExtensions.
func (k *KernelDescriptor) AvailableExtensions() ([]string, error) {
	return k.Plugins.AvailableExtensions()
}

// ===== helpers =====

func containsEqual[D any](list []D, target D, equals func(D, D) bool) bool {
	for _, d := range list {
		if equals(d, target) {
			return true
		}
	}
	return false
}

func mergeByID[S ~[]D, D interface{ ID() string }](base, override S) S {
	out := make(S, 0, len(base)+len(override))
	index := make(map[string]int, len(base))
	for _, d := range base {
		index[d.ID()] = len(out)
		out = append(out, d)
	}
	for _, d := range override {
		if i, ok := index[d.ID()]; ok {
			out[i] = d
			continue
		}
		index[d.ID()] = len(out)
		out = append(out, d)
	}
	return out
}
