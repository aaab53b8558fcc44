package descriptor

import (
	"github.com/DevSymphony/symlint/internal/kernel"
)

// RuleDescriptor wraps one rule record.
type RuleDescriptor struct {
	rule kernel.RuleRecord
}

func NewRuleDescriptor(rec kernel.RuleRecord) (*RuleDescriptor, error) {
	if rec.Rule == nil {
		return nil, kernel.NewRuleError(kernel.CategoryRule, rec.RuleID, kernel.ErrMissingRule)
	}
	return &RuleDescriptor{rule: rec}, nil
}

func (d *RuleDescriptor) ID() string { return d.rule.RuleID }
func (d *RuleDescriptor) Category() kernel.Category { return kernel.CategoryRule }
func (d *RuleDescriptor) Enabled() bool { return d.NormalizedOptions().IsEnabled() }
func (d *RuleDescriptor) NormalizedOptions() kernel.Options { return d.rule.Options.Normalize() }
func (d *RuleDescriptor) ToKernel() kernel.RuleRecord { return d.rule }
func (d *RuleDescriptor) Record() kernel.Record { return d.rule }

// Linter returns the reporter used for linting.
func (d *RuleDescriptor) Linter() kernel.Reporter {
	return d.rule.Rule.Linter
}

// Fixer returns the reporter used for fixing, or nil.
func (d *RuleDescriptor) Fixer() kernel.Reporter {
	return d.rule.Rule.Fixer
}

func (d *RuleDescriptor) IsLintable() bool {
	return d.rule.Rule.Linter != nil
}

func (d *RuleDescriptor) IsFixable() bool {
	return d.rule.Rule.Fixer != nil
}

func (d *RuleDescriptor) Equals(other *RuleDescriptor) bool {
	if other == nil {
		return false
	}
	return d.rule.Rule == other.rule.Rule &&
		d.rule.Options.Equal(other.rule.Options)
}

// FilterRuleDescriptor wraps one filter rule record.
type FilterRuleDescriptor struct {
	rule kernel.FilterRuleRecord
}

func NewFilterRuleDescriptor(rec kernel.FilterRuleRecord) (*FilterRuleDescriptor, error) {
	if rec.Rule == nil {
		return nil, kernel.NewRuleError(kernel.CategoryFilterRule, rec.RuleID, kernel.ErrMissingRule)
	}
	return &FilterRuleDescriptor{rule: rec}, nil
}

func (d *FilterRuleDescriptor) ID() string { return d.rule.RuleID }
func (d *FilterRuleDescriptor) Category() kernel.Category { return kernel.CategoryFilterRule }
func (d *FilterRuleDescriptor) Enabled() bool { return d.NormalizedOptions().IsEnabled() }
func (d *FilterRuleDescriptor) NormalizedOptions() kernel.Options { return d.rule.Options.Normalize() }
func (d *FilterRuleDescriptor) ToKernel() kernel.FilterRuleRecord { return d.rule }
func (d *FilterRuleDescriptor) Record() kernel.Record { return d.rule }

// Filter returns the filter reporter.
func (d *FilterRuleDescriptor) Filter() kernel.FilterReporter {
	return d.rule.Rule.Filter
}

func (d *FilterRuleDescriptor) Equals(other *FilterRuleDescriptor) bool {
	if other == nil {
		return false
	}
	return d.rule.Rule == other.rule.Rule &&
		d.rule.Options.Equal(other.rule.Options)
}
