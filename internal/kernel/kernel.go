// Package kernel defines the records the lint kernel consumes: rule, filter
// rule and plugin modules, their options, and the contracts those modules
// implement.
//
// Modules are always handled by pointer. Two records refer to the same
// module only when they hold the same pointer.
package kernel

// Category tags the kind of extension a record describes.
type Category string

const (
	CategoryRule       Category = "rule"
	CategoryFilterRule Category = "filter-rule"
	CategoryPlugin     Category = "plugin"
)

// Record is implemented by the three kernel record types.
type Record interface {
	ID() string
	Category() Category
}

// RuleRecord is one configured rule.
type RuleRecord struct {
	RuleID  string
	Rule    *Rule
	Options Options
}

func (r RuleRecord) ID() string { return r.RuleID }
func (r RuleRecord) Category() Category { return CategoryRule }

// FilterRuleRecord is one configured filter rule.
type FilterRuleRecord struct {
	RuleID  string
	Rule    *FilterRule
	Options Options
}

func (r FilterRuleRecord) ID() string { return r.RuleID }
func (r FilterRuleRecord) Category() Category { return CategoryFilterRule }

// PluginRecord is one configured plugin.
type PluginRecord struct {
	PluginID string
	Plugin   *Plugin
	Options  Options
}

func (r PluginRecord) ID() string { return r.PluginID }
func (r PluginRecord) Category() Category { return CategoryPlugin }
