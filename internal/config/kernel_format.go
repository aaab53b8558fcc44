package config

import (
	"github.com/DevSymphony/symlint/internal/kernel"
)

// RulesObjectToKernelRule converts named rules into kernel records.
//
//	rules:   {"rule-name": rule}
//	options: {"rule-name": options}
//	=> []kernel.RuleRecord
//
// One record is produced per rule, in the rules map's order. Rules without
// an options entry keep kernel.Default(); normalization happens later in
// the descriptors.
func RulesObjectToKernelRule(
	rules *OrderedMap[*kernel.Rule],
	options map[string]kernel.Options,
) []kernel.RuleRecord {
	records := make([]kernel.RuleRecord, 0, rules.Len())
	rules.Each(func(ruleID string, rule *kernel.Rule) {
		records = append(records, kernel.RuleRecord{
			RuleID:  ruleID,
			Rule:    rule,
			Options: options[ruleID],
		})
	})
	return records
}

// FilterRulesObjectToKernelRule converts named filter rules into kernel records.
func FilterRulesObjectToKernelRule(
	rules *OrderedMap[*kernel.FilterRule],
	options map[string]kernel.Options,
) []kernel.FilterRuleRecord {
	records := make([]kernel.FilterRuleRecord, 0, rules.Len())
	rules.Each(func(ruleID string, rule *kernel.FilterRule) {
		records = append(records, kernel.FilterRuleRecord{
			RuleID:  ruleID,
			Rule:    rule,
			Options: options[ruleID],
		})
	})
	return records
}

// PluginsObjectToKernelRule converts named plugins into kernel records.
//
//	plugins: {"plugin-name": plugin}
//	options: {"plugin-name": options}
//	=> []kernel.PluginRecord
func PluginsObjectToKernelRule(
	plugins *OrderedMap[*kernel.Plugin],
	options map[string]kernel.Options,
) []kernel.PluginRecord {
	records := make([]kernel.PluginRecord, 0, plugins.Len())
	plugins.Each(func(pluginID string, plugin *kernel.Plugin) {
		records = append(records, kernel.PluginRecord{
			PluginID: pluginID,
			Plugin:   plugin,
			Options:  options[pluginID],
		})
	})
	return records
}
