// Package descriptor wraps configured kernel records so the kernel can ask
// normalized questions about them: is it enabled, what options does it run
// with, is it the same extension as before, which files can a plugin handle.
package descriptor

import (
	"fmt"

	"github.com/DevSymphony/symlint/internal/kernel"
)

// Descriptor is the part of the contract shared by every descriptor kind.
// Equality is defined per kind; see the Equals methods.
type Descriptor interface {
	ID() string
	Category() kernel.Category
	Enabled() bool
	NormalizedOptions() kernel.Options
	Record() kernel.Record
}

// New builds the descriptor matching the record's category.
func New(rec kernel.Record) (Descriptor, error) {
	switch r := rec.(type) {
	case kernel.RuleRecord:
		return NewRuleDescriptor(r)
	case kernel.FilterRuleRecord:
		return NewFilterRuleDescriptor(r)
	case kernel.PluginRecord:
		return NewPluginDescriptor(r)
	default:
		return nil, fmt.Errorf("unknown kernel record %T", rec)
	}
}
