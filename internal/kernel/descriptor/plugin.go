package descriptor

import (
	"github.com/DevSymphony/symlint/internal/kernel"
)

// PluginDescriptor wraps one plugin record and owns the processor built for it.
type PluginDescriptor struct {
	plugin    kernel.PluginRecord
	processor kernel.Processor
}

// NewPluginDescriptor builds the plugin's processor with the normalized options.
// A plugin without a Processor is a configuration error and nothing is built.
func NewPluginDescriptor(rec kernel.PluginRecord) (*PluginDescriptor, error) {
	if rec.Plugin == nil || rec.Plugin.Processor == nil {
		return nil, kernel.NewPluginError(rec.PluginID, kernel.ErrMissingProcessor)
	}

	d := &PluginDescriptor{plugin: rec}
	processor, err := rec.Plugin.Processor.New(d.NormalizedOptions())
	if err != nil {
		return nil, kernel.NewPluginError(rec.PluginID, err)
	}
	if processor == nil {
		return nil, kernel.NewPluginError(rec.PluginID, kernel.ErrMissingProcessor)
	}
	d.processor = processor
	return d, nil
}

func (d *PluginDescriptor) ID() string {
	return d.plugin.PluginID
}

func (d *PluginDescriptor) Category() kernel.Category {
	return kernel.CategoryPlugin
}

// Enabled reports whether the plugin is not configured as false.
func (d *PluginDescriptor) Enabled() bool {
	return d.NormalizedOptions().IsEnabled()
}

// NormalizedOptions returns the options with "not configured" turned into true.
func (d *PluginDescriptor) NormalizedOptions() kernel.Options {
	return d.plugin.Options.Normalize()
}

// Processor returns the processor owned by this descriptor.
func (d *PluginDescriptor) Processor() kernel.Processor {
	return d.processor
}

// AvailableExtensions returns the file extensions the plugin's processor handles.
//
// The processor instance is asked first. Plugins written against the older
// API declare the extensions on the constructor instead, so that is the
// fallback. Resolution happens on each call, not at construction.
func (d *PluginDescriptor) AvailableExtensions() ([]string, error) {
	declarer, ok := kernel.ResolveCapability[kernel.ExtensionsDeclarer](
		d.processor,
		d.plugin.Plugin.Processor,
	)
	if !ok {
		return nil, kernel.NewPluginError(d.plugin.PluginID, kernel.ErrMissingAvailableExtensions)
	}
	return declarer.AvailableExtensions(), nil
}

// ToKernel returns the record the descriptor was built from.
func (d *PluginDescriptor) ToKernel() kernel.PluginRecord {
	return d.plugin
}

func (d *PluginDescriptor) Record() kernel.Record {
	return d.plugin
}

// Equals reports whether both descriptors wrap the same plugin module and
// strictly equal raw options.
func (d *PluginDescriptor) Equals(other *PluginDescriptor) bool {
	if other == nil {
		return false
	}
	return d.plugin.Plugin == other.plugin.Plugin &&
		d.plugin.Options.Equal(other.plugin.Options)
}
