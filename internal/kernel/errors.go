package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingProcessor is returned when a plugin module has no Processor.
	ErrMissingProcessor = errors.New("plugin should have a Processor")

	// ErrMissingAvailableExtensions is returned when neither the processor nor
	// its constructor declares AvailableExtensions().
	ErrMissingAvailableExtensions = errors.New("plugin should implement AvailableExtensions()")

	// ErrMissingRule is returned when a rule record has no module.
	ErrMissingRule = errors.New("rule module is nil")

	// ErrInvalidOptions is returned when a configured value is not a bool or an object.
	ErrInvalidOptions = errors.New("options must be a boolean or an object")
)

// ConfigurationError reports a misconfigured extension. It is fatal for that
// extension: callers are expected to abort setup and show it to the user.
type ConfigurationError struct {
	ID       string
	Category Category
	Err      error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s(%s): %v", e.Category, e.ID, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func newConfigurationError(category Category, id string, err error) *ConfigurationError {
	return &ConfigurationError{ID: id, Category: category, Err: err}
}

// NewPluginError wraps err as a configuration error for the given plugin.
func NewPluginError(pluginID string, err error) *ConfigurationError {
	return newConfigurationError(CategoryPlugin, pluginID, err)
}

// NewRuleError wraps err as a configuration error for the given rule or filter rule.
func NewRuleError(category Category, ruleID string, err error) *ConfigurationError {
	return newConfigurationError(category, ruleID, err)
}
