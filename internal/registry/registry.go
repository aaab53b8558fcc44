// Package registry holds the rule, filter rule and plugin modules known to
// symlint, keyed by the names used in configuration files.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/DevSymphony/symlint/internal/kernel"
)

// ===== Errors =====

// errModuleNotFound is returned when no module is registered under a name.
type errModuleNotFound struct {
	Category kernel.Category
	Name     string
}

func (e *errModuleNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Category, e.Name)
}

// errNilModule is returned when trying to register a nil module.
var errNilModule = fmt.Errorf("cannot register nil module")

// ===== Registry =====

// Registry maps names to modules.
type Registry struct {
	mu          sync.RWMutex
	rules       map[string]*kernel.Rule
	filterRules map[string]*kernel.FilterRule
	plugins     map[string]*kernel.Plugin
}

var (
	globalRegistry *Registry
	once           sync.Once
)

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		rules:       make(map[string]*kernel.Rule),
		filterRules: make(map[string]*kernel.FilterRule),
		plugins:     make(map[string]*kernel.Plugin),
	}
}

// Global returns the singleton registry built-in modules register with.
func Global() *Registry {
	once.Do(func() {
		globalRegistry = New()
	})
	return globalRegistry
}

// RegisterRule registers a rule module under name.
func (r *Registry) RegisterRule(name string, rule *kernel.Rule) error {
	return register(r, r.rules, kernel.CategoryRule, name, rule)
}

// RegisterFilterRule registers a filter rule module under name.
func (r *Registry) RegisterFilterRule(name string, rule *kernel.FilterRule) error {
	return register(r, r.filterRules, kernel.CategoryFilterRule, name, rule)
}

// RegisterPlugin registers a plugin module under name.
func (r *Registry) RegisterPlugin(name string, plugin *kernel.Plugin) error {
	return register(r, r.plugins, kernel.CategoryPlugin, name, plugin)
}

func register[M any](r *Registry, modules map[string]*M, category kernel.Category, name string, module *M) error {
	if module == nil {
		return errNilModule
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Warn on duplicate registration (init order issues)
	if _, exists := modules[name]; exists {
		log.Warn("module already registered, ignoring duplicate", "category", category, "name", name)
		return nil
	}

	modules[name] = module
	return nil
}

// Rule finds a rule module by name.
func (r *Registry) Rule(name string) (*kernel.Rule, error) {
	return lookup(r, r.rules, kernel.CategoryRule, name)
}

// FilterRule finds a filter rule module by name.
func (r *Registry) FilterRule(name string) (*kernel.FilterRule, error) {
	return lookup(r, r.filterRules, kernel.CategoryFilterRule, name)
}

// Plugin finds a plugin module by name.
func (r *Registry) Plugin(name string) (*kernel.Plugin, error) {
	return lookup(r, r.plugins, kernel.CategoryPlugin, name)
}

func lookup[M any](r *Registry, modules map[string]*M, category kernel.Category, name string) (*M, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if m, ok := modules[name]; ok {
		return m, nil
	}
	return nil, &errModuleNotFound{Category: category, Name: name}
}

// RuleNames returns all registered rule names, sorted.
func (r *Registry) RuleNames() []string {
	return names(r, r.rules)
}

// FilterRuleNames returns all registered filter rule names, sorted.
func (r *Registry) FilterRuleNames() []string {
	return names(r, r.filterRules)
}

// PluginNames returns all registered plugin names, sorted.
func (r *Registry) PluginNames() []string {
	return names(r, r.plugins)
}

func names[M any](r *Registry, modules map[string]*M) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(modules))
	for name := range modules {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
