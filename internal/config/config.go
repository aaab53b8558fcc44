// Package config loads the symlint configuration file and turns its named
// sections into the ordered kernel records the descriptors are built from.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/DevSymphony/symlint/internal/kernel"
)

const (
	// DefaultFileName is looked up in the working directory.
	DefaultFileName = ".symlintrc.yml"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "SYMLINT_CONFIG"
)

// File is the decoded configuration file.
//
//	plugins:
//	  text: true
//	  markdown: { gfm: true }
//	rules:
//	  max-length: { max: 100 }
//	filters:
//	  allowlist: { allow: ["TODO"] }
type File struct {
	Plugins Section `yaml:"plugins,omitempty"`
	Rules   Section `yaml:"rules,omitempty"`
	Filters Section `yaml:"filters,omitempty"`
}

// Section is one named-extension section. It accepts a mapping of
// name → options or a plain list of names.
type Section struct {
	entries *OrderedMap[kernel.Options]
}

// NewSection creates an empty section.
func NewSection() Section {
	return Section{entries: NewOrderedMap[kernel.Options]()}
}

// Set adds or replaces an entry.
func (s *Section) Set(name string, options kernel.Options) {
	if s.entries == nil {
		s.entries = NewOrderedMap[kernel.Options]()
	}
	s.entries.Set(name, options)
}

// Names returns the configured names in declaration order.
func (s Section) Names() []string {
	return s.entries.Keys()
}

func (s Section) Len() int {
	return s.entries.Len()
}

// Options returns the options keyed by name.
func (s Section) Options() map[string]kernel.Options {
	out := make(map[string]kernel.Options, s.entries.Len())
	s.entries.Each(func(name string, opts kernel.Options) {
		out[name] = opts
	})
	return out
}

func (s Section) IsZero() bool {
	return s.entries.Len() == 0
}

func (s *Section) UnmarshalYAML(node *yaml.Node) error {
	s.entries = NewOrderedMap[kernel.Options]()

	switch node.Kind {
	case yaml.SequenceNode:
		for _, item := range node.Content {
			var name string
			if err := item.Decode(&name); err != nil {
				return fmt.Errorf("line %d: expected a name: %w", item.Line, err)
			}
			s.entries.Set(name, kernel.Default())
		}
		return nil

	case yaml.MappingNode:
		raw := NewOrderedMap[any]()
		if err := raw.UnmarshalYAML(node); err != nil {
			return err
		}
		var convErr error
		raw.Each(func(name string, value any) {
			if convErr != nil {
				return
			}
			opts, err := kernel.OptionsFromValue(value)
			if err != nil {
				convErr = fmt.Errorf("%s: %w", name, err)
				return
			}
			s.entries.Set(name, opts)
		})
		return convErr

	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
	}
	return fmt.Errorf("line %d: expected a mapping or a list, got %s", node.Line, nodeKindName(node.Kind))
}

func (s Section) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	var encErr error
	s.entries.Each(func(name string, opts kernel.Options) {
		if encErr != nil {
			return
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(opts.Value()); err != nil {
			encErr = fmt.Errorf("%s: %w", name, err)
			return
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			valueNode,
		)
	})
	if encErr != nil {
		return nil, encErr
	}
	return node, nil
}

// ErrConfigNotFound is returned by Load when the file does not exist.
var ErrConfigNotFound = errors.New("configuration not found. Run 'symlint init' to set up")

// DefaultPath returns $SYMLINT_CONFIG, or .symlintrc.yml in the working directory.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultFileName
}

// Load reads and decodes a configuration file. JSON files are accepted too.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrConfigNotFound)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes configuration bytes.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return &f, nil
}

// Save writes the configuration file, creating parent directories.
func Save(path string, f *File) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
