package bootstrap

import (
	// Import built-in modules for registration side-effects.
	// Each module's register.go file contains an init() function
	// that registers it with the global registry.
	_ "github.com/DevSymphony/symlint/internal/filter/allowlist"
	_ "github.com/DevSymphony/symlint/internal/plugin/markdown"
	_ "github.com/DevSymphony/symlint/internal/plugin/text"
	_ "github.com/DevSymphony/symlint/internal/rule/maxlength"
	_ "github.com/DevSymphony/symlint/internal/rule/nodoubledspace"
)

// This package only imports module packages for their init() side-effects.
// Import this package from main.go to ensure all built-ins are registered.
