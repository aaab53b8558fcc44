package allowlist

import (
	"github.com/DevSymphony/symlint/internal/registry"
)

func init() {
	_ = registry.Global().RegisterFilterRule(Name, FilterRule)
}
