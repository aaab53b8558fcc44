package maxlength

import (
	"github.com/DevSymphony/symlint/internal/registry"
)

func init() {
	_ = registry.Global().RegisterRule(Name, Rule)
}
