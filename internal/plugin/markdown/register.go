package markdown

import (
	"github.com/DevSymphony/symlint/internal/registry"
)

func init() {
	_ = registry.Global().RegisterPlugin(Name, Plugin)
}
