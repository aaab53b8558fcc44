// Package allowlist ignores reports on lines containing allowed words.
package allowlist

import (
	"strings"

	"github.com/DevSymphony/symlint/internal/kernel"
)

const Name = "allowlist"

// AllRules makes ShouldIgnore apply to every rule.
const AllRules = "*"

// FilterRule is the allowlist filter rule module.
var FilterRule = &kernel.FilterRule{Filter: filter}

func filter(ctx kernel.FilterContext, options kernel.Options) kernel.Handlers {
	allow := options.GetStrings("allow")
	if len(allow) == 0 {
		return kernel.Handlers{}
	}
	return kernel.Handlers{
		"Str": func(node *kernel.Node) {
			for _, word := range allow {
				if strings.Contains(node.Raw, word) {
					ctx.ShouldIgnore(node, AllRules)
					return
				}
			}
		},
	}
}
