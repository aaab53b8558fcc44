// Package maxlength reports lines longer than a configured maximum.
package maxlength

import (
	"fmt"
	"unicode/utf8"

	"github.com/DevSymphony/symlint/internal/kernel"
)

const (
	Name = "max-length"

	// DefaultMax is used when the "max" option is not set.
	DefaultMax = 100
)

// Rule is the max-length rule module.
var Rule = &kernel.Rule{Linter: report}

func report(ctx kernel.RuleContext, options kernel.Options) kernel.Handlers {
	limit := options.GetInt("max", DefaultMax)
	return kernel.Handlers{
		"Str": func(node *kernel.Node) {
			if n := utf8.RuneCountInString(node.Raw); n > limit {
				ctx.Report(node, fmt.Sprintf("Line is %d characters long (max %d)", n, limit))
			}
		},
	}
}
