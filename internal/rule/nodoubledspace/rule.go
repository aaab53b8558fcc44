// Package nodoubledspace reports runs of two or more spaces inside a line.
package nodoubledspace

import (
	"regexp"
	"unicode/utf8"

	"github.com/DevSymphony/symlint/internal/kernel"
)

const (
	Name = "no-doubled-space"

	message = "Found doubled space"
)

// Rule is fixable: the fixer replaces each run with a single space.
var Rule = &kernel.Rule{Linter: lint, Fixer: fix}

// leading indentation is allowed
var doubledSpace = regexp.MustCompile(`(\S)( {2,})`)

func lint(ctx kernel.RuleContext, options kernel.Options) kernel.Handlers {
	return handlers(func(spaces *kernel.Node) {
		ctx.Report(spaces, message)
	})
}

func fix(ctx kernel.RuleContext, options kernel.Options) kernel.Handlers {
	return handlers(func(spaces *kernel.Node) {
		ctx.ReportFix(spaces, message, kernel.FixCommand{
			Range: [2]int{spaces.Offset, spaces.Offset + len(spaces.Raw)},
			Text:  " ",
		})
	})
}

// handlers calls report with a node covering each run of spaces.
func handlers(report func(spaces *kernel.Node)) kernel.Handlers {
	return kernel.Handlers{
		"Str": func(node *kernel.Node) {
			for _, loc := range doubledSpace.FindAllStringSubmatchIndex(node.Raw, -1) {
				report(&kernel.Node{
					Type:   node.Type,
					Raw:    node.Raw[loc[4]:loc[5]],
					Line:   node.Line,
					Column: node.Column + utf8.RuneCountInString(node.Raw[:loc[4]]),
					Offset: node.Offset + loc[4],
				})
			}
		},
	}
}
