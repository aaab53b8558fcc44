// Package kerneltest provides recording contexts for testing rule and
// filter rule modules without a kernel.
package kerneltest

import (
	"sort"
	"strings"

	"github.com/DevSymphony/symlint/internal/kernel"
)

// Report is one call to RuleContext.Report or RuleContext.ReportFix.
type Report struct {
	Node    *kernel.Node
	Message string
	Fix     *kernel.FixCommand
}

// RuleContext records reports.
type RuleContext struct {
	ID      string
	Path    string
	Reports []Report
}

func (c *RuleContext) RuleID() string   { return c.ID }
func (c *RuleContext) FilePath() string { return c.Path }

func (c *RuleContext) Report(node *kernel.Node, message string) {
	c.Reports = append(c.Reports, Report{Node: node, Message: message})
}

func (c *RuleContext) ReportFix(node *kernel.Node, message string, fix kernel.FixCommand) {
	c.Reports = append(c.Reports, Report{Node: node, Message: message, Fix: &fix})
}

// Messages returns the reported messages in order.
func (c *RuleContext) Messages() []string {
	out := make([]string, 0, len(c.Reports))
	for _, r := range c.Reports {
		out = append(out, r.Message)
	}
	return out
}

// ApplyFixes applies the recorded fixes to source. Fixes overlapping an
// earlier one are skipped.
func (c *RuleContext) ApplyFixes(source string) string {
	var fixes []kernel.FixCommand
	for _, r := range c.Reports {
		if r.Fix != nil {
			fixes = append(fixes, *r.Fix)
		}
	}
	sort.SliceStable(fixes, func(i, j int) bool { return fixes[i].Range[0] < fixes[j].Range[0] })

	var b strings.Builder
	pos := 0
	for _, f := range fixes {
		if f.Range[0] < pos || f.Range[1] > len(source) {
			continue
		}
		b.WriteString(source[pos:f.Range[0]])
		b.WriteString(f.Text)
		pos = f.Range[1]
	}
	b.WriteString(source[pos:])
	return b.String()
}

// Ignore is one call to FilterContext.ShouldIgnore.
type Ignore struct {
	Node   *kernel.Node
	RuleID string
}

// FilterContext records ignores.
type FilterContext struct {
	Path    string
	Ignores []Ignore
}

func (c *FilterContext) FilePath() string { return c.Path }

func (c *FilterContext) ShouldIgnore(node *kernel.Node, ruleID string) {
	c.Ignores = append(c.Ignores, Ignore{Node: node, RuleID: ruleID})
}

// Walk dispatches every node under root to the matching handler.
func Walk(root *kernel.Node, handlers kernel.Handlers) {
	root.Walk(func(n *kernel.Node) {
		if h, ok := handlers[n.Type]; ok {
			h(n)
		}
	})
}

// Doc builds a Document with one Paragraph per line, as if the lines were
// joined with "\n".
func Doc(lines ...string) *kernel.Node {
	doc := &kernel.Node{Type: "Document", Raw: strings.Join(lines, "\n"), Line: 1, Column: 1}
	offset := 0
	for i, line := range lines {
		doc.Children = append(doc.Children, &kernel.Node{
			Type:   "Paragraph",
			Line:   i + 1,
			Column: 1,
			Offset: offset,
			Children: []*kernel.Node{
				{Type: "Str", Raw: line, Line: i + 1, Column: 1, Offset: offset},
			},
		})
		offset += len(line) + 1
	}
	return doc
}
