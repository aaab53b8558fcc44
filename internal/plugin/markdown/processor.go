// Package markdown is the Markdown plugin.
//
// It is written against the older plugin API: the file extensions are
// declared on the constructor, not on the processor.
package markdown

import (
	"strings"

	"github.com/DevSymphony/symlint/internal/kernel"
	"github.com/DevSymphony/symlint/internal/plugin/text"
)

const Name = "markdown"

// Plugin is the Markdown plugin module.
var Plugin = &kernel.Plugin{Processor: Constructor{}}

// Constructor builds Markdown processors.
type Constructor struct{}

func (Constructor) New(options kernel.Options) (kernel.Processor, error) {
	return &Processor{options: options}, nil
}

func (Constructor) AvailableExtensions() []string {
	return []string{".md", ".markdown"}
}

// Processor turns Markdown into Header, CodeBlock and Paragraph nodes.
// Only paragraph lines carry Str children, so rules skip code and headings.
type Processor struct {
	options kernel.Options
}

// Options returns the options the processor was built with.
func (p *Processor) Options() kernel.Options {
	return p.options
}

func (p *Processor) PreProcess(source string, filePath string) (*kernel.Node, error) {
	doc := &kernel.Node{Type: "Document", Raw: source, Line: 1, Column: 1}

	var (
		para  *kernel.Node
		fence *kernel.Node
	)
	offset := 0
	for i, line := range strings.Split(source, "\n") {
		start := offset
		offset += len(line) + 1
		line = strings.TrimSuffix(line, "\r")
		lineNo := i + 1
		trimmed := strings.TrimSpace(line)

		switch {
		case fence != nil:
			if strings.HasPrefix(trimmed, "```") {
				fence = nil
				continue
			}
			fence.Raw += line + "\n"

		case strings.HasPrefix(trimmed, "```"):
			para = nil
			fence = &kernel.Node{Type: "CodeBlock", Line: lineNo, Column: 1, Offset: offset}
			doc.Children = append(doc.Children, fence)

		case strings.HasPrefix(trimmed, "#"):
			para = nil
			doc.Children = append(doc.Children, &kernel.Node{Type: "Header", Raw: line, Line: lineNo, Column: 1, Offset: start})

		case trimmed == "":
			para = nil

		default:
			if para == nil {
				para = &kernel.Node{Type: "Paragraph", Line: lineNo, Column: 1, Offset: start}
				doc.Children = append(doc.Children, para)
			}
			para.Children = append(para.Children, &kernel.Node{Type: "Str", Raw: line, Line: lineNo, Column: 1, Offset: start})
		}
	}
	return doc, nil
}

func (p *Processor) PostProcess(messages []kernel.Message, filePath string) (*kernel.Result, error) {
	return &kernel.Result{FilePath: filePath, Messages: text.SortMessages(messages)}, nil
}
