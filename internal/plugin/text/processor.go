// Package text is the plain text plugin.
package text

import (
	"sort"
	"strings"

	"github.com/DevSymphony/symlint/internal/kernel"
)

// Name is the plugin name used in configuration files.
const Name = "text"

var defaultExtensions = []string{".txt", ".text"}

// Plugin is the plain text plugin module.
var Plugin = &kernel.Plugin{Processor: kernel.ProcessorFunc(New)}

// Processor splits plain text into paragraphs of lines.
type Processor struct {
	extensions []string
}

// New creates a processor. The "extensions" option adds file extensions on
// top of .txt and .text.
func New(options kernel.Options) (kernel.Processor, error) {
	exts := append([]string{}, defaultExtensions...)
	for _, ext := range options.GetStrings("extensions") {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return &Processor{extensions: exts}, nil
}

// AvailableExtensions lists the extensions this processor handles.
func (p *Processor) AvailableExtensions() []string {
	return p.extensions
}

// PreProcess builds a Document of Paragraphs. Blank lines end a paragraph
// and each line becomes a Str node.
func (p *Processor) PreProcess(text string, filePath string) (*kernel.Node, error) {
	doc := &kernel.Node{Type: "Document", Raw: text, Line: 1, Column: 1}

	var para *kernel.Node
	offset := 0
	for i, line := range strings.Split(text, "\n") {
		start := offset
		offset += len(line) + 1
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			para = nil
			continue
		}
		if para == nil {
			para = &kernel.Node{Type: "Paragraph", Line: i + 1, Column: 1, Offset: start}
			doc.Children = append(doc.Children, para)
		}
		para.Children = append(para.Children, &kernel.Node{Type: "Str", Raw: line, Line: i + 1, Column: 1, Offset: start})
	}
	return doc, nil
}

// PostProcess sorts messages by position.
func (p *Processor) PostProcess(messages []kernel.Message, filePath string) (*kernel.Result, error) {
	return &kernel.Result{FilePath: filePath, Messages: SortMessages(messages)}, nil
}

// SortMessages returns a copy of messages ordered by line, then column.
func SortMessages(messages []kernel.Message) []kernel.Message {
	sorted := make([]kernel.Message, len(messages))
	copy(sorted, messages)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Line != sorted[j].Line {
			return sorted[i].Line < sorted[j].Line
		}
		return sorted[i].Column < sorted[j].Column
	})
	return sorted
}
