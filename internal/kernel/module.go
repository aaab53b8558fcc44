package kernel

// Node is a node of the document tree produced by a processor.
// Line and Column are 1-based and count runes; Offset is the byte offset of
// Raw in the source text.
type Node struct {
	Type     string
	Raw      string
	Line     int
	Column   int
	Offset   int
	Children []*Node
}

// Walk visits n and its descendants depth-first.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// FixCommand replaces the source bytes in [Range[0], Range[1]) with Text.
type FixCommand struct {
	Range [2]int
	Text  string
}

// Message is a single report produced by a rule.
type Message struct {
	RuleID   string
	Message  string
	Line     int
	Column   int
	Severity string // "error", "warning", "info"
	Fix      *FixCommand
}

// Result is what a processor hands back after post-processing a file.
type Result struct {
	FilePath string
	Messages []Message
}

// Handlers maps node types to callbacks for one lint run.
type Handlers map[string]func(node *Node)

// RuleContext is given to a rule's reporter by the kernel.
type RuleContext interface {
	RuleID() string
	FilePath() string
	Report(node *Node, message string)
	// ReportFix reports a problem together with its fix. Only fixers call it.
	ReportFix(node *Node, message string, fix FixCommand)
}

// FilterContext is given to a filter rule's reporter by the kernel.
type FilterContext interface {
	FilePath() string
	ShouldIgnore(node *Node, ruleID string)
}

// Reporter creates the handlers of a rule for one run.
type Reporter func(ctx RuleContext, options Options) Handlers

// FilterReporter creates the handlers of a filter rule for one run.
type FilterReporter func(ctx FilterContext, options Options) Handlers

// Rule is a rule module. Fixer is optional; a fixer reports through
// RuleContext.ReportFix.
type Rule struct {
	Linter Reporter
	Fixer  Reporter
}

// FilterRule is a filter rule module.
type FilterRule struct {
	Filter FilterReporter
}

// Processor converts a source file into a Node tree and turns the kernel's
// messages back into a result.
type Processor interface {
	PreProcess(text string, filePath string) (*Node, error)
	PostProcess(messages []Message, filePath string) (*Result, error)
}

// ProcessorConstructor builds a processor for a plugin.
type ProcessorConstructor interface {
	New(options Options) (Processor, error)
}

// ExtensionsDeclarer lists the file extensions a processor handles.
//
// Current plugins implement it on the processor instance. Older plugins
// implement it on their ProcessorConstructor instead; both are honoured.
type ExtensionsDeclarer interface {
	AvailableExtensions() []string
}

// Plugin is a plugin module.
type Plugin struct {
	Processor ProcessorConstructor
}

// ProcessorFunc adapts a function to ProcessorConstructor.
type ProcessorFunc func(options Options) (Processor, error)

func (f ProcessorFunc) New(options Options) (Processor, error) {
	return f(options)
}
