package markdown

import (
	"strings"
	"testing"

	"github.com/DevSymphony/symlint/internal/kernel"
	"github.com/DevSymphony/symlint/internal/kernel/descriptor"
	"github.com/DevSymphony/symlint/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlugin_UsesLegacyExtensionsDeclaration(t *testing.T) {
	proc, err := Constructor{}.New(kernel.Enabled())
	require.NoError(t, err)

	_, isDeclarer := proc.(kernel.ExtensionsDeclarer)
	assert.False(t, isDeclarer, "processor must not declare extensions itself")

	d, err := descriptor.NewPluginDescriptor(kernel.PluginRecord{PluginID: Name, Plugin: Plugin})
	require.NoError(t, err)

	exts, err := d.AvailableExtensions()
	require.NoError(t, err)
	assert.Equal(t, []string{".md", ".markdown"}, exts)
}

func TestPlugin_ReceivesNormalizedOptions(t *testing.T) {
	d, err := descriptor.NewPluginDescriptor(kernel.PluginRecord{PluginID: Name, Plugin: Plugin})
	require.NoError(t, err)

	proc, ok := d.Processor().(*Processor)
	require.True(t, ok)
	assert.Equal(t, true, proc.Options().Value())
}

func TestProcessor_PreProcess(t *testing.T) {
	proc := &Processor{}
	src := "# Title\n\nFirst line\nsecond line\n\n```go\nfunc main() {}\n```\n\nLast"

	doc, err := proc.PreProcess(src, "README.md")
	require.NoError(t, err)

	var types []string
	for _, child := range doc.Children {
		types = append(types, child.Type)
	}
	assert.Equal(t, []string{"Header", "Paragraph", "CodeBlock", "Paragraph"}, types)

	assert.Len(t, doc.Children[1].Children, 2)
	assert.Equal(t, 4, doc.Children[1].Children[1].Line)
	assert.Equal(t, "func main() {}\n", doc.Children[2].Raw)
	assert.Equal(t, "Last", doc.Children[3].Children[0].Raw)
	assert.Equal(t, strings.Index(src, "second line"), doc.Children[1].Children[1].Offset)
	assert.Equal(t, len(src)-len("Last"), doc.Children[3].Children[0].Offset)
}

func TestProcessor_PostProcessSorts(t *testing.T) {
	proc := &Processor{}
	res, err := proc.PostProcess([]kernel.Message{
		{RuleID: "b", Line: 3},
		{RuleID: "a", Line: 1, Column: 5},
		{RuleID: "c", Line: 1, Column: 2},
	}, "README.md")
	require.NoError(t, err)

	assert.Equal(t, "README.md", res.FilePath)
	require.Len(t, res.Messages, 3)
	assert.Equal(t, "c", res.Messages[0].RuleID)
	assert.Equal(t, "a", res.Messages[1].RuleID)
	assert.Equal(t, "b", res.Messages[2].RuleID)
}

func TestRegistered(t *testing.T) {
	got, err := registry.Global().Plugin(Name)
	require.NoError(t, err)
	assert.Same(t, Plugin, got)
}
