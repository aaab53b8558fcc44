package text

import (
	"testing"

	"github.com/DevSymphony/symlint/internal/kernel"
	"github.com/DevSymphony/symlint/internal/kernel/descriptor"
	"github.com/DevSymphony/symlint/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Extensions(t *testing.T) {
	tests := []struct {
		name    string
		options kernel.Options
		want    []string
	}{
		{"defaults", kernel.Enabled(), []string{".txt", ".text"}},
		{
			"extra extensions",
			kernel.EnabledWith(map[string]any{"extensions": []any{".log", "me"}}),
			[]string{".txt", ".text", ".log", ".me"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc, err := New(tt.options)
			require.NoError(t, err)

			declarer, ok := proc.(kernel.ExtensionsDeclarer)
			require.True(t, ok)
			assert.Equal(t, tt.want, declarer.AvailableExtensions())
		})
	}
}

func TestNew_DoesNotShareDefaults(t *testing.T) {
	a, _ := New(kernel.EnabledWith(map[string]any{"extensions": []any{".a"}}))
	b, _ := New(kernel.Enabled())

	assert.Equal(t, []string{".txt", ".text", ".a"}, a.(*Processor).AvailableExtensions())
	assert.Equal(t, []string{".txt", ".text"}, b.(*Processor).AvailableExtensions())
}

func TestPlugin_ThroughDescriptor(t *testing.T) {
	d, err := descriptor.NewPluginDescriptor(kernel.PluginRecord{
		PluginID: Name,
		Plugin:   Plugin,
		Options:  kernel.EnabledWith(map[string]any{"extensions": []any{".log"}}),
	})
	require.NoError(t, err)

	exts, err := d.AvailableExtensions()
	require.NoError(t, err)
	assert.Equal(t, []string{".txt", ".text", ".log"}, exts)
}

func TestProcessor_PreProcess(t *testing.T) {
	proc := &Processor{}
	doc, err := proc.PreProcess("one\ntwo\r\n\n\nthree", "a.txt")
	require.NoError(t, err)

	assert.Equal(t, "Document", doc.Type)
	require.Len(t, doc.Children, 2)

	first := doc.Children[0]
	assert.Equal(t, "Paragraph", first.Type)
	require.Len(t, first.Children, 2)
	assert.Equal(t, "two", first.Children[1].Raw)
	assert.Equal(t, 2, first.Children[1].Line)
	assert.Equal(t, 4, first.Children[1].Offset)

	second := doc.Children[1]
	assert.Equal(t, 5, second.Line)
	assert.Equal(t, "three", second.Children[0].Raw)
	assert.Equal(t, 11, second.Children[0].Offset)
}

func TestSortMessages_DoesNotMutateInput(t *testing.T) {
	in := []kernel.Message{{Line: 2}, {Line: 1}}
	out := SortMessages(in)

	assert.Equal(t, 1, out[0].Line)
	assert.Equal(t, 2, in[0].Line)
}

func TestRegistered(t *testing.T) {
	got, err := registry.Global().Plugin(Name)
	require.NoError(t, err)
	assert.Same(t, Plugin, got)
}
