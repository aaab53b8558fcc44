package nodoubledspace

import (
	"testing"

	"github.com/DevSymphony/symlint/internal/kernel"
	"github.com/DevSymphony/symlint/internal/kernel/kerneltest"
	"github.com/DevSymphony/symlint/internal/plugin/text"
	"github.com/DevSymphony/symlint/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule_Reports(t *testing.T) {
	ctx := &kerneltest.RuleContext{ID: Name}
	kerneltest.Walk(kerneltest.Doc("a  b   c", "    indented ok"), Rule.Linter(ctx, kernel.Enabled()))

	require.Len(t, ctx.Reports, 2)
	assert.Equal(t, "  ", ctx.Reports[0].Node.Raw)
	assert.Equal(t, 2, ctx.Reports[0].Node.Column)
	assert.Equal(t, "   ", ctx.Reports[1].Node.Raw)
	assert.Equal(t, 5, ctx.Reports[1].Node.Column)
	assert.Equal(t, "Found doubled space", ctx.Reports[0].Message)
	assert.Nil(t, ctx.Reports[0].Fix)
}

func TestRule_ColumnCountsRunes(t *testing.T) {
	ctx := &kerneltest.RuleContext{ID: Name}
	kerneltest.Walk(kerneltest.Doc("é  x", "日本語  です"), Rule.Linter(ctx, kernel.Enabled()))

	require.Len(t, ctx.Reports, 2)
	assert.Equal(t, 2, ctx.Reports[0].Node.Column)
	assert.Equal(t, 4, ctx.Reports[1].Node.Column)
}

func TestRule_Fixer(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"single run", "a  b", "a b"},
		{"leading indentation kept", "  lead  trail", "  lead trail"},
		{"multibyte", "é   x", "é x"},
		{"across lines", "one  two\n\nthree   four\r\nfive", "one two\n\nthree four\r\nfive"},
		{"clean", "clean", "clean"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := (&text.Processor{}).PreProcess(tt.in, "a.txt")
			require.NoError(t, err)

			ctx := &kerneltest.RuleContext{ID: Name}
			kerneltest.Walk(doc, Rule.Fixer(ctx, kernel.Enabled()))

			for _, r := range ctx.Reports {
				require.NotNil(t, r.Fix)
			}
			assert.Equal(t, tt.want, ctx.ApplyFixes(tt.in))
		})
	}
}

func TestRegistered(t *testing.T) {
	got, err := registry.Global().Rule(Name)
	require.NoError(t, err)
	assert.Same(t, Rule, got)
}
