package registry

import (
	"errors"
	"testing"

	"github.com/DevSymphony/symlint/internal/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := New()

	rule := &kernel.Rule{}
	filter := &kernel.FilterRule{}
	plugin := &kernel.Plugin{}

	require.NoError(t, r.RegisterRule("max-length", rule))
	require.NoError(t, r.RegisterFilterRule("allowlist", filter))
	require.NoError(t, r.RegisterPlugin("text", plugin))

	gotRule, err := r.Rule("max-length")
	require.NoError(t, err)
	assert.Same(t, rule, gotRule)

	gotFilter, err := r.FilterRule("allowlist")
	require.NoError(t, err)
	assert.Same(t, filter, gotFilter)

	gotPlugin, err := r.Plugin("text")
	require.NoError(t, err)
	assert.Same(t, plugin, gotPlugin)
}

func TestRegistry_RegisterDuplicateKeepsFirst(t *testing.T) {
	r := New()
	first := &kernel.Plugin{}
	second := &kernel.Plugin{}

	require.NoError(t, r.RegisterPlugin("text", first))
	require.NoError(t, r.RegisterPlugin("text", second))

	got, err := r.Plugin("text")
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestRegistry_RegisterNil(t *testing.T) {
	r := New()
	assert.True(t, errors.Is(r.RegisterRule("x", nil), errNilModule))
	assert.True(t, errors.Is(r.RegisterFilterRule("x", nil), errNilModule))
	assert.True(t, errors.Is(r.RegisterPlugin("x", nil), errNilModule))
}

func TestRegistry_NotFound(t *testing.T) {
	r := New()

	_, err := r.Plugin("asciidoc")
	require.Error(t, err)
	assert.Equal(t, "plugin not found: asciidoc", err.Error())

	var notFound *errModuleNotFound
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, kernel.CategoryPlugin, notFound.Category)

	_, err = r.Rule("missing")
	assert.Error(t, err)
	_, err = r.FilterRule("missing")
	assert.Error(t, err)
}

func TestRegistry_Names(t *testing.T) {
	r := New()
	for _, name := range []string{"text", "markdown", "html"} {
		require.NoError(t, r.RegisterPlugin(name, &kernel.Plugin{}))
	}
	require.NoError(t, r.RegisterRule("b", &kernel.Rule{}))
	require.NoError(t, r.RegisterRule("a", &kernel.Rule{}))

	assert.Equal(t, []string{"html", "markdown", "text"}, r.PluginNames())
	assert.Equal(t, []string{"a", "b"}, r.RuleNames())
	assert.Empty(t, r.FilterRuleNames())
}

func TestGlobal_IsSingleton(t *testing.T) {
	assert.Same(t, Global(), Global())
}
