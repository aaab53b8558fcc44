package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/DevSymphony/symlint/internal/bootstrap"
	"github.com/DevSymphony/symlint/internal/config"
	"github.com/DevSymphony/symlint/internal/inspect"
	"github.com/DevSymphony/symlint/internal/registry"
)

const sampleConfig = `plugins:
  text: true
  markdown: true
rules:
  max-length: { max: 80 }
  no-doubled-space: false
filters:
  allowlist: { allow: [TODO] }
`

// execute runs the root command with fresh flag state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	verbose, logLevel, logJSON, configPath = false, "info", false, ""
	describeJSON, describeExt, describeDisable = false, "", nil
	initForce, initYes = false, false
	filesInclude, filesExclude, filesRoot = nil, nil, "."
	filesRepo, filesChanged, filesJSON = false, false, false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("dev")

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "symlint version 1.2.3\n", out)
	assert.Equal(t, "1.2.3", GetVersion())
}

func TestMCPServer_ReportsBuildVersion(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("dev")
	mcpRoot = t.TempDir()
	defer func() { mcpRoot = "" }()

	ctx := context.Background()
	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := newMCPServer(ctx).SDKServer().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	info := session.InitializeResult().ServerInfo
	assert.Equal(t, "symlint", info.Name)
	assert.Equal(t, "1.2.3", info.Version)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "[Plugins] 2 available")
	assert.Contains(t, out, "     markdown\n     text\n")
	assert.Contains(t, out, "     max-length\n     no-doubled-space\n")
	assert.Contains(t, out, "[Filters] 1 available\n     allowlist\n")
}

func TestDescribe_Text(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	out, err := execute(t, "describe", "--config", path)
	require.NoError(t, err)

	want := "[Plugins] 2 configured\n" +
		"     text (enabled) .txt .text\n" +
		"     markdown (enabled) .md .markdown\n" +
		"[Rules] 2 configured\n" +
		"     max-length (enabled)\n" +
		"     no-doubled-space (disabled) fixable\n" +
		"[Filters] 1 configured\n" +
		"     allowlist (enabled)\n" +
		"[INFO] extensions: .txt, .text, .md, .markdown\n"
	assert.Equal(t, want, out)
}

func TestDescribe_MarksDefaultedModules(t *testing.T) {
	path := writeConfig(t, "plugins: [text]\nrules:\n  max-length: { max: 80 }\n")

	out, err := execute(t, "describe", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "     text (enabled) defaults .txt .text\n")
	assert.Contains(t, out, "     max-length (enabled)\n")
}

func TestDescribe_JSON(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	out, err := execute(t, "describe", "--config", path, "--json")
	require.NoError(t, err)

	var got inspect.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	require.Len(t, got.Rules, 2)
	assert.Equal(t, map[string]any{"max": float64(80)}, got.Rules[0].Options)
	assert.Equal(t, false, got.Rules[1].Options)
	require.NotNil(t, got.Rules[0].Fixable)
	assert.False(t, *got.Rules[0].Fixable)
	assert.Equal(t, map[string]any{"allow": []any{"TODO"}}, got.Filters[0].Options)
	assert.Equal(t, []string{".txt", ".text", ".md", ".markdown"}, got.Extensions)
}

func TestDescribe_Ext(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	out, err := execute(t, "describe", "--config", path, "--ext", "md")
	require.NoError(t, err)
	assert.Equal(t, "[OK] .md is handled by markdown\n", out)

	out, err = execute(t, "describe", "--config", path, "--ext", ".rst")
	require.NoError(t, err)
	assert.Equal(t, "[WARN] no enabled plugin handles .rst\n", out)
}

func TestDescribe_Disable(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	out, err := execute(t, "describe", "--config", path, "--json", "--disable", "markdown,max-length,unknown")
	require.NoError(t, err)

	var got inspect.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "markdown", got.Plugins[1].ID)
	assert.False(t, got.Plugins[1].Enabled)
	assert.False(t, got.Rules[0].Enabled)
	assert.Equal(t, []string{".txt", ".text"}, got.Extensions)
}

func TestDescribe_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "describe", "--config", filepath.Join(t.TempDir(), "none.yml"))
		assert.True(t, errors.Is(err, config.ErrConfigNotFound))
	})

	t.Run("unknown rule", func(t *testing.T) {
		path := writeConfig(t, "rules:\n  nope: true\n")
		_, err := execute(t, "describe", "--config", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to resolve rules: rule not found: nope")
	})

	t.Run("bad log level", func(t *testing.T) {
		_, err := execute(t, "list", "--log-level", "loud")
		assert.Error(t, err)
	})
}

func TestInit_Yes(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultFileName)

	out, err := execute(t, "init", "--config", path, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "[OK] "+path+" created")

	file, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, registry.Global().PluginNames(), file.Plugins.Names())
	assert.Equal(t, registry.Global().RuleNames(), file.Rules.Names())
	assert.Equal(t, registry.Global().FilterRuleNames(), file.Filters.Names())

	// Existing file without --force is kept.
	out, err = execute(t, "init", "--config", path, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")
}

func TestInit_Interactive(t *testing.T) {
	origSelect, origConfirm := selectModules, confirmOverwrite
	defer func() { selectModules, confirmOverwrite = origSelect, origConfirm }()

	var labels []string
	selectModules = func(label string, names []string) ([]string, error) {
		labels = append(labels, label)
		return names[:1], nil
	}
	confirmOverwrite = func(path string) (bool, error) { return false, nil }

	path := writeConfig(t, sampleConfig)

	out, err := execute(t, "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "[INFO] Skipped")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleConfig, string(data))

	confirmOverwrite = func(path string) (bool, error) { return true, nil }
	_, err = execute(t, "init", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, []string{"plugins", "rules", "filter rules"}, labels)

	file, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"markdown"}, file.Plugins.Names())
	assert.Equal(t, []string{"max-length"}, file.Rules.Names())
	assert.Equal(t, []string{"allowlist"}, file.Filters.Names())
}

func TestInit_SelectError(t *testing.T) {
	origSelect := selectModules
	defer func() { selectModules = origSelect }()
	selectModules = func(string, []string) ([]string, error) { return nil, errors.New("interrupt") }

	_, err := execute(t, "init", "--config", filepath.Join(t.TempDir(), "x.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to select plugins: interrupt")
}

func TestFiles(t *testing.T) {
	path := writeConfig(t, "plugins:\n  text: true\n  markdown: false\n")
	root := t.TempDir()
	for name, content := range map[string]string{
		"a.txt":      "a",
		"b.md":       "b",
		"sub/c.txt":  "c",
		"skip/d.txt": "d",
	} {
		full := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}

	out, err := execute(t, "files", "--config", path, "--root", root, "--exclude", "skip/**")
	require.NoError(t, err)
	assert.Equal(t, "a.txt\ttext\nsub/c.txt\ttext\n", out)

	out, err = execute(t, "files", "--config", path, "--root", root, "--include", "*.md", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestFiles_ChangedRequiresRepo(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	_, err := execute(t, "files", "--config", path, "--changed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--changed requires --repo")
}
