package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertJSONToYAML(t *testing.T) {
	got, err := convertData(`{"name": "demo", "tags": ["a", "b"]}`, "json", "yaml")
	require.NoError(t, err)
	assert.Contains(t, got, "name: demo")
	assert.Contains(t, got, "- a")
}

func TestConvertYAMLToJSON(t *testing.T) {
	got, err := convertData("name: demo\nnested:\n  key: value\n", "yaml", "json")
	require.NoError(t, err)
	assert.Contains(t, got, `"name": "demo"`)
	assert.Contains(t, got, `"key": "value"`)
}

func TestConvertScalarToTOMLFails(t *testing.T) {
	_, err := convertData(`"just a string"`, "json", "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top-level table")
}

func TestConvertUnknownFormat(t *testing.T) {
	_, err := convertData(`{}`, "xml", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestConvertCommandReadsStdin(t *testing.T) {
	out, err := runCommand(t, `{"name": "demo"}`, "convert", "--from", "json", "--to", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: demo")
}

func TestValidateCommand(t *testing.T) {
	out, err := runCommand(t, `{"ok": true}`, "validate", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "valid json")

	_, err = runCommand(t, `{not json`, "validate", "--format", "json")
	require.Error(t, err)
}

func TestFormatCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"b":2,"a":1}`), 0o644))

	out, err := runCommand(t, "", "format", path, "--sort-keys")
	require.NoError(t, err)
	assert.Contains(t, out, "{\n  \"a\": 1,\n  \"b\": 2\n}")

	_, err = runCommand(t, "", "format", path, "--sort-keys", "--in-place")
	require.NoError(t, err)
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": 2\n}", string(written))
}

func TestFormatDetectsYAMLExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("name:   demo\n"), 0o644))

	out, err := runCommand(t, "", "format", path)
	require.NoError(t, err)
	assert.Contains(t, out, "name: demo")
}

func TestDocsIndexCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "lists")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "lists.go"), []byte(`package lists

// Flatten collapses nested lists into a single level.
func Flatten(v any) []any { return nil }
`), 0o644))

	out, err := runCommand(t, "", "docs", "index", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Flatten")
	assert.Contains(t, out, "List Operations")
}

func TestLoadConfigDefaultsAndEnv(t *testing.T) {
	cfg, err := loadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.DocsDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.SearchLimit)

	t.Setenv("EDT_LOG_LEVEL", "debug")
	cfg, err = loadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("docs_dir: ./pkg\nsearch_limit: 25\n"), 0o644))

	cfg, err := loadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "./pkg", cfg.DocsDir)
	assert.Equal(t, 25, cfg.SearchLimit)
}
