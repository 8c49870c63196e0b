package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNormalize_StdinDefaultDepth(t *testing.T) {
	out, _, err := execute(t, `{"a":{"b":{"c":{"d":1}}}}`, "normalize")
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"b":{"c":"[Object]"}}}`+"\n", out)
}

func TestNormalize_DepthFlag(t *testing.T) {
	out, _, err := execute(t, `{"a":{"b":[1,2]}}`, "normalize", "--depth", "1", "-")
	require.NoError(t, err)
	assert.Equal(t, `{"a":"[Object]"}`+"\n", out)
}

func TestNormalize_MaxSizeReducesDepth(t *testing.T) {
	in := `{"a":{"b":"` + strings.Repeat("x", 100) + `"}}`
	out, _, err := execute(t, in, "normalize", "--max-size", "20")
	require.NoError(t, err)
	assert.Equal(t, `{"a":"[Object]"}`+"\n", out)
}

func TestNormalize_YAMLFileByExtension(t *testing.T) {
	path := writeFile(t, "doc.yml", "a: 1\nb: [x, y]\n")
	out, _, err := execute(t, "", "normalize", path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":["x","y"]}`+"\n", out)
}

func TestNormalize_YAMLOutput(t *testing.T) {
	out, _, err := execute(t, `{"a":1}`, "normalize", "--output", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", out)
}

func TestNormalize_DumpOutput(t *testing.T) {
	out, _, err := execute(t, `{"name":"x"}`, "normalize", "--output", "dump")
	require.NoError(t, err)
	assert.Contains(t, out, `"name"`)
	assert.Contains(t, out, "map[string]interface {}")
}

func TestNormalize_ConfigFileAndEnv(t *testing.T) {
	cfg := writeFile(t, "safenorm.yaml", "normalize:\n  depth: 1\noutput:\n  indent: true\n")
	t.Setenv("SAFENORM_NORMALIZE_DEPTH", "2")

	out, _, err := execute(t, `{"a":{"b":{"c":1}}}`, "normalize", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": {\n    \"b\": \"[Object]\"\n  }\n}\n", out)
}

func TestNormalize_DebugLogsGoToStderr(t *testing.T) {
	_, errOut, err := execute(t, `{"a":1}`, "normalize", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "normalized document")
}

func TestNormalize_Errors(t *testing.T) {
	_, _, err := execute(t, `{not json`, "normalize")
	assert.ErrorContains(t, err, "failed to decode JSON input")

	_, _, err = execute(t, `{}`, "normalize", "--output", "xml")
	assert.ErrorContains(t, err, "output.encode")

	_, _, err = execute(t, "", "normalize", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to open input")
}

func TestKeys(t *testing.T) {
	out, _, err := execute(t, `{"foo":1,"bar":2,"baz":3}`, "keys")
	require.NoError(t, err)
	assert.Equal(t, "bar, baz, foo\n", out)

	out, _, err = execute(t, `{"foo":1,"bar":2,"baz":3}`, "keys", "--max-length", "8")
	require.NoError(t, err)
	assert.Equal(t, "bar, baz\n", out)

	out, _, err = execute(t, `[]`, "keys")
	require.NoError(t, err)
	assert.Equal(t, "[object has no keys]\n", out)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "safenorm dev (json driver: go-json)\n", out)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, "yaml", detectFormat("a.YAML", "auto"))
	assert.Equal(t, "json", detectFormat("-", "auto"))
	assert.Equal(t, "yaml", detectFormat("-", "yaml"))
	assert.Equal(t, "json", detectFormat("a.yml", "json"))
}
