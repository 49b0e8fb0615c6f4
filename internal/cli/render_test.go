package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDocument(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const personDoc = `
table: Person
select: [id, age, name]
filter:
  - column: name
    value: Bill
order_by:
  - column: name
`

func TestRenderText(t *testing.T) {
	path := writeDocument(t, "person.yaml", personDoc)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, age, name FROM Person WHERE name = 'Bill' ORDER BY name;\n",
		buf.String())
}

func TestRenderJSON(t *testing.T) {
	path := writeDocument(t, "person.yaml", personDoc)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
	entry, ok := data[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, path, entry["file"])
	assert.Equal(t,
		"SELECT id, age, name FROM Person WHERE name = 'Bill' ORDER BY name;",
		entry["sql"])
}

func TestRenderMultipleDocuments(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.yaml")
	second := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(first, []byte("table: A\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("table: B\nselect: [x]\n"), 0o644))

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{first, second})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Equal(t, "SELECT * FROM A;\nSELECT x FROM B;\n", buf.String())
}

func TestRenderMissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), ErrCodeNotFound)
}

func TestRenderInvalidDocument(t *testing.T) {
	path := writeDocument(t, "bad.yaml", "select: [id]\n")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), ErrCodeInvalidDocument)
}
