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

const testDefinition = `
name: order-intake
direction: receive
stages:
  - id: 9d0e4103-4cce-4536-83fa-4a5040674ad6
    name: Decode
    execution_order: 1
  - id: 9d0e410d-4cce-4536-83fa-4a5040674ad6
    name: Validate
    execution_order: 3
doc_specs:
  - name: Order
    qualifier: contoso.schemas
    target_namespace: urn:x
    root_element: Order
  - name: Batch
    qualifier: contoso.schemas
    nested:
      - name: RootA
        qualifier: contoso.schemas
        target_namespace: urn:a
        root_element: RootA
      - name: RootB
        qualifier: contoso.schemas
        root_element: RootB
`

// writeDefinition writes a definition file into a temp dir and returns
// its path.
func writeDefinition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// runCommand executes the root command with the given args and returns
// stdout and the execution error.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidate_OK(t *testing.T) {
	path := writeDefinition(t, testDefinition)

	out, err := runCommand(t, "validate", path)
	require.NoError(t, err)
	assert.Equal(t, "definition ok: order-intake (2 stages, 2 doc specs)\n", out)
}

func TestValidate_InvalidContent(t *testing.T) {
	path := writeDefinition(t, "name: p\ndirection: sideways\n")

	out, err := runCommand(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "definition invalid")
	assert.Contains(t, out, "invalid direction")
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := runCommand(t, "validate", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestValidate_JSON(t *testing.T) {
	path := writeDefinition(t, testDefinition)

	out, err := runCommand(t, "--format", "json", "validate", path)
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["valid"])
	assert.Equal(t, "order-intake", data["name"])
	assert.Equal(t, float64(2), data["stages"])
}

func TestValidate_JSONError(t *testing.T) {
	path := writeDefinition(t, "direction: receive\n")

	out, err := runCommand(t, "--format", "json", "validate", path)
	require.Error(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E_DEFINITION", resp.Error.Code)
}

func TestRootCommand_RejectsBadFormat(t *testing.T) {
	path := writeDefinition(t, testDefinition)

	_, err := runCommand(t, "--format", "xml", "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
