package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe_GoldenText(t *testing.T) {
	path := writeDefinition(t, testDefinition)

	out, err := runCommand(t, "describe", path)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "describe_receive", []byte(out))
}

func TestDescribe_JSON(t *testing.T) {
	path := writeDefinition(t, testDefinition)

	out, err := runCommand(t, "--format", "json", "describe", path)
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var desc PipelineDescription
	require.NoError(t, json.Unmarshal(raw, &desc))

	assert.Equal(t, "order-intake", desc.Name)
	assert.Equal(t, "receive", desc.Direction)
	require.Len(t, desc.Stages, 2)
	assert.Equal(t, "Decode", desc.Stages[0].Name)
	assert.Equal(t, 0, desc.Stages[0].Components)

	require.Len(t, desc.DocSpecs, 3)
	assert.Equal(t, "contoso.schemas.Order", desc.DocSpecs[0].TypeName)
	assert.Equal(t, []string{"urn:x#Order"}, desc.DocSpecs[0].RootNames)
	assert.Equal(t, []string{"RootB"}, desc.DocSpecs[2].RootNames)
}

func TestDescribe_InvalidContent(t *testing.T) {
	path := writeDefinition(t, "name: p\n")

	out, err := runCommand(t, "describe", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "definition invalid")
}

func TestDescribe_MissingFile(t *testing.T) {
	_, err := runCommand(t, "describe", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestDescribe_EmptyLayout(t *testing.T) {
	path := writeDefinition(t, "name: bare\ndirection: send\n")

	out, err := runCommand(t, "describe", path)
	require.NoError(t, err)
	assert.Equal(t, "pipeline: bare\ndirection: send\nstages:\n  (none)\ndoc specs:\n  (none)\n", out)
}
