package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "send", Send.String())
	assert.Equal(t, "receive", Receive.String())
}

func TestParseDirection(t *testing.T) {
	dir, err := ParseDirection("receive")
	require.NoError(t, err)
	assert.Equal(t, Receive, dir)

	dir, err = ParseDirection("send")
	require.NoError(t, err)
	assert.Equal(t, Send, dir)

	_, err = ParseDirection("sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid direction")
}

func TestPipeline_AppendStage(t *testing.T) {
	p := New("test", Receive)
	st := NewStage(StageDecode, p)

	require.NoError(t, p.AppendStage(st))
	assert.Equal(t, 1, p.StageCount())

	found, ok := p.StageByID(StageDecode.ID)
	require.True(t, ok)
	assert.Same(t, st, found)
}

func TestPipeline_AppendStage_DuplicateID(t *testing.T) {
	p := New("test", Receive)
	require.NoError(t, p.AppendStage(NewStage(StageDecode, p)))

	err := p.AppendStage(NewStage(StageDecode, p))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate stage id")
	assert.Equal(t, 1, p.StageCount())
}

func TestPipeline_AppendStage_Nil(t *testing.T) {
	p := New("test", Send)
	require.Error(t, p.AppendStage(nil))
}

func TestPipeline_StageByID_Missing(t *testing.T) {
	p := New("test", Send)
	_, ok := p.StageByID("nope")
	assert.False(t, ok)
}

func TestPipeline_Stages_ReturnsCopy(t *testing.T) {
	p := New("test", Receive)
	require.NoError(t, p.AppendStage(NewStage(StageDecode, p)))

	stages := p.Stages()
	stages[0] = nil // mutating the returned slice must not affect the pipeline

	found, ok := p.StageByID(StageDecode.ID)
	require.True(t, ok)
	assert.NotNil(t, found)
}

func TestStage_Accessors(t *testing.T) {
	p := New("test", Receive)
	st := NewStage(StageValidate, p)

	assert.Equal(t, StageValidate.ID, st.ID())
	assert.Equal(t, "Validate", st.Name())
	assert.Equal(t, 3, st.ExecutionOrder())
	assert.Same(t, p, st.Pipeline())
	assert.Equal(t, 0, st.ComponentCount())
}

type named string

func (n named) Name() string { return string(n) }

func TestStage_AddComponent_PreservesOrder(t *testing.T) {
	p := New("test", Receive)
	st := NewStage(StageDecode, p)

	st.AddComponent(named("first"))
	st.AddComponent(named("second"))

	comps := st.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, "first", comps[0].Name())
	assert.Equal(t, "second", comps[1].Name())
}

func TestStage_Components_ReturnsCopy(t *testing.T) {
	p := New("test", Receive)
	st := NewStage(StageDecode, p)
	st.AddComponent(named("only"))

	comps := st.Components()
	comps[0] = nil

	assert.Equal(t, "only", st.Components()[0].Name())
}

func TestWellKnownStages_Directions(t *testing.T) {
	receiveSide := []StageDescriptor{StageDecode, StageDisassemble, StageValidate, StageResolveParty}
	for _, desc := range receiveSide {
		assert.True(t, desc.Receive, "stage %s should be receive-side", desc.Name)
	}

	sendSide := []StageDescriptor{StagePreAssemble, StageAssemble, StageEncode}
	for _, desc := range sendSide {
		assert.False(t, desc.Receive, "stage %s should be send-side", desc.Name)
	}
}
