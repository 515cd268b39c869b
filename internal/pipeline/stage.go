package pipeline

// StageDescriptor identifies a stage to attach components to. It is a
// pure value: the harness uses it to locate an existing stage by id or
// to materialize a new one, never as the stage itself.
type StageDescriptor struct {
	// ID is the stage identity. Required; opaque to the harness.
	ID string

	// Name labels the stage (e.g. "Decode").
	Name string

	// ExecutionOrder tags the stage's position in the engine's execution
	// plan. The harness records it; the engine interprets it.
	ExecutionOrder int

	// Receive is true for stages that belong on a receive pipeline.
	// A component can only be attached when this matches the pipeline's
	// own direction.
	Receive bool
}

// Well-known stage descriptors for the standard receive and send
// pipeline layouts. The ids are the fixed stage identities used by the
// stock pipeline definitions, so stages created from these descriptors
// line up with stages already present in a loaded definition.
var (
	StageDecode       = StageDescriptor{ID: "9d0e4103-4cce-4536-83fa-4a5040674ad6", Name: "Decode", ExecutionOrder: 1, Receive: true}
	StageDisassemble  = StageDescriptor{ID: "9d0e4105-4cce-4536-83fa-4a5040674ad6", Name: "Disassemble", ExecutionOrder: 2, Receive: true}
	StageValidate     = StageDescriptor{ID: "9d0e410d-4cce-4536-83fa-4a5040674ad6", Name: "Validate", ExecutionOrder: 3, Receive: true}
	StageResolveParty = StageDescriptor{ID: "9d0e410e-4cce-4536-83fa-4a5040674ad6", Name: "ResolveParty", ExecutionOrder: 4, Receive: true}

	StagePreAssemble = StageDescriptor{ID: "9d0e4101-4cce-4536-83fa-4a5040674ad6", Name: "PreAssemble", ExecutionOrder: 1, Receive: false}
	StageAssemble    = StageDescriptor{ID: "9d0e4107-4cce-4536-83fa-4a5040674ad6", Name: "Assemble", ExecutionOrder: 2, Receive: false}
	StageEncode      = StageDescriptor{ID: "9d0e4108-4cce-4536-83fa-4a5040674ad6", Name: "Encode", ExecutionOrder: 3, Receive: false}
)

// Stage is an ordered slot in a pipeline holding zero or more components.
// Its direction is implied by the owning pipeline, not stored per stage.
type Stage struct {
	id             string
	name           string
	executionOrder int
	pipeline       *Pipeline
	components     []Component
}

// NewStage constructs a stage from a descriptor for the given pipeline.
// The stage is not appended; callers do that via Pipeline.AppendStage.
func NewStage(desc StageDescriptor, p *Pipeline) *Stage {
	return &Stage{
		id:             desc.ID,
		name:           desc.Name,
		executionOrder: desc.ExecutionOrder,
		pipeline:       p,
	}
}

// ID returns the stage identity.
func (s *Stage) ID() string {
	return s.id
}

// Name returns the stage label.
func (s *Stage) Name() string {
	return s.name
}

// ExecutionOrder returns the stage's execution-order tag.
func (s *Stage) ExecutionOrder() int {
	return s.executionOrder
}

// Pipeline returns the owning pipeline.
func (s *Stage) Pipeline() *Pipeline {
	return s.pipeline
}

// AddComponent appends a component to the stage, preserving call order.
func (s *Stage) AddComponent(c Component) {
	s.components = append(s.components, c)
}

// Components returns the stage's components in the order added.
// The returned slice is a copy.
func (s *Stage) Components() []Component {
	out := make([]Component, len(s.components))
	copy(out, s.components)
	return out
}

// ComponentCount returns the number of components attached to the stage.
func (s *Stage) ComponentCount() int {
	return len(s.components)
}
