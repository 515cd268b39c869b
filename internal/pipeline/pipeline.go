// Package pipeline holds the object model the test harness orchestrates:
// pipelines, stages, components, the per-scenario context, and the
// transactional control handle.
//
// The model is deliberately passive. Stage execution, document I/O, and
// scheduling belong to the external pipeline engine; this package only
// records what the harness assembled so tests can assert on it.
package pipeline

import "fmt"

// Direction distinguishes receive-side from send-side pipelines.
type Direction int

const (
	// Send marks a pipeline that processes outbound documents.
	Send Direction = iota

	// Receive marks a pipeline that processes inbound documents.
	Receive
)

// String returns "send" or "receive".
func (d Direction) String() string {
	switch d {
	case Send:
		return "send"
	case Receive:
		return "receive"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection parses a direction keyword as used in definition files.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "send":
		return Send, nil
	case "receive":
		return Receive, nil
	default:
		return Send, fmt.Errorf("invalid direction %q: must be \"send\" or \"receive\"", s)
	}
}

// Pipeline is an ordered sequence of stages with a fixed direction.
//
// Stage ids are unique within a pipeline. Stage order reflects insertion
// order; a pipeline built from a definition file may already hold stages
// before the harness touches it.
//
// Not safe for concurrent use. A pipeline is exclusively owned by the
// wrapper instance driving one test scenario.
type Pipeline struct {
	name      string
	direction Direction
	stages    []*Stage
}

// New creates an empty pipeline with the given name and direction.
func New(name string, direction Direction) *Pipeline {
	return &Pipeline{
		name:      name,
		direction: direction,
	}
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string {
	return p.name
}

// Direction returns the pipeline's direction.
func (p *Pipeline) Direction() Direction {
	return p.direction
}

// Stages returns the stages in insertion order.
// The returned slice is a copy; the stages themselves are shared.
func (p *Pipeline) Stages() []*Stage {
	out := make([]*Stage, len(p.stages))
	copy(out, p.stages)
	return out
}

// StageCount returns the number of stages.
func (p *Pipeline) StageCount() int {
	return len(p.stages)
}

// StageByID returns the stage with the given id, if present.
func (p *Pipeline) StageByID(id string) (*Stage, bool) {
	for _, st := range p.stages {
		if st.id == id {
			return st, true
		}
	}
	return nil, false
}

// AppendStage adds a stage to the end of the pipeline.
// Returns an error if a stage with the same id already exists - stage
// ids are unique within a pipeline.
func (p *Pipeline) AppendStage(st *Stage) error {
	if st == nil {
		return fmt.Errorf("stage must not be nil")
	}
	if _, exists := p.StageByID(st.id); exists {
		return fmt.Errorf("duplicate stage id: %s", st.id)
	}
	p.stages = append(p.stages, st)
	return nil
}
