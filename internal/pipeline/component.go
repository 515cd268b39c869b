package pipeline

// Component is an opaque processing unit attached to a stage.
//
// The harness never inspects a component beyond its name: execution is
// the pipeline engine's concern. Name is used for logging and for the
// describe output.
type Component interface {
	Name() string
}
