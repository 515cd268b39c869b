package testutil

import "github.com/HYDPublic/pipelinetesting/internal/pipeline"

// StubComponent is a named, do-nothing component for attaching to stages
// in tests. The harness treats components as opaque, so a name is all a
// stub needs.
type StubComponent struct {
	ComponentName string
}

// Name returns the stub's configured name.
func (c StubComponent) Name() string {
	return c.ComponentName
}

// Component creates a stub component with the given name.
func Component(name string) pipeline.Component {
	return StubComponent{ComponentName: name}
}
