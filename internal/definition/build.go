package definition

import (
	"fmt"

	"github.com/HYDPublic/pipelinetesting/internal/harness"
	"github.com/HYDPublic/pipelinetesting/internal/pipeline"
)

// Build materializes the definition: constructs the pipeline, appends
// the declared stages in order, wraps it, and registers every declared
// document schema.
//
// The definition must have passed validation (Load and Parse guarantee
// this); Build still surfaces any construction error rather than
// panicking.
func (d *Definition) Build(opts ...harness.Option) (*harness.Wrapper, error) {
	dir, err := pipeline.ParseDirection(d.Direction)
	if err != nil {
		return nil, err
	}

	p := pipeline.New(d.Name, dir)
	for i, st := range d.Stages {
		desc := pipeline.StageDescriptor{
			ID:             st.ID,
			Name:           st.Name,
			ExecutionOrder: st.ExecutionOrder,
			Receive:        dir == pipeline.Receive,
		}
		if err := p.AppendStage(pipeline.NewStage(desc, p)); err != nil {
			return nil, fmt.Errorf("stages[%d]: %w", i, err)
		}
	}

	w, err := harness.New(p, opts...)
	if err != nil {
		return nil, err
	}

	for i, ds := range d.DocSpecs {
		schema := ds.Schema()
		if err := w.AddDocSpec(&schema); err != nil {
			return nil, fmt.Errorf("doc_specs[%d]: %w", i, err)
		}
	}

	return w, nil
}
