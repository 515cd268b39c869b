package harness

import (
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/HYDPublic/pipelinetesting/internal/docspec"
	"github.com/HYDPublic/pipelinetesting/internal/pipeline"
)

// Wrapper drives one pipeline through a single test scenario.
//
// The wrapper exclusively owns its pipeline and lazily creates exactly
// one context for its lifetime. Its direction flag is read from the
// pipeline once at construction and never mutated.
//
// Not safe for concurrent use: one caller drives setup and assertions
// sequentially. Parallel scenarios need one wrapper each.
type Wrapper struct {
	pipeline *pipeline.Pipeline
	ctx      *pipeline.Context // lazily created; see Context()
	receive  bool
	loader   docspec.Loader
	tokens   pipeline.TokenGenerator
	logger   *slog.Logger
}

// Option configures a Wrapper.
type Option func(*Wrapper)

// WithLoader replaces the default document spec loader.
func WithLoader(l docspec.Loader) Option {
	return func(w *Wrapper) {
		w.loader = l
	}
}

// WithTokenGenerator replaces the default UUIDv7 transaction token
// generator. Tests use a fixed-sequence generator for determinism.
func WithTokenGenerator(g pipeline.TokenGenerator) Option {
	return func(w *Wrapper) {
		w.tokens = g
	}
}

// WithLogger sets the wrapper's logger. The default discards everything,
// keeping test output quiet.
func WithLogger(l *slog.Logger) Option {
	return func(w *Wrapper) {
		w.logger = l
	}
}

// New creates a wrapper around the given pipeline.
// The pipeline must not be nil; it becomes exclusively owned by the
// wrapper for the duration of the scenario.
func New(p *pipeline.Pipeline, opts ...Option) (*Wrapper, error) {
	if p == nil {
		return nil, NewInvalidArgumentError("pipeline")
	}

	w := &Wrapper{
		pipeline: p,
		receive:  p.Direction() == pipeline.Receive,
		loader:   docspec.SpecLoader{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Pipeline returns the wrapped pipeline for direct assertions.
func (w *Wrapper) Pipeline() *pipeline.Pipeline {
	return w.pipeline
}

// Receive reports whether the wrapped pipeline is a receive pipeline.
func (w *Wrapper) Receive() bool {
	return w.receive
}

// Context returns the wrapper's pipeline context, creating it on first
// use. Exactly one context exists per wrapper lifetime.
func (w *Wrapper) Context() *pipeline.Context {
	if w.ctx == nil {
		w.ctx = pipeline.NewContext(w.tokens)
	}
	return w.ctx
}

// findOrCreateStage resolves a descriptor to a stage in the pipeline.
//
// An existing stage with the descriptor's id is returned unchanged; the
// lookup is idempotent and mutates nothing. Otherwise a new stage is
// constructed from the descriptor, appended, and returned.
func (w *Wrapper) findOrCreateStage(desc pipeline.StageDescriptor) (*pipeline.Stage, error) {
	if st, ok := w.pipeline.StageByID(desc.ID); ok {
		return st, nil
	}

	st := pipeline.NewStage(desc, w.pipeline)
	if err := w.pipeline.AppendStage(st); err != nil {
		return nil, fmt.Errorf("append stage %s: %w", desc.ID, err)
	}
	w.logger.Debug("stage created",
		"stage_id", desc.ID,
		"stage", desc.Name,
		"execution_order", desc.ExecutionOrder,
	)
	return st, nil
}

// AddComponent attaches a component to the stage named by the descriptor,
// creating the stage if the pipeline doesn't have it yet.
//
// Fails with INVALID_ARGUMENT when the component is nil or the descriptor
// has no id, and with DIRECTION_MISMATCH when the descriptor's direction
// disagrees with the pipeline's. Both checks happen before any mutation:
// a failed call leaves the pipeline exactly as it was.
func (w *Wrapper) AddComponent(c pipeline.Component, desc pipeline.StageDescriptor) error {
	if c == nil {
		return NewInvalidArgumentError("component")
	}
	if desc.ID == "" {
		return NewInvalidArgumentError("stage descriptor id")
	}
	if desc.Receive != w.receive {
		return NewDirectionMismatchError(desc.Name, desc.Receive)
	}

	st, err := w.findOrCreateStage(desc)
	if err != nil {
		return err
	}
	st.AddComponent(c)

	w.logger.Debug("component attached",
		"component", c.Name(),
		"stage", st.Name(),
		"stage_id", st.ID(),
	)
	return nil
}

// AddDocSpec resolves a schema's root names and registers a document
// spec for each in the wrapper's context.
//
// Every resolved root is registered under three keys: the root name (by
// type), the fully-qualified type name, and the simple type name (both
// by name). The extra name keys keep lookups working for callers that
// reference the schema from a differently-scoped module than where it is
// declared; all three keys resolve to the same spec instance.
//
// A schema that resolves to zero roots registers nothing, silently. All
// specs are loaded before any registration, so a loader failure leaves
// the registry untouched; the loader's error propagates to the caller.
func (w *Wrapper) AddDocSpec(s *docspec.Schema) error {
	if s == nil {
		return NewInvalidArgumentError("schema")
	}

	roots := s.Roots()

	type loadedRoot struct {
		root docspec.ResolvedRoot
		spec *docspec.DocumentSpec
	}
	loaded := make([]loadedRoot, 0, len(roots))
	for _, r := range roots {
		spec, err := w.loader.LoadDocSpec(r.Schema)
		if err != nil {
			return fmt.Errorf("load document spec for %s: %w", r.RootName, err)
		}
		loaded = append(loaded, loadedRoot{root: r, spec: spec})
	}

	ctx := w.Context()
	for _, l := range loaded {
		ctx.RegisterByType(l.root.RootName, l.spec)
		ctx.RegisterByName(l.root.Schema.FullName(), l.spec)
		ctx.RegisterByName(l.root.Schema.Name, l.spec)

		w.logger.Debug("document spec registered",
			"root", l.root.RootName,
			"type", l.root.Schema.FullName(),
		)
	}
	return nil
}

// DocSpecByName looks up a registered document spec by type name
// (fully-qualified or simple). Fails with NOT_FOUND when the name was
// never registered.
func (w *Wrapper) DocSpecByName(name string) (*docspec.DocumentSpec, error) {
	if spec, ok := w.Context().DocSpecByName(name); ok {
		return spec, nil
	}
	return nil, NewNotFoundError("name", name)
}

// DocSpecByType looks up a registered document spec by root name.
// Fails with NOT_FOUND when the root name was never registered.
func (w *Wrapper) DocSpecByType(rootName string) (*docspec.DocumentSpec, error) {
	if spec, ok := w.Context().DocSpecByType(rootName); ok {
		return spec, nil
	}
	return nil, NewNotFoundError("root name", rootName)
}

// EnableTransactions switches the context into transactional mode and
// returns the control handle. The wrapper does not cache or dedupe the
// call: repeated calls go back to the context, which mints a fresh
// handle each time.
func (w *Wrapper) EnableTransactions() *pipeline.TransactionControl {
	return w.Context().EnableTransactionSupport()
}

// SigningCertificate returns the context's group signing certificate
// thumbprint.
func (w *Wrapper) SigningCertificate() string {
	return w.Context().SigningCertificate()
}

// SetSigningCertificate sets the context's group signing certificate
// thumbprint.
func (w *Wrapper) SetSigningCertificate(thumbprint string) {
	w.Context().SetSigningCertificate(thumbprint)
}

// Components returns a lazy, restartable traversal over every component
// in the pipeline: stage order first, insertion order within a stage.
//
// Each range over the sequence starts a fresh traversal. The view is
// read-only; mutating stages or components during an in-progress
// traversal has undefined enumeration results (no snapshot is taken).
func (w *Wrapper) Components() iter.Seq[pipeline.Component] {
	return func(yield func(pipeline.Component) bool) {
		for _, st := range w.pipeline.Stages() {
			for _, c := range st.Components() {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// ComponentCount counts the components across all stages.
func (w *Wrapper) ComponentCount() int {
	n := 0
	for range w.Components() {
		n++
	}
	return n
}
