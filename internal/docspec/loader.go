package docspec

import "fmt"

// DocumentSpec is the loaded, registrable form of a document schema.
// A single spec instance may be registered under several keys (root name,
// fully-qualified type name, simple type name) and all keys resolve to
// the same instance.
type DocumentSpec struct {
	// TypeName is the fully-qualified name of the schema type this spec
	// was loaded from.
	TypeName string

	// RootNames lists the root names this spec answers to.
	RootNames []string
}

// Loader resolves a schema description into a loadable DocumentSpec.
//
// The real resolution step (schema compilation, parsing) is owned by an
// external collaborator; implementations of this interface adapt it to
// the harness. Errors propagate to the caller unchanged.
type Loader interface {
	LoadDocSpec(s Schema) (*DocumentSpec, error)
}

// SpecLoader is the default Loader. It derives the DocumentSpec directly
// from the schema's declarative metadata without any external resolution.
type SpecLoader struct{}

// LoadDocSpec builds a DocumentSpec from the schema's own metadata.
// Returns an error when the schema resolves to no roots - a spec loaded
// for a specific schema must represent at least one root.
func (SpecLoader) LoadDocSpec(s Schema) (*DocumentSpec, error) {
	roots := s.Roots()
	if len(roots) == 0 {
		return nil, fmt.Errorf("schema %s declares no root metadata", s.FullName())
	}

	names := make([]string, len(roots))
	for i, r := range roots {
		names[i] = r.RootName
	}

	return &DocumentSpec{
		TypeName:  s.FullName(),
		RootNames: names,
	}, nil
}
