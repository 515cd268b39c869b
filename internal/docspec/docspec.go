// Package docspec models document schema metadata and resolves it to the
// root names used for registry lookups.
//
// A schema is identified at runtime by one or more root names of the form
// "targetNamespace#rootElement", or a bare "rootElement" when the schema
// declares no target namespace. A simple schema carries its own root
// metadata; a composite schema carries none of its own and instead lists
// nested root definitions, each contributing one root name.
package docspec

// RootRef is the declarative root metadata attached to a schema: the
// target namespace and root element it represents. It replaces any
// runtime type introspection - callers state the metadata explicitly.
type RootRef struct {
	// TargetNamespace is the schema's target namespace (e.g. "urn:x").
	// May be empty for schemas without a namespace.
	TargetNamespace string

	// RootElement is the name of the schema's root element.
	RootElement string
}

// Name returns the root name for this metadata record.
//
// Format: "targetNamespace#rootElement", or just "rootElement" when the
// target namespace is empty (no separator is emitted).
func (r RootRef) Name() string {
	if r.TargetNamespace == "" {
		return r.RootElement
	}
	return r.TargetNamespace + "#" + r.RootElement
}

// Schema describes a document schema type to be registered with a
// pipeline context.
//
// A schema with a non-nil Root is itself the sole root definition. A
// schema with a nil Root is a composite container: each entry in Nested
// that carries its own Root contributes one root definition. Nested
// entries are inspected one level deep only - a nested schema's own
// Nested list is never walked.
type Schema struct {
	// Name is the simple type name (e.g. "Order").
	Name string

	// Qualifier scopes the type name (e.g. "contoso.schemas"). May be
	// empty for unqualified schemas.
	Qualifier string

	// Root is the schema's own root metadata, or nil for composite
	// containers.
	Root *RootRef

	// Nested lists the nested root definitions of a composite schema.
	// Ignored when Root is non-nil.
	Nested []Schema
}

// FullName returns the fully-qualified type name: "qualifier.name", or
// the bare name when the schema has no qualifier.
func (s Schema) FullName() string {
	if s.Qualifier == "" {
		return s.Name
	}
	return s.Qualifier + "." + s.Name
}

// ResolvedRoot pairs a schema with one root name it resolves to.
type ResolvedRoot struct {
	Schema   Schema
	RootName string
}

// Roots resolves the schema to the set of (schema, root name) pairs it
// represents.
//
// If the schema carries its own Root metadata it is the sole root. If
// not, each nested schema carrying Root metadata contributes one root;
// nested schemas without metadata are skipped. A composite with zero
// annotated nested schemas resolves to an empty set - that degenerates
// to registering nothing, which is accepted silently.
func (s Schema) Roots() []ResolvedRoot {
	if s.Root != nil {
		return []ResolvedRoot{{Schema: s, RootName: s.Root.Name()}}
	}

	var roots []ResolvedRoot
	for _, nested := range s.Nested {
		if nested.Root == nil {
			continue
		}
		roots = append(roots, ResolvedRoot{Schema: nested, RootName: nested.Root.Name()})
	}
	return roots
}
