// Package definition loads pipeline definition files: the declarative
// face of the harness. A definition names a pipeline, fixes its
// direction, and lists the stages and document schemas it starts with.
// Components stay programmatic - they are opaque values the definition
// format cannot express.
package definition

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/HYDPublic/pipelinetesting/internal/docspec"
	"github.com/HYDPublic/pipelinetesting/internal/pipeline"
)

// Definition describes a pipeline layout.
type Definition struct {
	// Name uniquely identifies the pipeline.
	Name string `yaml:"name"`

	// Direction is "receive" or "send".
	Direction string `yaml:"direction"`

	// Stages lists the stages the pipeline starts with, in order.
	// Further stages may still be created on demand by the harness.
	Stages []StageDef `yaml:"stages,omitempty"`

	// DocSpecs lists the document schemas to register up front.
	DocSpecs []DocSpecDef `yaml:"doc_specs,omitempty"`
}

// StageDef declares one stage of the pipeline.
type StageDef struct {
	// ID is the stage identity. Required and unique per definition.
	ID string `yaml:"id"`

	// Name labels the stage (e.g. "Decode").
	Name string `yaml:"name"`

	// ExecutionOrder tags the stage's position in the engine's
	// execution plan. Must be non-negative.
	ExecutionOrder int `yaml:"execution_order,omitempty"`
}

// DocSpecDef declares one document schema.
//
// A simple schema sets RootElement (and usually TargetNamespace). A
// composite schema leaves RootElement empty and lists its root
// definitions under Nested; nested entries must each set RootElement
// and cannot nest further.
type DocSpecDef struct {
	// Name is the simple type name.
	Name string `yaml:"name"`

	// Qualifier scopes the type name (e.g. "contoso.schemas").
	Qualifier string `yaml:"qualifier,omitempty"`

	// TargetNamespace is the schema's target namespace.
	TargetNamespace string `yaml:"target_namespace,omitempty"`

	// RootElement is the schema's root element name.
	RootElement string `yaml:"root_element,omitempty"`

	// Nested lists the root definitions of a composite schema.
	Nested []DocSpecDef `yaml:"nested,omitempty"`
}

// Load reads and parses a pipeline definition YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}
	return Parse(data)
}

// Parse parses a pipeline definition from raw YAML.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateDefinition(&def); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}
	return &def, nil
}

// validateDefinition checks that required fields are present and valid.
func validateDefinition(d *Definition) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}

	if _, err := pipeline.ParseDirection(d.Direction); err != nil {
		return err
	}

	seen := make(map[string]bool, len(d.Stages))
	for i, st := range d.Stages {
		if st.ID == "" {
			return fmt.Errorf("stages[%d]: id is required", i)
		}
		if st.Name == "" {
			return fmt.Errorf("stages[%d]: name is required", i)
		}
		if st.ExecutionOrder < 0 {
			return fmt.Errorf("stages[%d]: execution_order must be non-negative", i)
		}
		if seen[st.ID] {
			return fmt.Errorf("stages[%d]: duplicate stage id %s", i, st.ID)
		}
		seen[st.ID] = true
	}

	for i, ds := range d.DocSpecs {
		if err := validateDocSpec(i, &ds); err != nil {
			return err
		}
	}

	return nil
}

// validateDocSpec validates a single doc spec declaration.
func validateDocSpec(index int, ds *DocSpecDef) error {
	if ds.Name == "" {
		return fmt.Errorf("doc_specs[%d]: name is required", index)
	}

	if ds.RootElement == "" && len(ds.Nested) == 0 {
		return fmt.Errorf("doc_specs[%d]: root_element or nested is required", index)
	}
	if ds.RootElement != "" && len(ds.Nested) > 0 {
		return fmt.Errorf("doc_specs[%d]: root_element and nested are mutually exclusive", index)
	}

	for j, nested := range ds.Nested {
		if nested.Name == "" {
			return fmt.Errorf("doc_specs[%d].nested[%d]: name is required", index, j)
		}
		if nested.RootElement == "" {
			return fmt.Errorf("doc_specs[%d].nested[%d]: root_element is required", index, j)
		}
		if len(nested.Nested) > 0 {
			return fmt.Errorf("doc_specs[%d].nested[%d]: further nesting is not supported", index, j)
		}
	}

	return nil
}

// Schema converts the declaration to its docspec form.
func (ds DocSpecDef) Schema() docspec.Schema {
	s := docspec.Schema{
		Name:      ds.Name,
		Qualifier: ds.Qualifier,
	}

	if ds.RootElement != "" {
		s.Root = &docspec.RootRef{
			TargetNamespace: ds.TargetNamespace,
			RootElement:     ds.RootElement,
		}
		return s
	}

	for _, nested := range ds.Nested {
		s.Nested = append(s.Nested, nested.Schema())
	}
	return s
}
