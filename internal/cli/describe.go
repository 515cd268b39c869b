package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HYDPublic/pipelinetesting/internal/definition"
	"github.com/HYDPublic/pipelinetesting/internal/harness"
)

// PipelineDescription is the describe command's view of a built pipeline.
type PipelineDescription struct {
	Name      string               `json:"name"`
	Direction string               `json:"direction"`
	Stages    []StageDescription   `json:"stages"`
	DocSpecs  []DocSpecDescription `json:"doc_specs"`
}

// StageDescription describes one stage.
type StageDescription struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ExecutionOrder int    `json:"execution_order"`
	Components     int    `json:"components"`
}

// DocSpecDescription describes one registered document spec.
type DocSpecDescription struct {
	TypeName  string   `json:"type_name"`
	RootNames []string `json:"root_names"`
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <definition-file>",
		Short: "Build a pipeline definition and print its layout",
		Long: `Build the pipeline a definition file describes and print its stages
and registered document specs, including the resolved root names.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runDescribe(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	def, err := definition.Load(path)
	if err != nil {
		code := ExitFailure
		if errors.Is(err, os.ErrNotExist) {
			code = ExitCommandError
		}
		if opts.Format == "json" {
			if jerr := formatter.Failure("E_DEFINITION", err.Error()); jerr != nil {
				return jerr
			}
		} else {
			fmt.Fprintf(formatter.Writer, "definition invalid: %v\n", err)
		}
		return WrapExitError(code, "definition load failed", err)
	}

	w, err := def.Build()
	if err != nil {
		if opts.Format == "json" {
			if jerr := formatter.Failure("E_BUILD", err.Error()); jerr != nil {
				return jerr
			}
		} else {
			fmt.Fprintf(formatter.Writer, "build failed: %v\n", err)
		}
		return WrapExitError(ExitFailure, "pipeline build failed", err)
	}

	desc, err := describePipeline(def, w)
	if err != nil {
		return WrapExitError(ExitFailure, "describe failed", err)
	}

	if opts.Format == "json" {
		return formatter.Success(desc)
	}
	renderDescription(formatter.Writer, desc)
	return nil
}

// describePipeline collects the built pipeline's layout. Doc specs are
// fetched back through the wrapper's root-name lookups, so the output
// reflects what the registry will actually answer at runtime.
func describePipeline(def *definition.Definition, w *harness.Wrapper) (*PipelineDescription, error) {
	desc := &PipelineDescription{
		Name:      w.Pipeline().Name(),
		Direction: w.Pipeline().Direction().String(),
	}

	for _, st := range w.Pipeline().Stages() {
		desc.Stages = append(desc.Stages, StageDescription{
			ID:             st.ID(),
			Name:           st.Name(),
			ExecutionOrder: st.ExecutionOrder(),
			Components:     st.ComponentCount(),
		})
	}

	seen := make(map[string]bool)
	for _, ds := range def.DocSpecs {
		schema := ds.Schema()
		for _, root := range schema.Roots() {
			spec, err := w.DocSpecByType(root.RootName)
			if err != nil {
				return nil, fmt.Errorf("lookup %s: %w", root.RootName, err)
			}
			if seen[spec.TypeName] {
				continue
			}
			seen[spec.TypeName] = true
			desc.DocSpecs = append(desc.DocSpecs, DocSpecDescription{
				TypeName:  spec.TypeName,
				RootNames: spec.RootNames,
			})
		}
	}

	return desc, nil
}

// renderDescription writes the text form of a pipeline description.
func renderDescription(w io.Writer, desc *PipelineDescription) {
	fmt.Fprintf(w, "pipeline: %s\n", desc.Name)
	fmt.Fprintf(w, "direction: %s\n", desc.Direction)

	fmt.Fprintln(w, "stages:")
	if len(desc.Stages) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, st := range desc.Stages {
		fmt.Fprintf(w, "  %s (id=%s, order=%d, components=%d)\n",
			st.Name, st.ID, st.ExecutionOrder, st.Components)
	}

	fmt.Fprintln(w, "doc specs:")
	if len(desc.DocSpecs) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, ds := range desc.DocSpecs {
		fmt.Fprintf(w, "  %s\n", ds.TypeName)
		fmt.Fprintf(w, "    roots: %s\n", strings.Join(ds.RootNames, ", "))
	}
}
