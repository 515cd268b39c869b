package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HYDPublic/pipelinetesting/internal/definition"
)

// ValidationSummary holds validation results for JSON output.
type ValidationSummary struct {
	Valid    bool   `json:"valid"`
	Name     string `json:"name,omitempty"`
	Stages   int    `json:"stages"`
	DocSpecs int    `json:"doc_specs"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <definition-file>",
		Short: "Validate a pipeline definition file",
		Long: `Validate a pipeline definition YAML file without building the pipeline.

Checks YAML syntax, rejects unknown fields, and verifies required fields:
name, direction, stage ids (present and unique), and doc spec roots.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	formatter.VerboseLog("loading definition from %s", path)

	def, err := definition.Load(path)
	if err != nil {
		// Missing files are command errors; malformed content is a
		// validation failure.
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
		return WrapExitError(code, "definition validation failed", err)
	}

	if opts.Format == "json" {
		return formatter.Success(ValidationSummary{
			Valid:    true,
			Name:     def.Name,
			Stages:   len(def.Stages),
			DocSpecs: len(def.DocSpecs),
		})
	}

	fmt.Fprintf(formatter.Writer, "definition ok: %s (%d stages, %d doc specs)\n",
		def.Name, len(def.Stages), len(def.DocSpecs))
	return nil
}
