package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ValidationResult holds validation results for a set of documents.
type ValidationResult struct {
	Valid  bool            `json:"valid"`
	Errors []DocumentError `json:"errors,omitempty"`
}

// DocumentError describes one validation failure.
type DocumentError struct {
	File    string `json:"file"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <document...>",
		Short: "Validate query documents without rendering",
		Long: `Validate YAML query documents without printing SQL.

Checks that each document parses, names a table, and uses only supported
literal value kinds. All documents are checked; errors are collected rather
than stopping at the first failure.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var docErrors []DocumentError
	for _, path := range paths {
		if err := validateDocument(path); err != nil {
			docErrors = append(docErrors, toDocumentError(path, err))
			continue
		}
		formatter.VerboseLog("valid: %s", path)
	}

	if len(docErrors) > 0 {
		result := ValidationResult{Valid: false, Errors: docErrors}
		if formatter.Format == "json" {
			if err := formatter.Success(result); err != nil {
				return err
			}
		} else {
			for _, de := range docErrors {
				fmt.Fprintf(formatter.Writer, "Error [%s] %s: %s\n", de.Code, de.File, de.Message)
			}
		}
		return NewExitError(ExitFailure, fmt.Sprintf("%d document(s) failed validation", len(docErrors)))
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true})
	}
	fmt.Fprintf(formatter.Writer, "%d document(s) valid\n", len(paths))
	return nil
}

// validateDocument loads a document and assembles its query, discarding the
// result. Assembly goes through the public builder, so anything render would
// reject fails here too.
func validateDocument(path string) error {
	doc, err := LoadDocument(path)
	if err != nil {
		return err
	}
	_, err = doc.Query()
	return err
}

func toDocumentError(path string, err error) DocumentError {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return DocumentError{File: path, Code: loadErr.Code, Message: loadErr.Message}
	}
	return DocumentError{File: path, Code: ErrCodeGeneric, Message: err.Error()}
}
